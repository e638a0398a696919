package keywords

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tuan-design/miniappdesign/pkg/gateway/mocks"
	"github.com/tuan-design/miniappdesign/pkg/models"
	"github.com/tuan-design/miniappdesign/pkg/viewcache"
)

type noopRefresher struct{}

func (noopRefresher) RefreshActive(ctx context.Context) (any, error) { return nil, nil }

func newTestHandler(t *testing.T) (*Handler, *mocks.Client) {
	gw := mocks.NewClient(t)
	return NewKeywordsHandler(gw, viewcache.NewManager(), noopRefresher{}), gw
}

func postJSON(t *testing.T, body any) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return httptest.NewRequest(http.MethodPost, "/keywords", bytes.NewReader(raw))
}

func foodEntries() []models.KeywordEntry {
	return []models.KeywordEntry{
		{Category: "Food", Keywords: "coffee, lunch, Groceries"},
		{Category: "Transport", Keywords: "bus, taxi"},
	}
}

func TestAdd(t *testing.T) {
	t.Run("trims and joins terms before submitting", func(t *testing.T) {
		h, gw := newTestHandler(t)
		gw.On("AddKeyword", mock.Anything, "Food", "coffee, lunch").Return(nil).Once()

		rec := httptest.NewRecorder()
		h.Add(rec, postJSON(t, map[string]string{"category": "Food", "keywords": " coffee ,, lunch "}))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects an empty term list", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rec := httptest.NewRecorder()
		h.Add(rec, postJSON(t, map[string]string{"category": "Food", "keywords": " , "}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalidates the keyword list view", func(t *testing.T) {
		h, gw := newTestHandler(t)
		_, err := h.Cache.GetOrFetch(context.Background(), viewcache.KeywordList, "keywords", func(context.Context) (any, error) {
			return foodEntries(), nil
		})
		require.NoError(t, err)
		gw.On("AddKeyword", mock.Anything, "Food", "tea").Return(nil).Once()

		h.Add(httptest.NewRecorder(), postJSON(t, map[string]string{"category": "Food", "keywords": "tea"}))

		assert.False(t, h.Cache.Cached(viewcache.KeywordList, "keywords"))
	})
}

func TestDelete(t *testing.T) {
	t.Run("matches the held term case-insensitively", func(t *testing.T) {
		// Arrange
		h, gw := newTestHandler(t)
		gw.On("Keywords", mock.Anything).Return(foodEntries(), nil).Once()
		gw.On("DeleteKeyword", mock.Anything, "Food", "GROCERIES").Return(nil).Once()

		// Act
		rec := httptest.NewRecorder()
		h.Delete(rec, postJSON(t, map[string]string{"category": "Food", "keyword": "GROCERIES"}))

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown term warns without issuing the write", func(t *testing.T) {
		h, gw := newTestHandler(t)
		gw.On("Keywords", mock.Anything).Return(foodEntries(), nil).Once()
		// No DeleteKeyword expectation: the write must not happen.

		rec := httptest.NewRecorder()
		h.Delete(rec, postJSON(t, map[string]string{"category": "Food", "keyword": "taxi"}))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("requires both category and keyword", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rec := httptest.NewRecorder()
		h.Delete(rec, postJSON(t, map[string]string{"category": "Food"}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
