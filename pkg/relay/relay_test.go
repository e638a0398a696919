package relay

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandle(t *testing.T) {
	t.Run("forwards and attaches CORS headers", func(t *testing.T) {
		// Arrange
		var gotPath string
		destination := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path + "?" + r.URL.RawQuery
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"transactions":[]}`))
		}))
		defer destination.Close()

		// Act
		resp, err := NewForwarder().Handle(context.Background(), events.APIGatewayProxyRequest{
			HTTPMethod:            http.MethodGet,
			QueryStringParameters: map[string]string{"url": destination.URL + "/exec?action=getTransactions"},
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "/exec?action=getTransactions", gotPath)
		assert.Equal(t, `{"transactions":[]}`, resp.Body)
		assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
	})

	t.Run("forwards the POST body", func(t *testing.T) {
		var gotBody string
		destination := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, _ := io.ReadAll(r.Body)
			gotBody = string(raw)
			w.Write([]byte(`{"success":true}`))
		}))
		defer destination.Close()

		resp, err := NewForwarder().Handle(context.Background(), events.APIGatewayProxyRequest{
			HTTPMethod:            http.MethodPost,
			Body:                  `{"action":"addTransaction"}`,
			QueryStringParameters: map[string]string{"url": destination.URL},
		})

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, `{"action":"addTransaction"}`, gotBody)
	})

	t.Run("answers preflight locally", func(t *testing.T) {
		resp, err := NewForwarder().Handle(context.Background(), events.APIGatewayProxyRequest{
			HTTPMethod: http.MethodOptions,
		})

		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
	})

	t.Run("rejects a missing url parameter", func(t *testing.T) {
		resp, err := NewForwarder().Handle(context.Background(), events.APIGatewayProxyRequest{
			HTTPMethod: http.MethodGet,
		})

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("rejects a non-http destination", func(t *testing.T) {
		resp, err := NewForwarder().Handle(context.Background(), events.APIGatewayProxyRequest{
			HTTPMethod:            http.MethodGet,
			QueryStringParameters: map[string]string{"url": "ftp://example.com"},
		})

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("passes non-2xx statuses through", func(t *testing.T) {
		destination := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer destination.Close()

		resp, err := NewForwarder().Handle(context.Background(), events.APIGatewayProxyRequest{
			HTTPMethod:            http.MethodGet,
			QueryStringParameters: map[string]string{"url": destination.URL},
		})

		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
	})

	t.Run("unreachable destination is a bad gateway", func(t *testing.T) {
		resp, err := NewForwarder().Handle(context.Background(), events.APIGatewayProxyRequest{
			HTTPMethod:            http.MethodGet,
			QueryStringParameters: map[string]string{"url": "http://127.0.0.1:1"},
		})

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	})
}
