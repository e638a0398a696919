// Package keywords implements the category keyword mutation endpoints.
package keywords

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/tuan-design/miniappdesign/pkg/api"
	"github.com/tuan-design/miniappdesign/pkg/gateway"
	"github.com/tuan-design/miniappdesign/pkg/handlers"
	"github.com/tuan-design/miniappdesign/pkg/models"
	"github.com/tuan-design/miniappdesign/pkg/viewcache"
)

// Handler serves keyword add and delete.
type Handler struct {
	Gateway   gateway.KeywordStore
	Cache     *viewcache.Manager
	Refresher handlers.Refresher
}

// NewKeywordsHandler creates the keyword mutation handler.
func NewKeywordsHandler(gw gateway.KeywordStore, cache *viewcache.Manager, refresher handlers.Refresher) *Handler {
	return &Handler{Gateway: gw, Cache: cache, Refresher: refresher}
}

// Add appends one or more comma-separated terms to a category. Terms are
// trimmed and empties dropped before submission.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	var req api.KeywordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Category == "" {
		handlers.RespondError(w, http.StatusBadRequest, "category is required")
		return
	}
	terms := splitTerms(req.Keywords)
	if len(terms) == 0 {
		handlers.RespondError(w, http.StatusBadRequest, "at least one keyword is required")
		return
	}

	if err := h.Gateway.AddKeyword(r.Context(), req.Category, strings.Join(terms, ", ")); err != nil {
		handlers.RespondFailure(w, err)
		return
	}
	h.finishMutation(w, r, "keywords added")
}

// Delete removes a single term from a category. The keyword list is read
// first and matched case-insensitively; a term the Gateway does not hold is
// reported as a warning without issuing the write.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	var req api.KeywordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Category == "" || req.Keyword == "" {
		handlers.RespondError(w, http.StatusBadRequest, "category and keyword are required")
		return
	}

	entries, err := h.Gateway.Keywords(r.Context())
	if err != nil {
		handlers.RespondFailure(w, err)
		return
	}
	if !holdsTerm(entries, req.Category, req.Keyword) {
		handlers.RespondJSON(w, http.StatusNotFound, api.ErrorResponse{
			Error: "keyword not found in category " + req.Category,
		})
		return
	}

	if err := h.Gateway.DeleteKeyword(r.Context(), req.Category, req.Keyword); err != nil {
		handlers.RespondFailure(w, err)
		return
	}
	h.finishMutation(w, r, "keyword deleted")
}

func (h *Handler) finishMutation(w http.ResponseWriter, r *http.Request, message string) {
	h.Cache.Invalidate(viewcache.KeywordList)

	refreshed, err := h.Refresher.RefreshActive(r.Context())
	if err != nil {
		log.Printf("ERROR: post-mutation refresh failed: %v", err)
	}
	handlers.RespondJSON(w, http.StatusOK, api.MutationResponse{Message: message, Refreshed: refreshed})
}

// splitTerms breaks a comma-separated keyword string into trimmed,
// non-empty terms.
func splitTerms(raw string) []string {
	var terms []string
	for _, part := range strings.Split(raw, ",") {
		if term := strings.TrimSpace(part); term != "" {
			terms = append(terms, term)
		}
	}
	return terms
}

// holdsTerm reports whether the category's entry contains the term,
// compared case-insensitively the way the spreadsheet matches.
func holdsTerm(entries []models.KeywordEntry, category, term string) bool {
	for _, entry := range entries {
		if !strings.EqualFold(entry.Category, category) {
			continue
		}
		for _, held := range strings.Split(entry.Keywords, ",") {
			if strings.EqualFold(strings.TrimSpace(held), term) {
				return true
			}
		}
	}
	return false
}
