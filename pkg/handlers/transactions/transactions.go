// Package transactions implements the transaction mutation endpoints:
// add, update and the staged two-step delete.
package transactions

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/tuan-design/miniappdesign/pkg/api"
	"github.com/tuan-design/miniappdesign/pkg/gateway"
	"github.com/tuan-design/miniappdesign/pkg/handlers"
	"github.com/tuan-design/miniappdesign/pkg/mapping"
	"github.com/tuan-design/miniappdesign/pkg/models"
	"github.com/tuan-design/miniappdesign/pkg/viewcache"
)

// pendingDelete is a staged deletion waiting for its confirmation call.
type pendingDelete struct {
	ID    string
	Month string
}

// Handler serves the transaction mutations. Every confirmed success
// invalidates all transaction views and refetches the active one, so the
// UI never renders data the Gateway no longer holds.
type Handler struct {
	Gateway   gateway.TransactionWriter
	Cache     *viewcache.Manager
	Refresher handlers.Refresher

	// Now is injectable for tests.
	Now func() time.Time

	mu         sync.Mutex
	submitting bool
	pending    *pendingDelete
}

// NewTransactionsHandler creates the mutation handler.
func NewTransactionsHandler(gw gateway.TransactionWriter, cache *viewcache.Manager, refresher handlers.Refresher) *Handler {
	return &Handler{
		Gateway:   gw,
		Cache:     cache,
		Refresher: refresher,
		Now:       time.Now,
	}
}

// Add validates and submits a new transaction.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	var req api.NewTransaction
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tx, err := h.toTransaction("", req)
	if err != nil {
		// Validation failures never reach the Gateway.
		handlers.RespondFailure(w, err)
		return
	}

	if !h.beginSubmit() {
		handlers.RespondError(w, http.StatusConflict, "a submission is already in progress")
		return
	}
	defer h.endSubmit()

	if err := h.Gateway.AddTransaction(r.Context(), tx); err != nil {
		handlers.RespondFailure(w, err)
		return
	}
	h.finishMutation(w, r, "transaction added")
}

// Update validates and submits an edit of an existing transaction.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req api.UpdateTransaction
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ID == "" {
		handlers.RespondError(w, http.StatusBadRequest, "id is required")
		return
	}

	tx, err := h.toTransaction(req.ID, req.NewTransaction)
	if err != nil {
		handlers.RespondFailure(w, err)
		return
	}

	if !h.beginSubmit() {
		handlers.RespondError(w, http.StatusConflict, "a submission is already in progress")
		return
	}
	defer h.endSubmit()

	if err := h.Gateway.UpdateTransaction(r.Context(), tx); err != nil {
		handlers.RespondFailure(w, err)
		return
	}
	h.finishMutation(w, r, "transaction updated")
}

// RequestDelete stages a deletion. Nothing reaches the Gateway until the
// confirmation call arrives; a new request replaces any earlier staged one.
func (h *Handler) RequestDelete(w http.ResponseWriter, r *http.Request) {
	var req api.DeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ID == "" {
		handlers.RespondError(w, http.StatusBadRequest, "id is required")
		return
	}
	month, err := mapping.MonthOf(req.Date)
	if err != nil {
		handlers.RespondFailure(w, &models.ValidationError{Field: "date", Message: "must be DD/MM/YYYY"})
		return
	}

	h.mu.Lock()
	h.pending = &pendingDelete{ID: req.ID, Month: month}
	h.mu.Unlock()

	handlers.RespondJSON(w, http.StatusOK, api.MutationResponse{Message: "deletion staged; confirm to proceed"})
}

// ConfirmDelete executes the staged deletion.
func (h *Handler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	staged := h.pending
	h.pending = nil
	h.mu.Unlock()

	if staged == nil {
		handlers.RespondError(w, http.StatusConflict, "no deletion staged")
		return
	}

	if !h.beginSubmit() {
		handlers.RespondError(w, http.StatusConflict, "a submission is already in progress")
		return
	}
	defer h.endSubmit()

	if err := h.Gateway.DeleteTransaction(r.Context(), staged.ID, staged.Month); err != nil {
		handlers.RespondFailure(w, err)
		return
	}
	h.finishMutation(w, r, "transaction deleted")
}

// CancelDelete drops the staged deletion, if any.
func (h *Handler) CancelDelete(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	h.pending = nil
	h.mu.Unlock()
	handlers.RespondJSON(w, http.StatusOK, api.MutationResponse{Message: "deletion cancelled"})
}

// finishMutation runs the post-success sequence: invalidate every view the
// mutation could affect, then refetch whichever view is active so the
// response carries fresh data.
func (h *Handler) finishMutation(w http.ResponseWriter, r *http.Request, message string) {
	h.Cache.Invalidate(viewcache.TransactionViews()...)

	refreshed, err := h.Refresher.RefreshActive(r.Context())
	if err != nil {
		// The mutation itself succeeded; the UI will refetch on its next
		// request, so report success without the payload.
		log.Printf("ERROR: post-mutation refresh failed: %v", err)
	}
	handlers.RespondJSON(w, http.StatusOK, api.MutationResponse{Message: message, Refreshed: refreshed})
}

// toTransaction converts a form submission to the Gateway's shape and
// validates it. The form date arrives as YYYY-MM-DD.
func (h *Handler) toTransaction(id string, req api.NewTransaction) (*models.Transaction, error) {
	displayDate, err := mapping.ToDisplayDate(req.Date)
	if err != nil {
		return nil, &models.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"}
	}
	month, err := mapping.MonthOf(displayDate)
	if err != nil {
		return nil, &models.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"}
	}

	tx := &models.Transaction{
		ID:       id,
		Date:     displayDate,
		Amount:   req.Amount,
		Type:     req.Type,
		Category: strings.TrimSpace(req.Category),
		Content:  strings.TrimSpace(req.Content),
		Note:     strings.TrimSpace(req.Note),
		Month:    month,
	}
	if err := tx.Validate(h.Now()); err != nil {
		return nil, err
	}
	return tx, nil
}

func (h *Handler) beginSubmit() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.submitting {
		return false
	}
	h.submitting = true
	return true
}

func (h *Handler) endSubmit() {
	h.mu.Lock()
	h.submitting = false
	h.mu.Unlock()
}
