// Package api defines the request and response shapes of the dashboard's
// HTTP surface.
package api

import "github.com/tuan-design/miniappdesign/pkg/models"

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// TransactionPage is one visible page of a transaction view plus the
// figures the summary region needs. For client-paginated views the page
// math is local; for the server-paginated search view it echoes the
// Gateway's totals.
type TransactionPage struct {
	Items      []models.Transaction     `json:"items"`
	Summary    *models.FinancialSummary `json:"summary,omitempty"`
	TotalItems int                      `json:"totalItems"`
	Page       int                      `json:"page"`
	TotalPages int                      `json:"totalPages"`
}

// StatsResponse is the statistics tab payload: the range rollup and the
// per-category chart breakdown.
type StatsResponse struct {
	Summary *models.FinancialSummary `json:"summary"`
	Chart   *models.ChartBreakdown   `json:"chart"`
}

// MonthlyChartResponse is the month-by-month income/expense chart payload.
type MonthlyChartResponse struct {
	Months []models.MonthlyTotals `json:"months"`
}

// NewTransaction is the add-transaction form submission. Date arrives in
// YYYY-MM-DD form straight from a date input.
type NewTransaction struct {
	Date     string                 `json:"date"`
	Amount   int64                  `json:"amount"`
	Type     models.TransactionType `json:"type"`
	Category string                 `json:"category"`
	Content  string                 `json:"content"`
	Note     string                 `json:"note"`
}

// UpdateTransaction is the edit-transaction form submission.
type UpdateTransaction struct {
	ID string `json:"id"`
	NewTransaction
}

// DeleteRequest stages a transaction deletion pending confirmation. The
// date (DD/MM/YYYY, as shown in the list) locates the Gateway's month
// partition.
type DeleteRequest struct {
	ID   string `json:"id"`
	Date string `json:"date"`
}

// KeywordRequest adds terms to a category or names a single term to delete.
type KeywordRequest struct {
	Category string `json:"category"`
	Keywords string `json:"keywords,omitempty"`
	Keyword  string `json:"keyword,omitempty"`
}

// MutationResponse reports a successful mutation along with the refreshed
// payload of whichever view was active, so the UI repaints immediately.
type MutationResponse struct {
	Message   string `json:"message"`
	Refreshed any    `json:"refreshed,omitempty"`
}
