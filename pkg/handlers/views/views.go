// Package views implements the read side of the dashboard: one endpoint per
// tab, each backed by a cache slot and a pager.
package views

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/tuan-design/miniappdesign/pkg/api"
	"github.com/tuan-design/miniappdesign/pkg/debounce"
	"github.com/tuan-design/miniappdesign/pkg/gateway"
	"github.com/tuan-design/miniappdesign/pkg/handlers"
	"github.com/tuan-design/miniappdesign/pkg/mapping"
	"github.com/tuan-design/miniappdesign/pkg/models"
	"github.com/tuan-design/miniappdesign/pkg/pagination"
	"github.com/tuan-design/miniappdesign/pkg/viewcache"
)

// searchPagesRetained is how many page-keyed search results stay cached, so
// stepping back to a recently viewed page costs no network call.
const searchPagesRetained = 5

// keywordsCacheKey is the fixed key of the keyword list; it has no query
// parameters.
const keywordsCacheKey = "keywords"

// Handler serves every view of the dashboard.
type Handler struct {
	Gateway gateway.Client
	Cache   *viewcache.Manager
	State   *handlers.AppState
	Live    *debounce.Debouncer

	// Now is injectable for tests.
	Now func() time.Time

	mu     sync.Mutex
	pagers map[viewcache.View]*pagination.Pager
}

// NewViewsHandler creates a views handler and configures the search view's
// multi-page retention.
func NewViewsHandler(gw gateway.Client, cache *viewcache.Manager, state *handlers.AppState) *Handler {
	cache.SetRetention(viewcache.SearchResults, searchPagesRetained)
	return &Handler{
		Gateway: gw,
		Cache:   cache,
		State:   state,
		Live:    debounce.New(debounce.DefaultQuietPeriod),
		Now:     time.Now,
		pagers:  make(map[viewcache.View]*pagination.Pager),
	}
}

// Make sure we conform to the interface
var _ handlers.Refresher = (*Handler)(nil)

func (h *Handler) pager(view viewcache.View) *pagination.Pager {
	h.mu.Lock()
	defer h.mu.Unlock()
	p, ok := h.pagers[view]
	if !ok {
		p = pagination.NewPager()
		h.pagers[view] = p
	}
	return p
}

// Daily serves the transactions-of-one-day view.
func (h *Handler) Daily(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		handlers.RespondError(w, http.StatusBadRequest, "date is required")
		return
	}
	if _, err := mapping.ToDisplayDate(date); err != nil {
		handlers.RespondError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	q := gateway.DailyQuery{Date: date}
	h.State.SetActive(viewcache.DailyTransactions, q)

	txs, err := h.fetchDaily(r.Context(), q)
	if err != nil {
		handlers.RespondFailure(w, err)
		return
	}
	h.respondClientPaged(w, r, viewcache.DailyTransactions, txs)
}

// Monthly serves the transactions-of-one-month view.
func (h *Handler) Monthly(w http.ResponseWriter, r *http.Request) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		handlers.RespondError(w, http.StatusBadRequest, "month must be between 1 and 12")
		return
	}
	year := h.Now().Year()
	if y := r.URL.Query().Get("year"); y != "" {
		year, err = strconv.Atoi(y)
		if err != nil {
			handlers.RespondError(w, http.StatusBadRequest, "year must be a number")
			return
		}
	}

	q := gateway.MonthQuery{Month: month, Year: year}
	h.State.SetActive(viewcache.MonthlyExpenses, q)

	txs, err := h.fetchMonthly(r.Context(), q)
	if err != nil {
		handlers.RespondFailure(w, err)
		return
	}
	h.respondClientPaged(w, r, viewcache.MonthlyExpenses, txs)
}

// Search serves the server-paginated search view.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseSearchQuery(r)
	if err != nil {
		handlers.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.State.SetActive(viewcache.SearchResults, q)

	result, err := h.fetchSearch(r.Context(), q)
	if err != nil {
		handlers.RespondFailure(w, err)
		return
	}

	// The Gateway owns the page math in this regime; the pager just mirrors it.
	h.pager(viewcache.SearchResults).Page = result.CurrentPage
	handlers.RespondJSON(w, http.StatusOK, api.TransactionPage{
		Items:      result.Transactions,
		TotalItems: result.TotalTransactions,
		Page:       result.CurrentPage,
		TotalPages: result.TotalPages,
	})
}

// LiveSearch coalesces search-as-you-type triggers: an already cached page
// is served at once, anything else is fetched after a quiet period so a
// burst of keystrokes costs at most one Gateway call.
func (h *Handler) LiveSearch(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseSearchQuery(r)
	if err != nil {
		handlers.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.Cache.Cached(viewcache.SearchResults, q.CacheKey()) {
		h.Search(w, r)
		return
	}

	h.Live.Trigger(func() {
		ctx, cancel := context.WithTimeout(context.Background(), gateway.DefaultTimeout)
		defer cancel()
		if _, err := h.fetchSearch(ctx, q); err != nil {
			log.Printf("ERROR: live search warm-up failed: %v", err)
		}
	})
	handlers.RespondJSON(w, http.StatusAccepted, map[string]string{"status": "pending"})
}

// Stats serves the statistics tab: range rollup plus chart breakdown.
// The original refetches this tab on every trigger, so it is not cached.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("startDate")
	end := r.URL.Query().Get("endDate")
	if start == "" || end == "" {
		handlers.RespondError(w, http.StatusBadRequest, "startDate and endDate are required")
		return
	}
	startT, err := time.Parse(mapping.QueryDateLayout, start)
	if err != nil {
		handlers.RespondError(w, http.StatusBadRequest, "startDate must be YYYY-MM-DD")
		return
	}
	endT, err := time.Parse(mapping.QueryDateLayout, end)
	if err != nil {
		handlers.RespondError(w, http.StatusBadRequest, "endDate must be YYYY-MM-DD")
		return
	}
	if startT.After(endT) {
		handlers.RespondError(w, http.StatusBadRequest, "startDate must not be after endDate")
		return
	}

	q := gateway.RangeQuery{StartDate: start, EndDate: end}
	summary, err := h.Gateway.FinancialSummary(r.Context(), q)
	if err != nil {
		handlers.RespondFailure(w, err)
		return
	}
	chart, err := h.Gateway.ChartData(r.Context(), q)
	if err != nil {
		handlers.RespondFailure(w, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, api.StatsResponse{Summary: summary, Chart: chart})
}

// MonthlyChart serves the per-month income/expense chart for a month range
// of the current year, padding months the Gateway has no data for.
func (h *Handler) MonthlyChart(w http.ResponseWriter, r *http.Request) {
	startMonth := h.intParam(r, "startMonth", 1)
	endMonth := h.intParam(r, "endMonth", int(h.Now().Month()))
	if startMonth > endMonth {
		handlers.RespondError(w, http.StatusBadRequest, "startMonth must not be after endMonth")
		return
	}

	totals, err := h.Gateway.MonthlyData(r.Context(), h.Now().Year())
	if err != nil {
		handlers.RespondFailure(w, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, api.MonthlyChartResponse{
		Months: mapping.FillMonths(totals, startMonth, endMonth),
	})
}

// Keywords serves the keyword list view.
func (h *Handler) Keywords(w http.ResponseWriter, r *http.Request) {
	h.State.SetActive(viewcache.KeywordList, nil)

	entries, err := h.fetchKeywords(r.Context())
	if err != nil {
		handlers.RespondFailure(w, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, entries)
}

// Categories lists the Gateway-owned category labels. Deliberately
// uncached: the list is tiny and each form open rereads it.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Gateway.Categories(r.Context())
	if err != nil {
		handlers.RespondFailure(w, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, categories)
}

// RefreshActive re-runs the fetch for the active view. Called by mutation
// handlers right after invalidation, so it reaches the Gateway again.
func (h *Handler) RefreshActive(ctx context.Context) (any, error) {
	view, query := h.State.Active()
	switch view {
	case viewcache.DailyTransactions:
		q, ok := query.(gateway.DailyQuery)
		if !ok {
			return nil, nil
		}
		return h.fetchDaily(ctx, q)
	case viewcache.MonthlyExpenses:
		q, ok := query.(gateway.MonthQuery)
		if !ok {
			return nil, nil
		}
		return h.fetchMonthly(ctx, q)
	case viewcache.SearchResults:
		q, ok := query.(gateway.SearchQuery)
		if !ok {
			return nil, nil
		}
		return h.fetchSearch(ctx, q)
	case viewcache.KeywordList:
		return h.fetchKeywords(ctx)
	default:
		return nil, nil
	}
}

func (h *Handler) fetchDaily(ctx context.Context, q gateway.DailyQuery) ([]models.Transaction, error) {
	return viewcache.Lookup(ctx, h.Cache, viewcache.DailyTransactions, q.CacheKey(), func(ctx context.Context) ([]models.Transaction, error) {
		return h.Gateway.TransactionsByDate(ctx, q)
	})
}

func (h *Handler) fetchMonthly(ctx context.Context, q gateway.MonthQuery) ([]models.Transaction, error) {
	return viewcache.Lookup(ctx, h.Cache, viewcache.MonthlyExpenses, q.CacheKey(), func(ctx context.Context) ([]models.Transaction, error) {
		return h.Gateway.TransactionsByMonth(ctx, q)
	})
}

func (h *Handler) fetchSearch(ctx context.Context, q gateway.SearchQuery) (*models.SearchResult, error) {
	return viewcache.Lookup(ctx, h.Cache, viewcache.SearchResults, q.CacheKey(), func(ctx context.Context) (*models.SearchResult, error) {
		return h.Gateway.Search(ctx, q)
	})
}

func (h *Handler) fetchKeywords(ctx context.Context) ([]models.KeywordEntry, error) {
	return viewcache.Lookup(ctx, h.Cache, viewcache.KeywordList, keywordsCacheKey, func(ctx context.Context) ([]models.KeywordEntry, error) {
		return h.Gateway.Keywords(ctx)
	})
}

// respondClientPaged applies the client-side pagination regime: the full
// result set is already in the cache slot, so page turns are pure slices.
func (h *Handler) respondClientPaged(w http.ResponseWriter, r *http.Request, view viewcache.View, txs []models.Transaction) {
	pager := h.pager(view)
	if page := r.URL.Query().Get("page"); page != "" {
		if n, err := strconv.Atoi(page); err == nil {
			pager.Page = n
		}
	}
	pager.ClampTo(len(txs))
	switch r.URL.Query().Get("turn") {
	case "next":
		pager.Advance(+1, pagination.TotalPages(len(txs), pager.PageSize))
	case "prev":
		pager.Advance(-1, pagination.TotalPages(len(txs), pager.PageSize))
	}

	resp := api.TransactionPage{
		Items:      pagination.Slice(txs, pager.PageSize, pager.Page),
		TotalItems: len(txs),
		Page:       pager.Page,
		TotalPages: pagination.TotalPages(len(txs), pager.PageSize),
	}
	if len(txs) > 0 {
		summary := mapping.Summarize(txs)
		resp.Summary = &summary
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}

func (h *Handler) parseSearchQuery(r *http.Request) (gateway.SearchQuery, error) {
	q := gateway.SearchQuery{
		Year:     h.Now().Year(),
		Content:  r.URL.Query().Get("content"),
		Category: r.URL.Query().Get("category"),
		Limit:    pagination.DefaultPageSize,
		Page:     h.intParam(r, "page", 1),
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if m := r.URL.Query().Get("month"); m != "" {
		month, err := strconv.Atoi(m)
		if err != nil || month < 1 || month > 12 {
			return q, &models.ValidationError{Field: "month", Message: "must be between 1 and 12"}
		}
		q.Month = month
	}
	if a := r.URL.Query().Get("amount"); a != "" {
		amount, err := strconv.ParseInt(a, 10, 64)
		if err != nil || amount < 0 {
			return q, &models.ValidationError{Field: "amount", Message: "must be a non-negative number"}
		}
		q.Amount = amount
	}
	if !q.HasFilter() {
		return q, &models.ValidationError{Field: "filters", Message: "at least one of content, amount or category is required"}
	}
	return q, nil
}

func (h *Handler) intParam(r *http.Request, name string, fallback int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
