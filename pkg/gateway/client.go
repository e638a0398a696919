package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tuan-design/miniappdesign/pkg/middleware"
	"github.com/tuan-design/miniappdesign/pkg/models"
)

// DefaultTimeout bounds one logical request end to end. The relay enforces
// its own upstream timeout of the same order, so this mostly covers the hop
// to the relay itself.
const DefaultTimeout = 10 * time.Second

// HTTPClient implements Client against the spreadsheet Gateway, reached
// through the CORS relay. Every request is addressed to the relay with the
// real destination carried as a URL-encoded query parameter.
type HTTPClient struct {
	RelayURL string
	APIURL   string
	SheetID  string

	http *http.Client
}

// NewHTTPClient creates a Gateway client routed through the given relay.
func NewHTTPClient(relayURL, apiURL, sheetID string) *HTTPClient {
	return &HTTPClient{
		RelayURL: relayURL,
		APIURL:   apiURL,
		SheetID:  sheetID,
		http:     &http.Client{Timeout: DefaultTimeout},
	}
}

// Make sure we conform to the interface
var _ Client = (*HTTPClient)(nil)

// relayURL wraps a destination URL in a relay request.
func (c *HTTPClient) relayURL(destination string) string {
	return c.RelayURL + "?url=" + url.QueryEscape(destination)
}

// readURL builds the destination URL for a read action.
func (c *HTTPClient) readURL(action string, params url.Values) string {
	if params == nil {
		params = url.Values{}
	}
	params.Set("action", action)
	params.Set("sheetId", c.SheetID)
	return c.APIURL + "?" + params.Encode()
}

// errorEnvelope detects application-level errors the Gateway reports inside
// a 2xx body.
type errorEnvelope struct {
	Error string `json:"error"`
}

func (c *HTTPClient) do(req *http.Request, out any) error {
	req.Header.Set("Content-Type", "application/json")
	if id := middleware.GetRequestID(req.Context()); id != "" {
		req.Header.Set("X-Request-Id", id)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &GatewayError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &GatewayError{Message: fmt.Sprintf("reading response: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &GatewayError{Message: string(bytes.TrimSpace(body)), StatusCode: resp.StatusCode}
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		return &GatewayError{Message: envelope.Error, StatusCode: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &GatewayError{Message: fmt.Sprintf("decoding response: %v", err)}
	}
	return nil
}

func (c *HTTPClient) get(ctx context.Context, action string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.relayURL(c.readURL(action, params)), nil)
	if err != nil {
		return &GatewayError{Message: err.Error()}
	}
	return c.do(req, out)
}

func (c *HTTPClient) post(ctx context.Context, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return &GatewayError{Message: fmt.Sprintf("encoding request: %v", err)}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.relayURL(c.APIURL), bytes.NewReader(body))
	if err != nil {
		return &GatewayError{Message: err.Error()}
	}
	// Writes only report success or an error field; there is no payload to keep.
	return c.do(req, nil)
}

// TransactionsByDate retrieves all transactions for a single day.
func (c *HTTPClient) TransactionsByDate(ctx context.Context, q DailyQuery) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := c.get(ctx, "getTransactionsByDate", q.params(), &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// TransactionsByMonth retrieves all transactions for a month.
func (c *HTTPClient) TransactionsByMonth(ctx context.Context, q MonthQuery) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := c.get(ctx, "getTransactionsByMonth", q.params(), &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// Search runs a server-paginated transaction search.
func (c *HTTPClient) Search(ctx context.Context, q SearchQuery) (*models.SearchResult, error) {
	var result models.SearchResult
	if err := c.get(ctx, "searchTransactions", q.params(), &result); err != nil {
		return nil, err
	}
	if result.CurrentPage == 0 {
		result.CurrentPage = 1
	}
	if result.TotalPages == 0 {
		result.TotalPages = 1
	}
	return &result, nil
}

// Categories lists the Gateway-owned category labels.
func (c *HTTPClient) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.get(ctx, "getCategories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Keywords retrieves every category's keyword entry.
func (c *HTTPClient) Keywords(ctx context.Context) ([]models.KeywordEntry, error) {
	var entries []models.KeywordEntry
	if err := c.get(ctx, "getKeywords", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// FinancialSummary retrieves the income/expense rollup for a date range.
func (c *HTTPClient) FinancialSummary(ctx context.Context, q RangeQuery) (*models.FinancialSummary, error) {
	var summary models.FinancialSummary
	if err := c.get(ctx, "getFinancialSummary", q.params(), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// ChartData retrieves the per-category spending breakdown for a date range.
func (c *HTTPClient) ChartData(ctx context.Context, q RangeQuery) (*models.ChartBreakdown, error) {
	var breakdown models.ChartBreakdown
	if err := c.get(ctx, "getChartData", q.params(), &breakdown); err != nil {
		return nil, err
	}
	return &breakdown, nil
}

// MonthlyData retrieves per-month income/expense totals for a year.
func (c *HTTPClient) MonthlyData(ctx context.Context, year int) ([]models.MonthlyTotals, error) {
	params := url.Values{}
	params.Set("year", fmt.Sprintf("%d", year))
	var totals []models.MonthlyTotals
	if err := c.get(ctx, "getMonthlyData", params, &totals); err != nil {
		return nil, err
	}
	return totals, nil
}

// transactionWrite is the JSON body of every transaction mutation. The
// action field discriminates; month locates the Gateway's sheet partition.
type transactionWrite struct {
	Action   string                 `json:"action"`
	SheetID  string                 `json:"sheetId"`
	ID       string                 `json:"id,omitempty"`
	Date     string                 `json:"date"`
	Amount   int64                  `json:"amount"`
	Type     models.TransactionType `json:"type"`
	Category string                 `json:"category"`
	Content  string                 `json:"content"`
	Note     string                 `json:"note"`
	Month    string                 `json:"month"`
}

func (c *HTTPClient) transactionWrite(action string, tx *models.Transaction) transactionWrite {
	return transactionWrite{
		Action:   action,
		SheetID:  c.SheetID,
		ID:       tx.ID,
		Date:     tx.Date,
		Amount:   tx.Amount,
		Type:     tx.Type,
		Category: tx.Category,
		Content:  tx.Content,
		Note:     tx.Note,
		Month:    tx.Month,
	}
}

// AddTransaction creates a new transaction. The Gateway assigns the ID.
func (c *HTTPClient) AddTransaction(ctx context.Context, tx *models.Transaction) error {
	return c.post(ctx, c.transactionWrite("addTransaction", tx))
}

// UpdateTransaction replaces an existing transaction by ID.
func (c *HTTPClient) UpdateTransaction(ctx context.Context, tx *models.Transaction) error {
	return c.post(ctx, c.transactionWrite("updateTransaction", tx))
}

// DeleteTransaction removes a transaction from the given month partition.
func (c *HTTPClient) DeleteTransaction(ctx context.Context, id, month string) error {
	return c.post(ctx, map[string]string{
		"action":  "deleteTransaction",
		"sheetId": c.SheetID,
		"id":      id,
		"month":   month,
	})
}

// AddKeyword appends comma-joined keyword terms to a category.
func (c *HTTPClient) AddKeyword(ctx context.Context, category, keywords string) error {
	return c.post(ctx, map[string]string{
		"action":   "addKeyword",
		"sheetId":  c.SheetID,
		"category": category,
		"keywords": keywords,
	})
}

// DeleteKeyword removes a single term from a category.
func (c *HTTPClient) DeleteKeyword(ctx context.Context, category, keyword string) error {
	return c.post(ctx, map[string]string{
		"action":   "deleteKeyword",
		"sheetId":  c.SheetID,
		"category": category,
		"keyword":  keyword,
	})
}
