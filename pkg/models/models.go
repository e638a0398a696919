package models

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	Income  TransactionType = "Income"
	Expense TransactionType = "Expense"
)

// Transaction represents a single financial entry as the Gateway stores it.
// Dates travel in DD/MM/YYYY display form; Month is derived from Date and
// sent on mutations because the Gateway partitions its sheets by month.
type Transaction struct {
	ID       string          `json:"id"`
	Date     string          `json:"date"`
	Amount   int64           `json:"amount"`
	Type     TransactionType `json:"type"`
	Category string          `json:"category"`
	Content  string          `json:"content"`
	Note     string          `json:"note,omitempty"`
	Month    string          `json:"month,omitempty"`
}

// KeywordEntry maps a category to its comma-joined list of search terms.
type KeywordEntry struct {
	Category string `json:"category"`
	Keywords string `json:"keywords"`
}

// FinancialSummary is the Gateway's income/expense rollup for a date range.
type FinancialSummary struct {
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
}

// Balance returns income minus expense.
func (s FinancialSummary) Balance() int64 {
	return s.Income - s.Expense
}

// CategoryAmount is one slice of the per-category spending breakdown.
type CategoryAmount struct {
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
}

// ChartBreakdown is the Gateway's getChartData payload: spending per
// category plus the full category list for stable ordering.
type ChartBreakdown struct {
	ChartData  []CategoryAmount `json:"chartData"`
	Categories []string         `json:"categories"`
}

// MonthlyTotals is one month's income/expense pair from getMonthlyData.
type MonthlyTotals struct {
	Month   int   `json:"month"`
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
}

// SearchResult is the server-paginated response of searchTransactions.
// The Gateway owns the page math here; the client must not re-derive it.
type SearchResult struct {
	Transactions      []Transaction `json:"transactions"`
	TotalTransactions int           `json:"totalTransactions"`
	TotalPages        int           `json:"totalPages"`
	CurrentPage       int           `json:"currentPage"`
}
