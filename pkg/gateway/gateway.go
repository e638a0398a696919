package gateway

import (
	"context"

	"github.com/tuan-design/miniappdesign/pkg/models"
)

// TransactionReader defines the read side of the Gateway's transaction data.
type TransactionReader interface {
	// TransactionsByDate retrieves all transactions for a single day.
	TransactionsByDate(ctx context.Context, q DailyQuery) ([]models.Transaction, error)

	// TransactionsByMonth retrieves all transactions for a month.
	TransactionsByMonth(ctx context.Context, q MonthQuery) ([]models.Transaction, error)

	// Search runs a server-paginated transaction search.
	Search(ctx context.Context, q SearchQuery) (*models.SearchResult, error)
}

// TransactionWriter defines the mutation side of the Gateway's transaction data.
type TransactionWriter interface {
	// AddTransaction creates a new transaction. The Gateway assigns the ID.
	AddTransaction(ctx context.Context, tx *models.Transaction) error

	// UpdateTransaction replaces an existing transaction by ID.
	UpdateTransaction(ctx context.Context, tx *models.Transaction) error

	// DeleteTransaction removes a transaction. The month locates the sheet
	// partition the record lives in.
	DeleteTransaction(ctx context.Context, id, month string) error
}

// ReportReader defines the Gateway's aggregate reporting reads.
type ReportReader interface {
	// FinancialSummary retrieves the income/expense rollup for a date range.
	FinancialSummary(ctx context.Context, q RangeQuery) (*models.FinancialSummary, error)

	// ChartData retrieves the per-category spending breakdown for a date range.
	ChartData(ctx context.Context, q RangeQuery) (*models.ChartBreakdown, error)

	// MonthlyData retrieves per-month income/expense totals for a year.
	MonthlyData(ctx context.Context, year int) ([]models.MonthlyTotals, error)
}

// CategoryReader lists the Gateway-owned category labels.
type CategoryReader interface {
	Categories(ctx context.Context) ([]string, error)
}

// KeywordStore defines reads and writes for category keyword entries.
type KeywordStore interface {
	// Keywords retrieves every category's keyword entry.
	Keywords(ctx context.Context) ([]models.KeywordEntry, error)

	// AddKeyword appends comma-joined keyword terms to a category.
	AddKeyword(ctx context.Context, category, keywords string) error

	// DeleteKeyword removes a single term from a category.
	DeleteKeyword(ctx context.Context, category, keyword string) error
}

// Client is the complete Gateway surface. Components should depend on the
// more granular interfaces above instead of this one where they can.
type Client interface {
	TransactionReader
	TransactionWriter
	ReportReader
	CategoryReader
	KeywordStore
}
