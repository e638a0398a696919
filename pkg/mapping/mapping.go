package mapping

import (
	"fmt"
	"time"

	"github.com/tuan-design/miniappdesign/pkg/models"
)

// QueryDateLayout is the form the Gateway expects in query parameters.
const QueryDateLayout = "2006-01-02"

// DisplayDate formats a time in the canonical DD/MM/YYYY display form.
func DisplayDate(t time.Time) string {
	return t.Format(models.DisplayDateLayout)
}

// QueryDate formats a time in the YYYY-MM-DD form used in query parameters.
func QueryDate(t time.Time) string {
	return t.Format(QueryDateLayout)
}

// ToDisplayDate converts a YYYY-MM-DD query date to DD/MM/YYYY.
func ToDisplayDate(queryDate string) (string, error) {
	t, err := time.Parse(QueryDateLayout, queryDate)
	if err != nil {
		return "", fmt.Errorf("invalid query date %q: %w", queryDate, err)
	}
	return t.Format(models.DisplayDateLayout), nil
}

// ToQueryDate converts a DD/MM/YYYY display date to YYYY-MM-DD.
func ToQueryDate(displayDate string) (string, error) {
	t, err := time.Parse(models.DisplayDateLayout, displayDate)
	if err != nil {
		return "", fmt.Errorf("invalid display date %q: %w", displayDate, err)
	}
	return t.Format(QueryDateLayout), nil
}

// MonthOf extracts the zero-padded two-digit month from a DD/MM/YYYY date.
// The Gateway partitions storage by month, so every transaction mutation
// must carry this alongside the full date.
func MonthOf(displayDate string) (string, error) {
	t, err := time.Parse(models.DisplayDateLayout, displayDate)
	if err != nil {
		return "", fmt.Errorf("invalid display date %q: %w", displayDate, err)
	}
	return fmt.Sprintf("%02d", int(t.Month())), nil
}

// Summarize computes the income/expense rollup for a list of transactions.
// Unknown types are ignored rather than treated as either side.
func Summarize(txs []models.Transaction) models.FinancialSummary {
	var summary models.FinancialSummary
	for _, tx := range txs {
		switch tx.Type {
		case models.Income:
			summary.Income += tx.Amount
		case models.Expense:
			summary.Expense += tx.Amount
		}
	}
	return summary
}

// FillMonths pads a sparse getMonthlyData result to the contiguous
// [startMonth, endMonth] range, inserting zero rows for missing months.
func FillMonths(data []models.MonthlyTotals, startMonth, endMonth int) []models.MonthlyTotals {
	if startMonth < 1 {
		startMonth = 1
	}
	if endMonth > 12 {
		endMonth = 12
	}
	if startMonth > endMonth {
		return nil
	}

	byMonth := make(map[int]models.MonthlyTotals, len(data))
	for _, m := range data {
		byMonth[m.Month] = m
	}

	filled := make([]models.MonthlyTotals, 0, endMonth-startMonth+1)
	for month := startMonth; month <= endMonth; month++ {
		if m, ok := byMonth[month]; ok {
			filled = append(filled, m)
		} else {
			filled = append(filled, models.MonthlyTotals{Month: month})
		}
	}
	return filled
}
