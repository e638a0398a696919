package gateway

import (
	"fmt"
	"net/url"
	"strconv"
)

// DailyQuery selects all transactions for one day.
type DailyQuery struct {
	// Date is in YYYY-MM-DD query form.
	Date string
}

// CacheKey deterministically encodes the query for cache-slot comparison.
func (q DailyQuery) CacheKey() string {
	return "daily:" + q.Date
}

func (q DailyQuery) params() url.Values {
	v := url.Values{}
	v.Set("date", q.Date)
	return v
}

// MonthQuery selects all transactions for one calendar month.
type MonthQuery struct {
	Month int
	Year  int
}

// CacheKey deterministically encodes the query for cache-slot comparison.
func (q MonthQuery) CacheKey() string {
	return fmt.Sprintf("month:%04d-%02d", q.Year, q.Month)
}

func (q MonthQuery) params() url.Values {
	v := url.Values{}
	v.Set("month", strconv.Itoa(q.Month))
	v.Set("year", strconv.Itoa(q.Year))
	return v
}

// RangeQuery selects an inclusive date range, both ends in YYYY-MM-DD form.
type RangeQuery struct {
	StartDate string
	EndDate   string
}

func (q RangeQuery) params() url.Values {
	v := url.Values{}
	v.Set("startDate", q.StartDate)
	v.Set("endDate", q.EndDate)
	return v
}

// SearchQuery filters transactions server-side. Zero values mean "unset":
// Month 0 searches the whole year, Amount 0 and empty strings skip that
// filter. Page is 1-based; the Gateway owns the page math.
type SearchQuery struct {
	Month    int
	Year     int
	Content  string
	Amount   int64
	Category string
	Page     int
	Limit    int
}

// HasFilter reports whether at least one of content/amount/category is set.
// The Gateway rejects unfiltered searches, so handlers gate on this first.
func (q SearchQuery) HasFilter() bool {
	return q.Content != "" || q.Amount > 0 || q.Category != ""
}

// CacheKey deterministically encodes every parameter that affects the
// result. Page is included: search is server-paginated, so each page is its
// own cacheable result set.
func (q SearchQuery) CacheKey() string {
	month := "all"
	if q.Month > 0 {
		month = fmt.Sprintf("%02d", q.Month)
	}
	amount := ""
	if q.Amount > 0 {
		amount = strconv.FormatInt(q.Amount, 10)
	}
	return fmt.Sprintf("search:%d-%s-%s-%s-%s-p%d", q.Year, month, q.Content, amount, q.Category, q.Page)
}

func (q SearchQuery) params() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("limit", strconv.Itoa(q.Limit))
	if q.Month > 0 {
		v.Set("month", strconv.Itoa(q.Month))
		v.Set("year", strconv.Itoa(q.Year))
	}
	if q.Content != "" {
		v.Set("content", q.Content)
	}
	if q.Amount > 0 {
		v.Set("amount", strconv.FormatInt(q.Amount, 10))
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	return v
}
