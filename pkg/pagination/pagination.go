// Package pagination implements the page math shared by every view: a
// 1-based current page, a fixed page size, and pure slicing over an
// already-fetched result set.
package pagination

// DefaultPageSize is the fixed page size of every view.
const DefaultPageSize = 10

// Slice returns the pageIndex'th page of data (1-based). Out-of-range
// indexes are not an error; they yield an empty slice.
func Slice[T any](data []T, pageSize, pageIndex int) []T {
	if pageSize <= 0 || pageIndex < 1 {
		return nil
	}
	start := (pageIndex - 1) * pageSize
	if start >= len(data) {
		return nil
	}
	end := start + pageSize
	if end > len(data) {
		end = len(data)
	}
	return data[start:end]
}

// TotalPages returns ceil(totalItems / pageSize), with a minimum of 1 for
// display purposes even when there are no items. Navigation controls are
// disabled separately when totalItems is zero.
func TotalPages(totalItems, pageSize int) int {
	if pageSize <= 0 || totalItems <= 0 {
		return 1
	}
	return (totalItems + pageSize - 1) / pageSize
}

// Clamp bounds pageIndex to [1, max(1, totalPages)].
func Clamp(pageIndex, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if pageIndex < 1 {
		return 1
	}
	if pageIndex > totalPages {
		return totalPages
	}
	return pageIndex
}

// Pager tracks the current page of one view.
type Pager struct {
	Page     int
	PageSize int
}

// NewPager starts at page 1 with the default page size.
func NewPager() *Pager {
	return &Pager{Page: 1, PageSize: DefaultPageSize}
}

// Advance moves one page forward (+1) or back (-1), staying inside
// [1, totalPages]. At a boundary it is a no-op.
func (p *Pager) Advance(direction, totalPages int) {
	p.Page = Clamp(p.Page+direction, totalPages)
}

// ClampTo re-bounds the current page after the underlying data set changed
// size, and returns the clamped page.
func (p *Pager) ClampTo(totalItems int) int {
	p.Page = Clamp(p.Page, TotalPages(totalItems, p.PageSize))
	return p.Page
}
