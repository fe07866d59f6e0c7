package domain

// PaginationParams carries page/limit values from the HTTP layer to the register view.
// Page is 1-indexed. Limit is capped at 100 by NewPaginationParams.
type PaginationParams struct {
	// Page is the current page number, starting at 1.
	Page int
	// Limit is the maximum number of entries to return.
	Limit int
}

// NewPaginationParams builds a PaginationParams from optional HTTP query params.
// Nil pointers fall back to sane defaults (page=1, limit=20).
// The limit is capped at 100 to keep responses small.
func NewPaginationParams(page, limit *int) PaginationParams {
	p := PaginationParams{Page: 1, Limit: 20}
	if page != nil && *page >= 1 {
		p.Page = *page
	}
	if limit != nil && *limit >= 1 {
		p.Limit = *limit
		if p.Limit > 100 {
			p.Limit = 100
		}
	}
	return p
}

// Offset returns the zero-based index of the first item on the page.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Bounds returns the half-open [start, end) slice window for a list of n
// items. Pages past the end yield an empty window at n, however large Page is.
func (p PaginationParams) Bounds(n int) (start, end int) {
	if n <= 0 || p.Limit <= 0 || p.Page < 1 {
		return 0, 0
	}
	// Compare page indexes before multiplying so a huge Page cannot overflow.
	if pages := (n + p.Limit - 1) / p.Limit; p.Page-1 >= pages {
		return n, n
	}
	start = p.Offset()
	end = min(start+p.Limit, n)
	return start, end
}
