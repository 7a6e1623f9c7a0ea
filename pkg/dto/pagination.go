package dto

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageRequest is a normalised page selection.
type PageRequest struct {
	Page     int
	PageSize int
}

// NewPageRequest clamps page to >= 1 and size to 1..MaxPageSize, using def
// when size is not positive.
func NewPageRequest(page, size, def int) PageRequest {
	if page < 1 {
		page = 1
	}
	if def <= 0 {
		def = DefaultPageSize
	}
	if size <= 0 {
		size = def
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return PageRequest{Page: page, PageSize: size}
}

// Offset returns the row offset of the page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Page is one page of results.
type Page[T any] struct {
	Count    int64 `json:"count"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Results  []T   `json:"results"`
}

// NewPage builds a Page, never returning nil results.
func NewPage[T any](items []T, count int64, req PageRequest) *Page[T] {
	if items == nil {
		items = []T{}
	}
	return &Page[T]{Count: count, Page: req.Page, PageSize: req.PageSize, Results: items}
}

// MapPage converts the results of a page.
func MapPage[T, U any](p *Page[T], fn func(T) U) *Page[U] {
	out := make([]U, 0, len(p.Results))
	for _, r := range p.Results {
		out = append(out, fn(r))
	}
	return &Page[U]{Count: p.Count, Page: p.Page, PageSize: p.PageSize, Results: out}
}
