package domain

// MaxPerPage caps every listing request sent upstream.
const MaxPerPage = 100

// Default page sizes per listing.
const (
	DefaultWalletsPerPage      = 20
	DefaultTransactionsPerPage = 30
	DefaultPinsPerPage         = 25
	DefaultSellersPerPage      = 30
)

// PageRequest is a normalized 1-indexed page request.
type PageRequest struct {
	Page    int
	PerPage int
}

// NewPageRequest clamps page to >= 1 and perPage to [1, MaxPerPage],
// substituting defaultPerPage when perPage is not positive.
func NewPageRequest(page, perPage, defaultPerPage int) PageRequest {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return PageRequest{Page: page, PerPage: perPage}
}

// Index is the 0-indexed page used by table widgets.
func (r PageRequest) Index() int {
	return r.Page - 1
}

// PageFromIndex converts a 0-indexed widget page back to the 1-indexed page.
func PageFromIndex(index int) int {
	return index + 1
}

// Page is one page of a paginated upstream listing.
type Page[T any] struct {
	Items   []T
	Total   int64
	Page    int
	PerPage int
}

// PageIndex is the 0-indexed position of this page.
func (p Page[T]) PageIndex() int {
	return p.Page - 1
}

// TotalPages returns the number of pages given Total and PerPage.
func (p Page[T]) TotalPages() int {
	if p.PerPage <= 0 {
		return 0
	}
	return int((p.Total + int64(p.PerPage) - 1) / int64(p.PerPage))
}

// Empty reports whether the page carries no rows.
func (p Page[T]) Empty() bool {
	return len(p.Items) == 0
}
