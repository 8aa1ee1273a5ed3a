package backend

import "wallet-admin-console/internal/core/domain"

// paginated is the upstream page envelope.
type paginated[T any] struct {
	Data        []T   `json:"data"`
	Total       int64 `json:"total"`
	PerPage     int   `json:"per_page"`
	CurrentPage int   `json:"current_page"`
}

// toPage converts the envelope, trusting the request when the backend
// omits page metadata.
func (p paginated[T]) toPage(req domain.PageRequest) *domain.Page[T] {
	page := &domain.Page[T]{
		Items:   p.Data,
		Total:   p.Total,
		Page:    p.CurrentPage,
		PerPage: p.PerPage,
	}
	if page.Items == nil {
		page.Items = []T{}
	}
	if page.Page < 1 {
		page.Page = req.Page
	}
	if page.PerPage < 1 {
		page.PerPage = req.PerPage
	}
	if page.Total < int64(len(page.Items)) {
		page.Total = int64(len(page.Items))
	}
	return page
}
