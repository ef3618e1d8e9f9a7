package domain

// PaginatedResult is the page envelope shared by the backend query endpoint
// and the client-side filter engine.
type PaginatedResult[T any] struct {
	CurrentPage int  `json:"currentPage"`
	PageSize    int  `json:"pageSize"`
	TotalCount  int  `json:"totalCount"`
	TotalPages  int  `json:"totalPages"`
	HasPrevious bool `json:"hasPrevious"`
	HasNext     bool `json:"hasNext"`
	Items       []T  `json:"items"`
}

// NewPaginatedResult slices items to the requested page and derives the
// pagination fields from the full (pre-pagination) length.
func NewPaginatedResult[T any](items []T, page, pageSize int) PaginatedResult[T] {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return PaginatedResult[T]{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalCount:  total,
		TotalPages:  totalPages,
		HasPrevious: page > 1,
		HasNext:     page < totalPages,
		Items:       items[start:end],
	}
}

// EmptyPage is the degraded result used when a remote fetch fails.
func EmptyPage[T any](page, pageSize int) PaginatedResult[T] {
	if page < 1 {
		page = 1
	}
	return PaginatedResult[T]{
		CurrentPage: page,
		PageSize:    pageSize,
		Items:       []T{},
	}
}
