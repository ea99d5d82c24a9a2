package service

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 25

	// MaxPageNumber and MaxPageSize bound the offset so it always fits in an int.
	MaxPageNumber = 1_000_000
	MaxPageSize   = 100
)

// Request carries the identity of the user every operation is scoped to.
type Request struct {
	UserID string
}

// PagedRequest carries 1-based offset pagination.
type PagedRequest struct {
	Request
	PageNumber int
	PageSize   int
}

// normalize replaces unset or invalid paging values with the defaults and
// clamps oversized ones to the maximums.
func (p PagedRequest) normalize() (pageNumber, pageSize int) {
	pageNumber, pageSize = p.PageNumber, p.PageSize
	switch {
	case pageNumber < 1:
		pageNumber = DefaultPageNumber
	case pageNumber > MaxPageNumber:
		pageNumber = MaxPageNumber
	}
	switch {
	case pageSize < 1:
		pageSize = DefaultPageSize
	case pageSize > MaxPageSize:
		pageSize = MaxPageSize
	}
	return pageNumber, pageSize
}

func offset(pageNumber, pageSize int) int {
	return (pageNumber - 1) * pageSize
}
