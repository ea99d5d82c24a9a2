package response

// PagedResponse is the envelope returned by paged queries.
type PagedResponse[T any] struct {
	Response[T]
	TotalCount int `json:"totalCount" doc:"Number of matching records ignoring pagination"`
	PageNumber int `json:"pageNumber" doc:"1-based page number"`
	PageSize   int `json:"pageSize" doc:"Maximum records per page"`
	TotalPages int `json:"totalPages" doc:"Number of pages for totalCount at pageSize"`
}

// NewPaged creates a successful PagedResponse.
func NewPaged[T any](data T, totalCount, pageNumber, pageSize int) PagedResponse[T] {
	return PagedResponse[T]{
		Response:   New(data, ""),
		TotalCount: totalCount,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalPages: totalPages(totalCount, pageSize),
	}
}

// PagedFailure creates a PagedResponse carrying no data.
func PagedFailure[T any](code int, message string) PagedResponse[T] {
	var zero T
	return PagedResponse[T]{Response: WithCode(zero, code, message)}
}

func totalPages(totalCount, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return (totalCount + pageSize - 1) / pageSize
}
