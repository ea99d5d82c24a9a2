package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/fina-server/internal/logging"
	"github.com/carson-networks/fina-server/internal/response"
	"github.com/carson-networks/fina-server/internal/service"
)

// ListCategoriesInput is the Huma input for listing categories.
type ListCategoriesInput struct {
	UserID     string `header:"X-User-ID" required:"true" minLength:"1" doc:"Identifier of the calling user"`
	PageNumber int    `query:"pageNumber" minimum:"1" maximum:"1000000" default:"1" doc:"1-based page number"`
	PageSize   int    `query:"pageSize" minimum:"1" maximum:"100" default:"25" doc:"Page size"`
}

// ListCategoriesResponseBody is the paged envelope for listing categories.
type ListCategoriesResponseBody struct {
	Data       []Category `json:"data" doc:"Page of categories, null on failure"`
	Code       int        `json:"code" doc:"Status code"`
	Message    string     `json:"message" doc:"Outcome message"`
	TotalCount int        `json:"totalCount" doc:"Number of categories owned by the caller"`
	PageNumber int        `json:"pageNumber" doc:"1-based page number"`
	PageSize   int        `json:"pageSize" doc:"Page size"`
	TotalPages int        `json:"totalPages" doc:"Number of pages"`
}

type ListCategoriesOutput struct {
	Status int
	Body   ListCategoriesResponseBody
}

type categoryLister interface {
	GetAll(ctx context.Context, req service.GetAllCategoriesRequest) response.PagedResponse[[]service.Category]
}

// ListCategoriesHandler handles GET /v1/categories.
type ListCategoriesHandler struct {
	CategoryService categoryLister
}

func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/categories",
		Summary:     "List categories",
		Description: "Returns the caller's categories ordered by title using page number pagination.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	stopTimer := logging.StartTiming(ctx, "listCategoriesMs")
	resp := h.CategoryService.GetAll(ctx, service.GetAllCategoriesRequest{
		PagedRequest: service.PagedRequest{
			Request:    service.Request{UserID: input.UserID},
			PageNumber: input.PageNumber,
			PageSize:   input.PageSize,
		},
	})
	stopTimer()
	recordFailure(ctx, resp.Response)

	body := ListCategoriesResponseBody{
		Code:       resp.Code,
		Message:    resp.Message,
		TotalCount: resp.TotalCount,
		PageNumber: resp.PageNumber,
		PageSize:   resp.PageSize,
		TotalPages: resp.TotalPages,
	}
	if resp.Data != nil {
		body.Data = make([]Category, len(resp.Data))
		for i := range resp.Data {
			body.Data[i] = *toAPICategory(&resp.Data[i])
		}
	}

	return &ListCategoriesOutput{Status: resp.Code, Body: body}, nil
}
