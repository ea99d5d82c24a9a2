package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/fina-server/internal/logging"
	"github.com/carson-networks/fina-server/internal/response"
	"github.com/carson-networks/fina-server/internal/service"
)

// UpdateCategoryInput is the Huma input for updating a category.
type UpdateCategoryInput struct {
	UserID string `header:"X-User-ID" required:"true" minLength:"1" doc:"Identifier of the calling user"`
	ID     string `path:"id" format:"uuid" doc:"Category UUID"`
	Body   CategoryBody
}

// categoryByIDService is the interface for operations addressing a single category.
type categoryByIDService interface {
	Update(ctx context.Context, req service.UpdateCategoryRequest) response.Response[*service.Category]
	Delete(ctx context.Context, req service.DeleteCategoryRequest) response.Response[*service.Category]
	GetByID(ctx context.Context, req service.GetCategoryByIDRequest) response.Response[*service.Category]
}

// CategoryByIDHandler handles GET, PUT and DELETE on /v1/categories/{id}.
type CategoryByIDHandler struct {
	CategoryService categoryByIDService
}

func NewCategoryByIDHandler(svc categoryByIDService) *CategoryByIDHandler {
	return &CategoryByIDHandler{CategoryService: svc}
}

func (h *CategoryByIDHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-category",
		Method:      http.MethodGet,
		Path:        "/v1/categories/{id}",
		Summary:     "Get category",
		Tags:        []string{"Categories"},
	}, h.get)

	huma.Register(api, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPut,
		Path:        "/v1/categories/{id}",
		Summary:     "Update category",
		Description: "Overwrites title and description of a category owned by the caller.",
		Tags:        []string{"Categories"},
	}, h.update)

	huma.Register(api, huma.Operation{
		OperationID: "delete-category",
		Method:      http.MethodDelete,
		Path:        "/v1/categories/{id}",
		Summary:     "Delete category",
		Tags:        []string{"Categories"},
	}, h.remove)
}

func (h *CategoryByIDHandler) get(ctx context.Context, input *CategoryIDInput) (*CategoryOutput, error) {
	id, err := parseID(input.ID)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.StartTiming(ctx, "getCategoryMs")
	resp := h.CategoryService.GetByID(ctx, service.GetCategoryByIDRequest{
		Request: service.Request{UserID: input.UserID},
		ID:      id,
	})
	stopTimer()

	return toCategoryOutput(ctx, resp), nil
}

func (h *CategoryByIDHandler) update(ctx context.Context, input *UpdateCategoryInput) (*CategoryOutput, error) {
	id, err := parseID(input.ID)
	if err != nil {
		return nil, err
	}
	logging.AddData(ctx, "categoryID", input.ID)

	stopTimer := logging.StartTiming(ctx, "updateCategoryMs")
	resp := h.CategoryService.Update(ctx, service.UpdateCategoryRequest{
		Request:     service.Request{UserID: input.UserID},
		ID:          id,
		Title:       input.Body.Title,
		Description: input.Body.Description,
	})
	stopTimer()

	return toCategoryOutput(ctx, resp), nil
}

func (h *CategoryByIDHandler) remove(ctx context.Context, input *CategoryIDInput) (*CategoryOutput, error) {
	id, err := parseID(input.ID)
	if err != nil {
		return nil, err
	}
	logging.AddData(ctx, "categoryID", input.ID)

	stopTimer := logging.StartTiming(ctx, "deleteCategoryMs")
	resp := h.CategoryService.Delete(ctx, service.DeleteCategoryRequest{
		Request: service.Request{UserID: input.UserID},
		ID:      id,
	})
	stopTimer()

	return toCategoryOutput(ctx, resp), nil
}
