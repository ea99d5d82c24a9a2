package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/fina-server/internal/logging"
	"github.com/carson-networks/fina-server/internal/response"
	"github.com/carson-networks/fina-server/internal/service"
)

// CreateCategoryInput is the Huma input for creating a category.
type CreateCategoryInput struct {
	UserID string `header:"X-User-ID" required:"true" minLength:"1" doc:"Identifier of the calling user"`
	Body   CategoryBody
}

type categoryCreator interface {
	Create(ctx context.Context, req service.CreateCategoryRequest) response.Response[*service.Category]
}

// CreateCategoryHandler handles POST /v1/categories.
type CreateCategoryHandler struct {
	CategoryService categoryCreator
}

func NewCreateCategoryHandler(svc categoryCreator) *CreateCategoryHandler {
	return &CreateCategoryHandler{CategoryService: svc}
}

func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-category",
		Method:        http.MethodPost,
		Path:          "/v1/categories",
		Summary:       "Create category",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CategoryOutput, error) {
	stopTimer := logging.StartTiming(ctx, "createCategoryMs")
	resp := h.CategoryService.Create(ctx, service.CreateCategoryRequest{
		Request:     service.Request{UserID: input.UserID},
		Title:       input.Body.Title,
		Description: input.Body.Description,
	})
	stopTimer()

	if resp.Data != nil {
		logging.AddData(ctx, "categoryID", resp.Data.ID.String())
	}

	return toCategoryOutput(ctx, resp), nil
}
