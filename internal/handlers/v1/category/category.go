package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fina-server/internal/logging"
	"github.com/carson-networks/fina-server/internal/response"
	"github.com/carson-networks/fina-server/internal/service"
)

// Category is the API response model for a category.
type Category struct {
	ID          string `json:"id" doc:"Category UUID"`
	UserID      string `json:"userID" doc:"Owning user"`
	Title       string `json:"title" doc:"Category title"`
	Description string `json:"description,omitempty" doc:"Optional description"`
}

// CategoryBody holds the writable fields shared by create and update.
type CategoryBody struct {
	Title       string `json:"title" minLength:"1" maxLength:"80" doc:"Category title"`
	Description string `json:"description,omitempty" doc:"Optional description"`
}

type CategoryEnvelope struct {
	Data    *Category `json:"data" doc:"The category, null on failure"`
	Code    int       `json:"code" doc:"Status code"`
	Message string    `json:"message" doc:"Outcome message"`
}

// CategoryOutput is the Huma output shared by single-category operations.
type CategoryOutput struct {
	Status int
	Body   CategoryEnvelope
}

// CategoryIDInput addresses one category of the calling user.
type CategoryIDInput struct {
	UserID string `header:"X-User-ID" required:"true" minLength:"1" doc:"Identifier of the calling user"`
	ID     string `path:"id" format:"uuid" doc:"Category UUID"`
}

func toAPICategory(c *service.Category) *Category {
	if c == nil {
		return nil
	}
	return &Category{
		ID:          c.ID.String(),
		UserID:      c.UserID,
		Title:       c.Title,
		Description: c.Description,
	}
}

func toCategoryOutput(ctx context.Context, resp response.Response[*service.Category]) *CategoryOutput {
	recordFailure(ctx, resp)
	return &CategoryOutput{
		Status: resp.Code,
		Body: CategoryEnvelope{
			Data:    toAPICategory(resp.Data),
			Code:    resp.Code,
			Message: resp.Message,
		},
	}
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}
	return id, nil
}

// recordFailure puts the envelope message on the request log line when the
// operation did not succeed.
func recordFailure[T any](ctx context.Context, resp response.Response[T]) {
	if !resp.IsSuccess() {
		logging.AddData(ctx, "failureMessage", resp.Message)
	}
}
