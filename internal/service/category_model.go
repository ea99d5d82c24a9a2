package service

import (
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fina-server/internal/storage/sqlconfig"
)

// Category represents a category in the service layer.
type Category struct {
	ID          uuid.UUID
	UserID      string
	Title       string
	Description string
}

type CreateCategoryRequest struct {
	Request
	Title       string
	Description string
}

type UpdateCategoryRequest struct {
	Request
	ID          uuid.UUID
	Title       string
	Description string
}

type DeleteCategoryRequest struct {
	Request
	ID uuid.UUID
}

type GetCategoryByIDRequest struct {
	Request
	ID uuid.UUID
}

type GetAllCategoriesRequest struct {
	PagedRequest
}

func categoryFromStorage(row *sqlconfig.Category) *Category {
	return &Category{
		ID:          row.ID,
		UserID:      row.UserID,
		Title:       row.Title,
		Description: row.Description,
	}
}
