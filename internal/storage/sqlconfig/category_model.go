package sqlconfig

import (
	"context"
	"database/sql"

	"github.com/gofrs/uuid/v5"
)

// Category represents a category record. Description is empty when unset.
type Category struct {
	ID          uuid.UUID
	UserID      string
	Title       string
	Description string
}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	UserID      string
	Title       string
	Description string
}

// CategoryUpdate overwrites the mutable fields of the category owned by UserID.
type CategoryUpdate struct {
	ID          uuid.UUID
	UserID      string
	Title       string
	Description string
}

// CategoryFilter specifies the page of a user's categories to list.
type CategoryFilter struct {
	UserID string
	Limit  int
	Offset int
}

// ICategoryTable defines the interface for category storage operations.
type ICategoryTable interface {
	FindByID(ctx context.Context, id uuid.UUID, userID string) (*Category, error)
	Insert(ctx context.Context, create *CategoryCreate) (*Category, error)
	Update(ctx context.Context, update *CategoryUpdate) (*Category, error)
	Delete(ctx context.Context, id uuid.UUID, userID string) (*Category, error)
	List(ctx context.Context, filter *CategoryFilter) ([]*Category, error)
	Count(ctx context.Context, userID string) (int, error)
}

type categoryRow struct {
	ID          uuid.UUID      `db:"id"`
	UserID      string         `db:"user_id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
}

func rowToCategory(row categoryRow) *Category {
	return &Category{
		ID:          row.ID,
		UserID:      row.UserID,
		Title:       row.Title,
		Description: row.Description.String,
	}
}

func nullableDescription(description string) sql.NullString {
	return sql.NullString{String: description, Valid: description != ""}
}
