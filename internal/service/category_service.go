package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/fina-server/internal/logging"
	"github.com/carson-networks/fina-server/internal/response"
	"github.com/carson-networks/fina-server/internal/storage"
	"github.com/carson-networks/fina-server/internal/storage/sqlconfig"
)

const (
	MsgCategoryCreated  = "Category created successfully."
	MsgCategoryUpdated  = "Category updated successfully."
	MsgCategoryDeleted  = "Category deleted successfully."
	MsgCategoryNotFound = "Category not found."

	MsgCategoryCreateFailed = "Could not create the category."
	MsgCategoryUpdateFailed = "Could not update the category."
	MsgCategoryDeleteFailed = "Could not delete the category."
	MsgCategoryGetFailed    = "Could not retrieve the category."
	MsgCategoryListFailed   = "Could not retrieve the categories."
)

// CategoryService handles category business logic.
type CategoryService struct {
	storage *storage.Storage
	logger  logrus.FieldLogger
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store *storage.Storage, logger logrus.FieldLogger) *CategoryService {
	return &CategoryService{storage: store, logger: logger}
}

// Create stores a new category and returns it with code 201.
func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) response.Response[*Category] {
	row, err := s.storage.Categories.Insert(ctx, &sqlconfig.CategoryCreate{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		s.logger.WithError(err).WithField("userID", req.UserID).Error("CategoryService.Create.Insert")
		return response.WithCode[*Category](nil, http.StatusInternalServerError, MsgCategoryCreateFailed)
	}

	return response.WithCode(categoryFromStorage(row), http.StatusCreated, MsgCategoryCreated)
}

func (s *CategoryService) Update(ctx context.Context, req UpdateCategoryRequest) response.Response[*Category] {
	row, err := s.storage.Categories.Update(ctx, &sqlconfig.CategoryUpdate{
		ID:          req.ID,
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
	})
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return response.WithCode[*Category](nil, http.StatusNotFound, MsgCategoryNotFound)
	}
	if err != nil {
		s.logger.WithError(err).WithField("categoryID", req.ID.String()).Error("CategoryService.Update.Update")
		return response.WithCode[*Category](nil, http.StatusInternalServerError, MsgCategoryUpdateFailed)
	}

	return response.New(categoryFromStorage(row), MsgCategoryUpdated)
}

func (s *CategoryService) Delete(ctx context.Context, req DeleteCategoryRequest) response.Response[*Category] {
	row, err := s.storage.Categories.Delete(ctx, req.ID, req.UserID)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return response.WithCode[*Category](nil, http.StatusNotFound, MsgCategoryNotFound)
	}
	if err != nil {
		s.logger.WithError(err).WithField("categoryID", req.ID.String()).Error("CategoryService.Delete.Delete")
		return response.WithCode[*Category](nil, http.StatusInternalServerError, MsgCategoryDeleteFailed)
	}

	return response.New(categoryFromStorage(row), MsgCategoryDeleted)
}

func (s *CategoryService) GetByID(ctx context.Context, req GetCategoryByIDRequest) response.Response[*Category] {
	row, err := s.storage.Categories.FindByID(ctx, req.ID, req.UserID)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return response.WithCode[*Category](nil, http.StatusNotFound, MsgCategoryNotFound)
	}
	if err != nil {
		s.logger.WithError(err).WithField("categoryID", req.ID.String()).Error("CategoryService.GetByID.FindByID")
		return response.WithCode[*Category](nil, http.StatusInternalServerError, MsgCategoryGetFailed)
	}

	return response.New(categoryFromStorage(row), "")
}

// GetAll returns one page of the user's categories ordered by title.
func (s *CategoryService) GetAll(ctx context.Context, req GetAllCategoriesRequest) response.PagedResponse[[]Category] {
	pageNumber, pageSize := req.normalize()

	stopTimer := logging.AddToTiming(ctx, "dbQueryMs")
	rows, err := s.storage.Categories.List(ctx, &sqlconfig.CategoryFilter{
		UserID: req.UserID,
		Limit:  pageSize,
		Offset: offset(pageNumber, pageSize),
	})
	stopTimer()
	if err != nil {
		s.logger.WithError(err).Error("CategoryService.GetAll.List")
		return response.PagedFailure[[]Category](http.StatusInternalServerError, MsgCategoryListFailed)
	}

	stopTimer = logging.AddToTiming(ctx, "dbQueryMs")
	count, err := s.storage.Categories.Count(ctx, req.UserID)
	stopTimer()
	if err != nil {
		s.logger.WithError(err).Error("CategoryService.GetAll.Count")
		return response.PagedFailure[[]Category](http.StatusInternalServerError, MsgCategoryListFailed)
	}

	categories := make([]Category, len(rows))
	for i, row := range rows {
		categories[i] = *categoryFromStorage(row)
	}

	return response.NewPaged(categories, count, pageNumber, pageSize)
}
