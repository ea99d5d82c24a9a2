package category

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/fina-server/internal/response"
	"github.com/carson-networks/fina-server/internal/service"
)

const userHeader = "X-User-ID: alice"

type mockCategoryService struct {
	mock.Mock
}

func (m *mockCategoryService) Create(ctx context.Context, req service.CreateCategoryRequest) response.Response[*service.Category] {
	args := m.Called(ctx, req)
	return args.Get(0).(response.Response[*service.Category])
}

func (m *mockCategoryService) Update(ctx context.Context, req service.UpdateCategoryRequest) response.Response[*service.Category] {
	args := m.Called(ctx, req)
	return args.Get(0).(response.Response[*service.Category])
}

func (m *mockCategoryService) Delete(ctx context.Context, req service.DeleteCategoryRequest) response.Response[*service.Category] {
	args := m.Called(ctx, req)
	return args.Get(0).(response.Response[*service.Category])
}

func (m *mockCategoryService) GetByID(ctx context.Context, req service.GetCategoryByIDRequest) response.Response[*service.Category] {
	args := m.Called(ctx, req)
	return args.Get(0).(response.Response[*service.Category])
}

func (m *mockCategoryService) GetAll(ctx context.Context, req service.GetAllCategoriesRequest) response.PagedResponse[[]service.Category] {
	args := m.Called(ctx, req)
	return args.Get(0).(response.PagedResponse[[]service.Category])
}

func newTestAPI(t *testing.T, svc *mockCategoryService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateCategoryHandler(svc).Register(api)
	NewCategoryByIDHandler(svc).Register(api)
	NewListCategoriesHandler(svc).Register(api)
	return api
}

func TestHTTP_CreateCategory_Success(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	mockSvc := new(mockCategoryService)
	mockSvc.On("Create", mock.Anything, service.CreateCategoryRequest{
		Request:     service.Request{UserID: "alice"},
		Title:       "Food",
		Description: "Groceries and restaurants",
	}).Return(response.WithCode(&service.Category{
		ID:          id,
		UserID:      "alice",
		Title:       "Food",
		Description: "Groceries and restaurants",
	}, http.StatusCreated, service.MsgCategoryCreated))

	resp := newTestAPI(t, mockSvc).Post("/v1/categories", userHeader, CategoryBody{
		Title:       "Food",
		Description: "Groceries and restaurants",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CategoryEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotNil(t, body.Data)
	assert.Equal(t, id.String(), body.Data.ID)
	assert.Equal(t, service.MsgCategoryCreated, body.Message)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateCategory_WithoutDescription(t *testing.T) {
	mockSvc := new(mockCategoryService)
	mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(req service.CreateCategoryRequest) bool {
		return req.Title == "Rent" && req.Description == ""
	})).Return(response.WithCode(&service.Category{ID: uuid.Must(uuid.NewV4()), UserID: "alice", Title: "Rent"},
		http.StatusCreated, service.MsgCategoryCreated))

	resp := newTestAPI(t, mockSvc).Post("/v1/categories", userHeader, map[string]any{"title": "Rent"})

	assert.Equal(t, http.StatusCreated, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateCategory_TitleTooLong(t *testing.T) {
	mockSvc := new(mockCategoryService)
	title := make([]byte, 81)
	for i := range title {
		title[i] = 'a'
	}

	resp := newTestAPI(t, mockSvc).Post("/v1/categories", userHeader, CategoryBody{Title: string(title)})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestHTTP_CreateCategory_Failure(t *testing.T) {
	mockSvc := new(mockCategoryService)
	mockSvc.On("Create", mock.Anything, mock.Anything).
		Return(response.WithCode[*service.Category](nil, http.StatusInternalServerError, service.MsgCategoryCreateFailed))

	resp := newTestAPI(t, mockSvc).Post("/v1/categories", userHeader, CategoryBody{Title: "Food"})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), service.MsgCategoryCreateFailed)
}

func TestHTTP_GetCategory_NotFound(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	mockSvc := new(mockCategoryService)
	mockSvc.On("GetByID", mock.Anything, service.GetCategoryByIDRequest{
		Request: service.Request{UserID: "alice"},
		ID:      id,
	}).Return(response.WithCode[*service.Category](nil, http.StatusNotFound, service.MsgCategoryNotFound))

	resp := newTestAPI(t, mockSvc).Get("/v1/categories/"+id.String(), userHeader)

	assert.Equal(t, http.StatusNotFound, resp.Code)
	var body CategoryEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Nil(t, body.Data)
	assert.Equal(t, service.MsgCategoryNotFound, body.Message)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateCategory_Success(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	mockSvc := new(mockCategoryService)
	mockSvc.On("Update", mock.Anything, service.UpdateCategoryRequest{
		Request: service.Request{UserID: "alice"},
		ID:      id,
		Title:   "Dining",
	}).Return(response.New(&service.Category{ID: id, UserID: "alice", Title: "Dining"}, service.MsgCategoryUpdated))

	resp := newTestAPI(t, mockSvc).Put("/v1/categories/"+id.String(), userHeader, CategoryBody{Title: "Dining"})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body CategoryEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotNil(t, body.Data)
	assert.Equal(t, "Dining", body.Data.Title)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeleteCategory_Success(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	mockSvc := new(mockCategoryService)
	mockSvc.On("Delete", mock.Anything, service.DeleteCategoryRequest{
		Request: service.Request{UserID: "alice"},
		ID:      id,
	}).Return(response.New(&service.Category{ID: id, UserID: "alice", Title: "Food"}, service.MsgCategoryDeleted))

	resp := newTestAPI(t, mockSvc).Delete("/v1/categories/"+id.String(), userHeader)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), service.MsgCategoryDeleted)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListCategories_Paged(t *testing.T) {
	categories := []service.Category{
		{ID: uuid.Must(uuid.NewV4()), UserID: "alice", Title: "Food"},
		{ID: uuid.Must(uuid.NewV4()), UserID: "alice", Title: "Rent"},
	}

	mockSvc := new(mockCategoryService)
	mockSvc.On("GetAll", mock.Anything, mock.MatchedBy(func(req service.GetAllCategoriesRequest) bool {
		return req.UserID == "alice" && req.PageNumber == 3 && req.PageSize == 2
	})).Return(response.NewPaged(categories, 6, 3, 2))

	resp := newTestAPI(t, mockSvc).Get("/v1/categories?pageNumber=3&pageSize=2", userHeader)

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListCategoriesResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, "Food", body.Data[0].Title)
	assert.Equal(t, 6, body.TotalCount)
	assert.Equal(t, 3, body.TotalPages)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListCategories_MissingUserHeader(t *testing.T) {
	mockSvc := new(mockCategoryService)

	resp := newTestAPI(t, mockSvc).Get("/v1/categories")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "GetAll", mock.Anything, mock.Anything)
}
