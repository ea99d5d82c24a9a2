package transaction

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/fina-server/internal/response"
	"github.com/carson-networks/fina-server/internal/service"
)

// mockTransactionService satisfies every transaction handler interface.
type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) Create(ctx context.Context, req service.CreateTransactionRequest) response.Response[*service.Transaction] {
	args := m.Called(ctx, req)
	return args.Get(0).(response.Response[*service.Transaction])
}

func (m *mockTransactionService) Update(ctx context.Context, req service.UpdateTransactionRequest) response.Response[*service.Transaction] {
	args := m.Called(ctx, req)
	return args.Get(0).(response.Response[*service.Transaction])
}

func (m *mockTransactionService) Delete(ctx context.Context, req service.DeleteTransactionRequest) response.Response[*service.Transaction] {
	args := m.Called(ctx, req)
	return args.Get(0).(response.Response[*service.Transaction])
}

func (m *mockTransactionService) GetByID(ctx context.Context, req service.GetTransactionByIDRequest) response.Response[*service.Transaction] {
	args := m.Called(ctx, req)
	return args.Get(0).(response.Response[*service.Transaction])
}

func (m *mockTransactionService) GetByPeriod(ctx context.Context, req service.GetTransactionsByPeriodRequest) response.PagedResponse[[]service.Transaction] {
	args := m.Called(ctx, req)
	return args.Get(0).(response.PagedResponse[[]service.Transaction])
}

// newTestAPI registers every transaction handler against a humatest API.
func newTestAPI(t *testing.T, svc *mockTransactionService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateTransactionHandler(svc).Register(api)
	NewUpdateTransactionHandler(svc).Register(api)
	NewDeleteTransactionHandler(svc).Register(api)
	NewGetTransactionHandler(svc).Register(api)
	NewListTransactionsHandler(svc).Register(api)
	return api
}
