package service

import (
	"context"
	"sort"
	"sync"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/fina-server/internal/storage/sqlconfig"
)

type mockTransactionTable struct {
	mock.Mock
}

var _ sqlconfig.ITransactionTable = (*mockTransactionTable)(nil)

func (m *mockTransactionTable) FindByID(ctx context.Context, id uuid.UUID, userID string) (*sqlconfig.Transaction, error) {
	args := m.Called(ctx, id, userID)
	tx, _ := args.Get(0).(*sqlconfig.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionTable) Insert(ctx context.Context, create *sqlconfig.TransactionCreate) (*sqlconfig.Transaction, error) {
	args := m.Called(ctx, create)
	tx, _ := args.Get(0).(*sqlconfig.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionTable) Update(ctx context.Context, update *sqlconfig.TransactionUpdate) (*sqlconfig.Transaction, error) {
	args := m.Called(ctx, update)
	tx, _ := args.Get(0).(*sqlconfig.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionTable) Delete(ctx context.Context, id uuid.UUID, userID string) (*sqlconfig.Transaction, error) {
	args := m.Called(ctx, id, userID)
	tx, _ := args.Get(0).(*sqlconfig.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionTable) ListByPeriod(ctx context.Context, filter *sqlconfig.TransactionPeriodFilter) ([]*sqlconfig.Transaction, error) {
	args := m.Called(ctx, filter)
	txs, _ := args.Get(0).([]*sqlconfig.Transaction)
	return txs, args.Error(1)
}

func (m *mockTransactionTable) CountByPeriod(ctx context.Context, filter *sqlconfig.TransactionPeriodFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

type mockCategoryTable struct {
	mock.Mock
}

var _ sqlconfig.ICategoryTable = (*mockCategoryTable)(nil)

func (m *mockCategoryTable) FindByID(ctx context.Context, id uuid.UUID, userID string) (*sqlconfig.Category, error) {
	args := m.Called(ctx, id, userID)
	c, _ := args.Get(0).(*sqlconfig.Category)
	return c, args.Error(1)
}

func (m *mockCategoryTable) Insert(ctx context.Context, create *sqlconfig.CategoryCreate) (*sqlconfig.Category, error) {
	args := m.Called(ctx, create)
	c, _ := args.Get(0).(*sqlconfig.Category)
	return c, args.Error(1)
}

func (m *mockCategoryTable) Update(ctx context.Context, update *sqlconfig.CategoryUpdate) (*sqlconfig.Category, error) {
	args := m.Called(ctx, update)
	c, _ := args.Get(0).(*sqlconfig.Category)
	return c, args.Error(1)
}

func (m *mockCategoryTable) Delete(ctx context.Context, id uuid.UUID, userID string) (*sqlconfig.Category, error) {
	args := m.Called(ctx, id, userID)
	c, _ := args.Get(0).(*sqlconfig.Category)
	return c, args.Error(1)
}

func (m *mockCategoryTable) List(ctx context.Context, filter *sqlconfig.CategoryFilter) ([]*sqlconfig.Category, error) {
	args := m.Called(ctx, filter)
	cs, _ := args.Get(0).([]*sqlconfig.Category)
	return cs, args.Error(1)
}

func (m *mockCategoryTable) Count(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

// fakeTransactionTable is an in-memory ITransactionTable with the same
// ownership and ordering rules as the postgres implementation.
type fakeTransactionTable struct {
	mu   sync.Mutex
	rows map[uuid.UUID]sqlconfig.Transaction
}

var _ sqlconfig.ITransactionTable = (*fakeTransactionTable)(nil)

func newFakeTransactionTable() *fakeTransactionTable {
	return &fakeTransactionTable{rows: make(map[uuid.UUID]sqlconfig.Transaction)}
}

func (f *fakeTransactionTable) FindByID(_ context.Context, id uuid.UUID, userID string) (*sqlconfig.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok || row.UserID != userID {
		return nil, sqlconfig.ErrNotFound
	}
	return &row, nil
}

func (f *fakeTransactionTable) Insert(_ context.Context, create *sqlconfig.TransactionCreate) (*sqlconfig.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row := sqlconfig.Transaction{
		ID:               uuid.Must(uuid.NewV4()),
		UserID:           create.UserID,
		CategoryID:       create.CategoryID,
		Title:            create.Title,
		Type:             create.Type,
		Amount:           create.Amount,
		PaidOrReceivedAt: create.PaidOrReceivedAt,
		CreatedAt:        create.CreatedAt,
	}
	f.rows[row.ID] = row
	return &row, nil
}

func (f *fakeTransactionTable) Update(_ context.Context, update *sqlconfig.TransactionUpdate) (*sqlconfig.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[update.ID]
	if !ok || row.UserID != update.UserID {
		return nil, sqlconfig.ErrNotFound
	}
	row.CategoryID = update.CategoryID
	row.Title = update.Title
	row.Type = update.Type
	row.Amount = update.Amount
	row.PaidOrReceivedAt = update.PaidOrReceivedAt
	f.rows[row.ID] = row
	return &row, nil
}

func (f *fakeTransactionTable) Delete(_ context.Context, id uuid.UUID, userID string) (*sqlconfig.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok || row.UserID != userID {
		return nil, sqlconfig.ErrNotFound
	}
	delete(f.rows, id)
	return &row, nil
}

func (f *fakeTransactionTable) matching(filter *sqlconfig.TransactionPeriodFilter) []*sqlconfig.Transaction {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*sqlconfig.Transaction
	for _, row := range f.rows {
		if row.UserID != filter.UserID ||
			row.PaidOrReceivedAt.Before(filter.StartDate) ||
			row.PaidOrReceivedAt.After(filter.EndDate) {
			continue
		}
		row := row
		result = append(result, &row)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].PaidOrReceivedAt.Before(result[j].PaidOrReceivedAt)
	})
	return result
}

func (f *fakeTransactionTable) ListByPeriod(_ context.Context, filter *sqlconfig.TransactionPeriodFilter) ([]*sqlconfig.Transaction, error) {
	rows := f.matching(filter)
	if filter.Offset >= len(rows) {
		return []*sqlconfig.Transaction{}, nil
	}
	rows = rows[filter.Offset:]
	if filter.Limit > 0 && len(rows) > filter.Limit {
		rows = rows[:filter.Limit]
	}
	return rows, nil
}

func (f *fakeTransactionTable) CountByPeriod(_ context.Context, filter *sqlconfig.TransactionPeriodFilter) (int, error) {
	return len(f.matching(filter)), nil
}
