package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a transaction record.
type Transaction struct {
	ID               uuid.UUID
	UserID           string
	CategoryID       uuid.UUID
	Title            string
	Type             TransactionType
	Amount           decimal.Decimal
	PaidOrReceivedAt time.Time
	CreatedAt        time.Time
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	UserID           string
	CategoryID       uuid.UUID
	Title            string
	Type             TransactionType
	Amount           decimal.Decimal
	PaidOrReceivedAt time.Time
	CreatedAt        time.Time
}

// TransactionUpdate overwrites the mutable fields of the transaction owned by UserID.
type TransactionUpdate struct {
	ID               uuid.UUID
	UserID           string
	CategoryID       uuid.UUID
	Title            string
	Type             TransactionType
	Amount           decimal.Decimal
	PaidOrReceivedAt time.Time
}

// TransactionPeriodFilter selects a user's transactions with
// StartDate <= PaidOrReceivedAt <= EndDate. Limit and Offset are ignored by counts.
type TransactionPeriodFilter struct {
	UserID    string
	StartDate time.Time
	EndDate   time.Time
	Limit     int
	Offset    int
}

// ITransactionTable defines the interface for transaction storage operations.
// Every lookup and mutation is scoped by both the record ID and the owning user.
type ITransactionTable interface {
	FindByID(ctx context.Context, id uuid.UUID, userID string) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	Update(ctx context.Context, update *TransactionUpdate) (*Transaction, error)
	Delete(ctx context.Context, id uuid.UUID, userID string) (*Transaction, error)
	ListByPeriod(ctx context.Context, filter *TransactionPeriodFilter) ([]*Transaction, error)
	CountByPeriod(ctx context.Context, filter *TransactionPeriodFilter) (int, error)
}

type transactionRow struct {
	ID               uuid.UUID       `db:"id"`
	UserID           string          `db:"user_id"`
	CategoryID       uuid.UUID       `db:"category_id"`
	Title            string          `db:"title"`
	Type             int16           `db:"type"`
	Amount           decimal.Decimal `db:"amount"`
	PaidOrReceivedAt time.Time       `db:"paid_or_received_at"`
	CreatedAt        time.Time       `db:"created_at"`
}

func rowToTransaction(row transactionRow) *Transaction {
	return &Transaction{
		ID:               row.ID,
		UserID:           row.UserID,
		CategoryID:       row.CategoryID,
		Title:            row.Title,
		Type:             TransactionType(row.Type),
		Amount:           row.Amount,
		PaidOrReceivedAt: row.PaidOrReceivedAt,
		CreatedAt:        row.CreatedAt,
	}
}
