package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/fina-server/internal/storage/sqlconfig"
)

// TransactionType represents the direction money moved.
type TransactionType int16

const (
	TransactionTypeDeposit TransactionType = iota + 1
	TransactionTypeWithdraw
)

// Transaction represents a transaction in the service layer.
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

// CreateTransactionRequest is the input of TransactionService.Create.
type CreateTransactionRequest struct {
	Request
	CategoryID       uuid.UUID
	Title            string
	Type             TransactionType
	Amount           decimal.Decimal
	PaidOrReceivedAt time.Time
}

// UpdateTransactionRequest is the input of TransactionService.Update.
type UpdateTransactionRequest struct {
	Request
	ID               uuid.UUID
	CategoryID       uuid.UUID
	Title            string
	Type             TransactionType
	Amount           decimal.Decimal
	PaidOrReceivedAt time.Time
}

type DeleteTransactionRequest struct {
	Request
	ID uuid.UUID
}

type GetTransactionByIDRequest struct {
	Request
	ID uuid.UUID
}

// GetTransactionsByPeriodRequest selects transactions paid or received between
// StartDate and EndDate inclusive. Nil bounds default to the current month.
type GetTransactionsByPeriodRequest struct {
	PagedRequest
	StartDate *time.Time
	EndDate   *time.Time
}

// normalizeAmount forces withdrawals to be stored as non-positive amounts.
// Deposits are returned unchanged, including negative ones.
func normalizeAmount(t TransactionType, amount decimal.Decimal) decimal.Decimal {
	if t == TransactionTypeWithdraw && !amount.IsNegative() {
		return amount.Neg()
	}
	return amount
}

func transactionTypeToStorage(t TransactionType) sqlconfig.TransactionType {
	return sqlconfig.TransactionType(t)
}

func transactionTypeFromStorage(t sqlconfig.TransactionType) TransactionType {
	return TransactionType(t)
}

func transactionFromStorage(row *sqlconfig.Transaction) *Transaction {
	return &Transaction{
		ID:               row.ID,
		UserID:           row.UserID,
		CategoryID:       row.CategoryID,
		Title:            row.Title,
		Type:             transactionTypeFromStorage(row.Type),
		Amount:           row.Amount,
		PaidOrReceivedAt: row.PaidOrReceivedAt,
		CreatedAt:        row.CreatedAt,
	}
}
