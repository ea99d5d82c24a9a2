package transaction

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/fina-server/internal/service"
)

// amountScale and maxAmount mirror the NUMERIC(18, 2) amount column.
const amountScale = 2

var maxAmount = decimal.New(1, 16)

type parsedBody struct {
	CategoryID       uuid.UUID
	Title            string
	Type             service.TransactionType
	Amount           decimal.Decimal
	PaidOrReceivedAt time.Time
}

func parseTransactionBody(body TransactionBody) (parsedBody, error) {
	categoryID, err := uuid.FromString(body.CategoryID)
	if err != nil {
		return parsedBody{}, huma.NewError(http.StatusBadRequest, "invalid categoryID", err)
	}
	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return parsedBody{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	if !amount.Equal(amount.Round(amountScale)) {
		return parsedBody{}, huma.NewError(http.StatusBadRequest, "amount must have at most 2 decimal places")
	}
	if amount.Abs().GreaterThanOrEqual(maxAmount) {
		return parsedBody{}, huma.NewError(http.StatusBadRequest, "amount is out of range")
	}
	paidOrReceivedAt, err := time.Parse(time.RFC3339, body.PaidOrReceivedAt)
	if err != nil {
		return parsedBody{}, huma.NewError(http.StatusBadRequest, "invalid paidOrReceivedAt", err)
	}

	txType := service.TransactionType(body.Type)
	if txType != service.TransactionTypeDeposit && txType != service.TransactionTypeWithdraw {
		return parsedBody{}, huma.NewError(http.StatusBadRequest, "type must be 1 or 2")
	}

	return parsedBody{
		CategoryID:       categoryID,
		Title:            body.Title,
		Type:             txType,
		Amount:           amount,
		PaidOrReceivedAt: paidOrReceivedAt,
	}, nil
}
