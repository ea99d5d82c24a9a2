package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fina-server/internal/logging"
	"github.com/carson-networks/fina-server/internal/response"
	"github.com/carson-networks/fina-server/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID               string `json:"id" doc:"Transaction UUID"`
	UserID           string `json:"userID" doc:"Owning user"`
	CategoryID       string `json:"categoryID" doc:"Category UUID"`
	Title            string `json:"title" doc:"Title of the transaction"`
	Type             int    `json:"type" doc:"Transaction type: 1=Deposit, 2=Withdraw"`
	Amount           string `json:"amount" doc:"Decimal amount, non-positive for withdrawals"`
	PaidOrReceivedAt string `json:"paidOrReceivedAt" doc:"RFC3339 date the money moved"`
	CreatedAt        string `json:"createdAt" doc:"RFC3339 creation time"`
}

// TransactionEnvelope is the response body of single-transaction operations.
type TransactionEnvelope struct {
	Data    *Transaction `json:"data" doc:"The transaction, null on failure"`
	Code    int          `json:"code" doc:"Status code"`
	Message string       `json:"message" doc:"Outcome message"`
}

// TransactionOutput is the Huma output shared by single-transaction operations.
type TransactionOutput struct {
	Status int
	Body   TransactionEnvelope
}

// TransactionBody holds the writable fields shared by create and update.
type TransactionBody struct {
	CategoryID       string `json:"categoryID" format:"uuid" doc:"Category UUID"`
	Title            string `json:"title" minLength:"1" maxLength:"160" doc:"Title of the transaction"`
	Type             int    `json:"type" minimum:"1" maximum:"2" doc:"Transaction type: 1=Deposit, 2=Withdraw"`
	Amount           string `json:"amount" doc:"Decimal amount with at most 2 decimal places, withdrawals are stored as non-positive"`
	PaidOrReceivedAt string `json:"paidOrReceivedAt" format:"date-time" doc:"RFC3339 date the money moved"`
}

func toAPITransaction(tx *service.Transaction) *Transaction {
	if tx == nil {
		return nil
	}
	return &Transaction{
		ID:               tx.ID.String(),
		UserID:           tx.UserID,
		CategoryID:       tx.CategoryID.String(),
		Title:            tx.Title,
		Type:             int(tx.Type),
		Amount:           tx.Amount.String(),
		PaidOrReceivedAt: tx.PaidOrReceivedAt.Format(time.RFC3339),
		CreatedAt:        tx.CreatedAt.Format(time.RFC3339),
	}
}

func toTransactionOutput(ctx context.Context, resp response.Response[*service.Transaction]) *TransactionOutput {
	recordFailure(ctx, resp)
	return &TransactionOutput{
		Status: resp.Code,
		Body: TransactionEnvelope{
			Data:    toAPITransaction(resp.Data),
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
