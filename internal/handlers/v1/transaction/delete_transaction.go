package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/fina-server/internal/logging"
	"github.com/carson-networks/fina-server/internal/response"
	"github.com/carson-networks/fina-server/internal/service"
)

// TransactionIDInput addresses one transaction of the calling user.
type TransactionIDInput struct {
	UserID string `header:"X-User-ID" required:"true" minLength:"1" doc:"Identifier of the calling user"`
	ID     string `path:"id" format:"uuid" doc:"Transaction UUID"`
}

type transactionDeleter interface {
	Delete(ctx context.Context, req service.DeleteTransactionRequest) response.Response[*service.Transaction]
}

// DeleteTransactionHandler handles DELETE /v1/transactions/{id}.
type DeleteTransactionHandler struct {
	TransactionService transactionDeleter
}

func NewDeleteTransactionHandler(svc transactionDeleter) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{TransactionService: svc}
}

func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-transaction",
		Method:      http.MethodDelete,
		Path:        "/v1/transactions/{id}",
		Summary:     "Delete transaction",
		Description: "Deletes a transaction owned by the caller and returns its last values.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *TransactionIDInput) (*TransactionOutput, error) {
	id, err := parseID(input.ID)
	if err != nil {
		return nil, err
	}
	logging.AddData(ctx, "transactionID", input.ID)

	stopTimer := logging.StartTiming(ctx, "deleteTransactionMs")
	resp := h.TransactionService.Delete(ctx, service.DeleteTransactionRequest{
		Request: service.Request{UserID: input.UserID},
		ID:      id,
	})
	stopTimer()

	return toTransactionOutput(ctx, resp), nil
}
