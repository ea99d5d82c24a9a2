package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/fina-server/internal/logging"
	"github.com/carson-networks/fina-server/internal/response"
	"github.com/carson-networks/fina-server/internal/service"
)

// UpdateTransactionInput is the Huma input for updating a transaction.
type UpdateTransactionInput struct {
	UserID string `header:"X-User-ID" required:"true" minLength:"1" doc:"Identifier of the calling user"`
	ID     string `path:"id" format:"uuid" doc:"Transaction UUID"`
	Body   TransactionBody
}

type transactionUpdater interface {
	Update(ctx context.Context, req service.UpdateTransactionRequest) response.Response[*service.Transaction]
}

// UpdateTransactionHandler handles PUT /v1/transactions/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/v1/transactions/{id}",
		Summary:     "Update transaction",
		Description: "Overwrites category, title, type, amount and payment date of a transaction owned by the caller.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseUpdateTransactionInput(input *UpdateTransactionInput) (service.UpdateTransactionRequest, error) {
	id, err := parseID(input.ID)
	if err != nil {
		return service.UpdateTransactionRequest{}, err
	}
	body, err := parseTransactionBody(input.Body)
	if err != nil {
		return service.UpdateTransactionRequest{}, err
	}

	return service.UpdateTransactionRequest{
		Request:          service.Request{UserID: input.UserID},
		ID:               id,
		CategoryID:       body.CategoryID,
		Title:            body.Title,
		Type:             body.Type,
		Amount:           body.Amount,
		PaidOrReceivedAt: body.PaidOrReceivedAt,
	}, nil
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*TransactionOutput, error) {
	req, err := parseUpdateTransactionInput(input)
	if err != nil {
		return nil, err
	}
	logging.AddData(ctx, "transactionID", input.ID)

	stopTimer := logging.StartTiming(ctx, "updateTransactionMs")
	resp := h.TransactionService.Update(ctx, req)
	stopTimer()

	return toTransactionOutput(ctx, resp), nil
}
