package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/fina-server/internal/logging"
	"github.com/carson-networks/fina-server/internal/response"
	"github.com/carson-networks/fina-server/internal/service"
)

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	UserID string `header:"X-User-ID" required:"true" minLength:"1" doc:"Identifier of the calling user"`
	Body   TransactionBody
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	Create(ctx context.Context, req service.CreateTransactionRequest) response.Response[*service.Transaction]
}

// CreateTransactionHandler handles POST /v1/transactions.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transactions",
		Summary:       "Create transaction",
		Description:   "Creates a new transaction. Withdrawals are stored with a non-positive amount.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseCreateTransactionInput(input *CreateTransactionInput) (service.CreateTransactionRequest, error) {
	body, err := parseTransactionBody(input.Body)
	if err != nil {
		return service.CreateTransactionRequest{}, err
	}

	return service.CreateTransactionRequest{
		Request:          service.Request{UserID: input.UserID},
		CategoryID:       body.CategoryID,
		Title:            body.Title,
		Type:             body.Type,
		Amount:           body.Amount,
		PaidOrReceivedAt: body.PaidOrReceivedAt,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*TransactionOutput, error) {
	req, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.StartTiming(ctx, "createTransactionMs")
	resp := h.TransactionService.Create(ctx, req)
	stopTimer()

	if resp.Data != nil {
		logging.AddData(ctx, "transactionID", resp.Data.ID.String())
	}

	return toTransactionOutput(ctx, resp), nil
}
