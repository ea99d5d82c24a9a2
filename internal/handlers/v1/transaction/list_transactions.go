package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/fina-server/internal/logging"
	"github.com/carson-networks/fina-server/internal/response"
	"github.com/carson-networks/fina-server/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions by period.
type ListTransactionsInput struct {
	UserID     string `header:"X-User-ID" required:"true" minLength:"1" doc:"Identifier of the calling user"`
	StartDate  string `query:"startDate" format:"date-time" doc:"Inclusive RFC3339 lower bound, defaults to the first day of the current month"`
	EndDate    string `query:"endDate" format:"date-time" doc:"Inclusive RFC3339 upper bound, defaults to the last day of the current month"`
	PageNumber int    `query:"pageNumber" minimum:"1" maximum:"1000000" default:"1" doc:"1-based page number"`
	PageSize   int    `query:"pageSize" minimum:"1" maximum:"100" default:"25" doc:"Page size"`
}

// ListTransactionsResponseBody is the paged envelope for listing transactions.
type ListTransactionsResponseBody struct {
	Data       []Transaction `json:"data" doc:"Page of transactions, null on failure"`
	Code       int           `json:"code" doc:"Status code"`
	Message    string        `json:"message" doc:"Outcome message"`
	TotalCount int           `json:"totalCount" doc:"Matching transactions ignoring pagination"`
	PageNumber int           `json:"pageNumber" doc:"1-based page number"`
	PageSize   int           `json:"pageSize" doc:"Page size"`
	TotalPages int           `json:"totalPages" doc:"Number of pages"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Status int
	Body   ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	GetByPeriod(ctx context.Context, req service.GetTransactionsByPeriodRequest) response.PagedResponse[[]service.Transaction]
}

// ListTransactionsHandler handles GET /v1/transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List transactions by period",
		Description: "Returns the caller's transactions paid or received within the period, oldest first, using page number pagination.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput parses the optional period bounds. An empty bound
// stays nil so the service applies the current-month default.
func parseListTransactionsInput(input *ListTransactionsInput) (service.GetTransactionsByPeriodRequest, error) {
	req := service.GetTransactionsByPeriodRequest{
		PagedRequest: service.PagedRequest{
			Request:    service.Request{UserID: input.UserID},
			PageNumber: input.PageNumber,
			PageSize:   input.PageSize,
		},
	}

	if input.StartDate != "" {
		startDate, err := time.Parse(time.RFC3339, input.StartDate)
		if err != nil {
			return req, huma.NewError(http.StatusBadRequest, "invalid startDate", err)
		}
		req.StartDate = &startDate
	}

	if input.EndDate != "" {
		endDate, err := time.Parse(time.RFC3339, input.EndDate)
		if err != nil {
			return req, huma.NewError(http.StatusBadRequest, "invalid endDate", err)
		}
		req.EndDate = &endDate
	}

	return req, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	req, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.StartTiming(ctx, "listTransactionsMs")
	resp := h.TransactionService.GetByPeriod(ctx, req)
	stopTimer()
	recordFailure(ctx, resp.Response)

	body := ListTransactionsResponseBody{
		Code:       resp.Code,
		Message:    resp.Message,
		TotalCount: resp.TotalCount,
		PageNumber: resp.PageNumber,
		PageSize:   resp.PageSize,
		TotalPages: resp.TotalPages,
	}
	if resp.Data != nil {
		body.Data = make([]Transaction, len(resp.Data))
		for i := range resp.Data {
			body.Data[i] = *toAPITransaction(&resp.Data[i])
		}
		logging.AddData(ctx, "transactionCount", len(resp.Data))
	}

	return &ListTransactionsOutput{Status: resp.Code, Body: body}, nil
}
