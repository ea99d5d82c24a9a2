package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/fina-server/internal/logging"
	"github.com/carson-networks/fina-server/internal/response"
	"github.com/carson-networks/fina-server/internal/storage"
	"github.com/carson-networks/fina-server/internal/storage/sqlconfig"
)

const (
	MsgTransactionCreated  = "Transaction created successfully."
	MsgTransactionUpdated  = "Transaction updated successfully."
	MsgTransactionDeleted  = "Transaction deleted successfully."
	MsgTransactionNotFound = "Transaction not found."

	MsgTransactionCreateFailed = "Could not create the transaction."
	MsgTransactionUpdateFailed = "Could not update the transaction."
	MsgTransactionDeleteFailed = "Could not delete the transaction."
	MsgTransactionGetFailed    = "Could not retrieve the transaction."
	MsgTransactionListFailed   = "Could not retrieve the transactions."
	MsgPeriodFailed            = "Could not determine the start or end date."
)

// TransactionService handles transaction business logic. Every operation
// reports its outcome through the returned envelope; storage errors are
// logged and replaced by a fixed message.
type TransactionService struct {
	storage *storage.Storage
	logger  logrus.FieldLogger
	now     func() time.Time
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, logger logrus.FieldLogger) *TransactionService {
	return &TransactionService{
		storage: store,
		logger:  logger,
		now:     time.Now,
	}
}

// Create stores a new transaction and returns it with code 201.
func (s *TransactionService) Create(ctx context.Context, req CreateTransactionRequest) response.Response[*Transaction] {
	storageCreate := &sqlconfig.TransactionCreate{
		UserID:           req.UserID,
		CategoryID:       req.CategoryID,
		Title:            req.Title,
		Type:             transactionTypeToStorage(req.Type),
		Amount:           normalizeAmount(req.Type, req.Amount),
		PaidOrReceivedAt: req.PaidOrReceivedAt,
		CreatedAt:        s.now(),
	}

	row, err := s.storage.Transactions.Insert(ctx, storageCreate)
	if err != nil {
		s.logger.WithError(err).WithField("userID", req.UserID).Error("TransactionService.Create.Insert")
		return response.WithCode[*Transaction](nil, http.StatusInternalServerError, MsgTransactionCreateFailed)
	}

	return response.WithCode(transactionFromStorage(row), http.StatusCreated, MsgTransactionCreated)
}

// Update overwrites category, amount, title, type and payment date of the
// transaction identified by (ID, UserID).
func (s *TransactionService) Update(ctx context.Context, req UpdateTransactionRequest) response.Response[*Transaction] {
	storageUpdate := &sqlconfig.TransactionUpdate{
		ID:               req.ID,
		UserID:           req.UserID,
		CategoryID:       req.CategoryID,
		Title:            req.Title,
		Type:             transactionTypeToStorage(req.Type),
		Amount:           normalizeAmount(req.Type, req.Amount),
		PaidOrReceivedAt: req.PaidOrReceivedAt,
	}

	row, err := s.storage.Transactions.Update(ctx, storageUpdate)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return response.WithCode[*Transaction](nil, http.StatusNotFound, MsgTransactionNotFound)
	}
	if err != nil {
		s.logger.WithError(err).WithField("transactionID", req.ID.String()).Error("TransactionService.Update.Update")
		return response.WithCode[*Transaction](nil, http.StatusInternalServerError, MsgTransactionUpdateFailed)
	}

	return response.New(transactionFromStorage(row), MsgTransactionUpdated)
}

// Delete removes the transaction identified by (ID, UserID) and returns its last values.
func (s *TransactionService) Delete(ctx context.Context, req DeleteTransactionRequest) response.Response[*Transaction] {
	row, err := s.storage.Transactions.Delete(ctx, req.ID, req.UserID)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return response.WithCode[*Transaction](nil, http.StatusNotFound, MsgTransactionNotFound)
	}
	if err != nil {
		s.logger.WithError(err).WithField("transactionID", req.ID.String()).Error("TransactionService.Delete.Delete")
		return response.WithCode[*Transaction](nil, http.StatusInternalServerError, MsgTransactionDeleteFailed)
	}

	return response.New(transactionFromStorage(row), MsgTransactionDeleted)
}

// GetByID returns the transaction identified by (ID, UserID).
func (s *TransactionService) GetByID(ctx context.Context, req GetTransactionByIDRequest) response.Response[*Transaction] {
	row, err := s.storage.Transactions.FindByID(ctx, req.ID, req.UserID)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return response.WithCode[*Transaction](nil, http.StatusNotFound, MsgTransactionNotFound)
	}
	if err != nil {
		s.logger.WithError(err).WithField("transactionID", req.ID.String()).Error("TransactionService.GetByID.FindByID")
		return response.WithCode[*Transaction](nil, http.StatusInternalServerError, MsgTransactionGetFailed)
	}

	return response.New(transactionFromStorage(row), "")
}

// GetByPeriod returns one page of the user's transactions paid or received in
// [StartDate, EndDate], oldest first, together with the total match count.
func (s *TransactionService) GetByPeriod(ctx context.Context, req GetTransactionsByPeriodRequest) response.PagedResponse[[]Transaction] {
	startDate, endDate, err := s.resolvePeriod(req.StartDate, req.EndDate)
	if err != nil {
		s.logger.WithError(err).Error("TransactionService.GetByPeriod.resolvePeriod")
		return response.PagedFailure[[]Transaction](http.StatusInternalServerError, MsgPeriodFailed)
	}

	pageNumber, pageSize := req.normalize()
	filter := &sqlconfig.TransactionPeriodFilter{
		UserID:    req.UserID,
		StartDate: startDate,
		EndDate:   endDate,
		Limit:     pageSize,
		Offset:    offset(pageNumber, pageSize),
	}

	stopTimer := logging.AddToTiming(ctx, "dbQueryMs")
	rows, err := s.storage.Transactions.ListByPeriod(ctx, filter)
	stopTimer()
	if err != nil {
		s.logger.WithError(err).Error("TransactionService.GetByPeriod.ListByPeriod")
		return response.PagedFailure[[]Transaction](http.StatusInternalServerError, MsgTransactionListFailed)
	}

	stopTimer = logging.AddToTiming(ctx, "dbQueryMs")
	count, err := s.storage.Transactions.CountByPeriod(ctx, filter)
	stopTimer()
	if err != nil {
		s.logger.WithError(err).Error("TransactionService.GetByPeriod.CountByPeriod")
		return response.PagedFailure[[]Transaction](http.StatusInternalServerError, MsgTransactionListFailed)
	}

	transactions := make([]Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = *transactionFromStorage(row)
	}

	return response.NewPaged(transactions, count, pageNumber, pageSize)
}

// resolvePeriod fills each missing bound from the current month independently.
func (s *TransactionService) resolvePeriod(startDate, endDate *time.Time) (time.Time, time.Time, error) {
	if startDate != nil && endDate != nil {
		return *startDate, *endDate, nil
	}

	first, last, err := monthBounds(s.now())
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if startDate != nil {
		first = *startDate
	}
	if endDate != nil {
		last = *endDate
	}
	return first, last, nil
}
