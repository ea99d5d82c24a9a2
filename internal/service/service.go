package service

import (
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/fina-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Category    *CategoryService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage, logger logrus.FieldLogger) *Service {
	return &Service{
		Transaction: NewTransactionService(store, logger),
		Category:    NewCategoryService(store, logger),
	}
}
