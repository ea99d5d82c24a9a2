package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/carson-networks/fina-server/internal/config"
	"github.com/carson-networks/fina-server/internal/storage/sqlconfig"
)

type Storage struct {
	DB           *sql.DB
	Transactions sqlconfig.ITransactionTable
	Categories   sqlconfig.ICategoryTable
}

// NewStorage opens the postgres pool described by env and verifies it is reachable.
func NewStorage(ctx context.Context, env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db.Ping: %w", err)
	}

	return NewStorageFromDB(db), nil
}

// NewStorageFromDB wires the tables onto an already opened pool.
func NewStorageFromDB(db *sql.DB) *Storage {
	return &Storage{
		DB:           db,
		Transactions: sqlconfig.NewTransactionsTable(db),
		Categories:   sqlconfig.NewCategoriesTable(db),
	}
}

func (s *Storage) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
