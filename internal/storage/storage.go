package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/shan3520/smartspend/internal/config"
	"github.com/shan3520/smartspend/internal/storage/sqlconfig"
)

type Storage struct {
	DB           *sql.DB
	Transactions sqlconfig.ITransactionTable
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("sqlite", env.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	return &Storage{
		DB:           db,
		Transactions: sqlconfig.NewTransactionsTable(db),
	}, nil
}

// Write begins a storage transaction for the operator's write path.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning write transaction: %w", err)
	}
	return &Writer{
		tx:           tx,
		Transactions: sqlconfig.NewTransactionsWriter(tx),
	}, nil
}

type Writer struct {
	tx           *sql.Tx
	Transactions *sqlconfig.TransactionsWriter
}

func (w *Writer) Commit() error {
	return w.tx.Commit()
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback()
}
