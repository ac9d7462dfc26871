package sqlconfig

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Dates are stored as ISO calendar dates, amounts as exact decimal text.
const dateLayout = "2006-01-02"

var _ ITransactionTable = (*TransactionsTable)(nil)

// TransactionsTable is the read side, bound to the shared connection pool.
type TransactionsTable struct {
	db *sql.DB
}

func NewTransactionsTable(db *sql.DB) *TransactionsTable {
	return &TransactionsTable{db: db}
}

// ListForSession returns the session's transactions in insertion order,
// which is the original statement row order.
func (t *TransactionsTable) ListForSession(ctx context.Context, sessionID uuid.UUID) ([]*Transaction, error) {
	rows, err := t.db.QueryContext(ctx,
		`SELECT txn_date, description, amount FROM transactions WHERE session_id = ? ORDER BY id`,
		sessionID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var result []*Transaction
	for rows.Next() {
		var dateText, description, amountText string
		if err := rows.Scan(&dateText, &description, &amountText); err != nil {
			return nil, fmt.Errorf("scanning transaction row: %w", err)
		}
		row, err := decodeTransaction(sessionID, dateText, description, amountText)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	if len(result) == 0 {
		return nil, ErrSessionNotFound
	}
	return result, nil
}

// TransactionsWriter is the write side, bound to a storage transaction.
type TransactionsWriter struct {
	tx *sql.Tx
}

func NewTransactionsWriter(tx *sql.Tx) *TransactionsWriter {
	return &TransactionsWriter{tx: tx}
}

// ReplaceForSession replaces the session's full transaction set.
func (w *TransactionsWriter) ReplaceForSession(ctx context.Context, sessionID uuid.UUID, creates []*TransactionCreate) error {
	if _, err := w.tx.ExecContext(ctx,
		`DELETE FROM transactions WHERE session_id = ?`, sessionID.String(),
	); err != nil {
		return fmt.Errorf("clearing session transactions: %w", err)
	}

	stmt, err := w.tx.PrepareContext(ctx,
		`INSERT INTO transactions (session_id, txn_date, description, amount) VALUES (?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("preparing transaction insert: %w", err)
	}
	defer stmt.Close()

	for _, create := range creates {
		_, err := stmt.ExecContext(ctx,
			sessionID.String(),
			create.Date.Format(dateLayout),
			create.Description,
			create.Amount.String(),
		)
		if err != nil {
			return fmt.Errorf("inserting transaction: %w", err)
		}
	}
	return nil
}

func parseStoredDate(text string) (time.Time, error) {
	date, err := time.ParseInLocation(dateLayout, text, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("decoding stored date %q: %w", text, err)
	}
	return date, nil
}

func decodeTransaction(sessionID uuid.UUID, dateText, description, amountText string) (*Transaction, error) {
	date, err := parseStoredDate(dateText)
	if err != nil {
		return nil, err
	}
	amount, err := decimal.NewFromString(amountText)
	if err != nil {
		return nil, fmt.Errorf("decoding stored amount %q: %w", amountText, err)
	}
	return &Transaction{
		SessionID:   sessionID,
		Date:        date,
		Description: description,
		Amount:      amount,
	}, nil
}
