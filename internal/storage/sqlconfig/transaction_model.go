package sqlconfig

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// ErrSessionNotFound is returned when a session has no stored transactions.
var ErrSessionNotFound = errors.New("session not found")

// Transaction is a stored, normalized statement row scoped to a session.
type Transaction struct {
	SessionID   uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
}

// TransactionCreate is the input for storing one normalized row.
type TransactionCreate struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
}

// ITransactionTable defines the read side of transaction storage.
// This abstraction allows swapping the implementation without changing callers.
type ITransactionTable interface {
	ListForSession(ctx context.Context, sessionID uuid.UUID) ([]*Transaction, error)
}
