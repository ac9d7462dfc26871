package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/shan3520/smartspend/internal/storage"
	"github.com/shan3520/smartspend/internal/storage/sqlconfig"
)

// ReplaceStatement swaps in the full normalized transaction set for a
// session. Re-uploading a statement under the same session replaces, never
// appends.
type ReplaceStatement struct {
	SessionID    uuid.UUID
	Transactions []*sqlconfig.TransactionCreate
}

func (a *ReplaceStatement) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Transactions.ReplaceForSession(ctx, a.SessionID, a.Transactions)
}
