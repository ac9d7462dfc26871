package actions

import (
	"context"

	"github.com/shan3520/smartspend/internal/storage"
)

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
