package actions

import (
	"context"

	"github.com/oakmere-labs/ledger-server/internal/storage"
)

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
