package persistence

import (
	"context"

	"github.com/abyssinia-labs/pocketbank/internal/domain/entity"
)

// TransactionRepository reads the append-only ledger log.
// Writes happen exclusively through the LedgerCommitter so a balance update
// and its ledger entries always commit together.
type TransactionRepository interface {
	// ListByAccount returns every ledger entry for the account, newest first.
	ListByAccount(ctx context.Context, accountNumber string) ([]*entity.Transaction, error)
}
