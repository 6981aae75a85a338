package persistence

import (
	"context"

	"github.com/abyssinia-labs/pocketbank/internal/domain/entity"
)

// LedgerCommitter persists the outcome of a ledger mutation atomically:
// every updated balance and every appended ledger entry commit together or
// not at all. This closes the partial-failure gap between a transfer's two
// legs.
type LedgerCommitter interface {
	// CommitMutation writes the new balances of the given accounts and
	// appends the given ledger entries in one atomic batch.
	//
	// Possible errors:
	// - ErrPersistence: If the batch could not be applied; no write took effect
	CommitMutation(ctx context.Context, accounts []*entity.Account, entries []*entity.Transaction) error
}
