package repository

import (
	"context"

	"github.com/abyssinia-labs/pocketbank/internal/domain/entity"
	coreport "github.com/abyssinia-labs/pocketbank/internal/domain/port/core"
	"github.com/abyssinia-labs/pocketbank/internal/domain/port/persistence"
)

// LedgerCommitter persists the outcome of a ledger mutation. The updated
// balances and the new ledger entries go into a single batch, so either
// every leg of a mutation is visible or none of it is.
type LedgerCommitter struct {
	store        persistence.DocumentStore
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewLedgerCommitter creates a new LedgerCommitter instance
func NewLedgerCommitter(store persistence.DocumentStore, timeProvider coreport.TimeProvider, logger coreport.Logger) *LedgerCommitter {
	return &LedgerCommitter{
		store:        store,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CommitMutation writes the mutated accounts and their ledger entries atomically
func (c *LedgerCommitter) CommitMutation(ctx context.Context, accounts []*entity.Account, entries []*entity.Transaction) error {
	writes := make([]persistence.Write, 0, len(accounts)+len(entries))

	for _, account := range accounts {
		writes = append(writes, persistence.Write{
			Collection: persistence.Accounts,
			Key:        account.AccountNumber,
			Fields: map[string]any{
				"balance":   account.Balance(),
				"updatedAt": account.UpdatedAt,
			},
		})
	}

	for _, entry := range entries {
		writes = append(writes, persistence.Write{
			Collection: persistence.Transactions,
			Key:        entry.ID,
			Doc:        transactionToDocument(entry),
		})
	}

	if err := c.store.ApplyBatch(ctx, writes); err != nil {
		c.logger.Error("Ledger batch commit failed", map[string]any{
			"accounts": len(accounts),
			"entries":  len(entries),
			"error":    err.Error(),
		})
		return err
	}
	return nil
}
