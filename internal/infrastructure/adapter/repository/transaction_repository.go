package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/abyssinia-labs/pocketbank/internal/domain/entity"
	errs "github.com/abyssinia-labs/pocketbank/internal/domain/error"
	coreport "github.com/abyssinia-labs/pocketbank/internal/domain/port/core"
	"github.com/abyssinia-labs/pocketbank/internal/domain/port/persistence"
)

// TransactionRepository implements read access to the transaction ledger.
// Writes happen through the LedgerCommitter so that a mutation and its
// ledger entries land in one batch.
type TransactionRepository struct {
	store  persistence.DocumentStore
	logger coreport.Logger
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(store persistence.DocumentStore, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		store:  store,
		logger: logger,
	}
}

// ListByAccount returns the ledger entries for an account, newest first
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountNumber string) ([]*entity.Transaction, error) {
	raws, err := r.store.GetAll(ctx, persistence.Transactions)
	if err != nil {
		return nil, err
	}

	var transactions []*entity.Transaction
	for _, raw := range raws {
		var doc transactionDocument
		if err := json.Unmarshal(raw, &doc); err != nil {
			r.logger.Error("Corrupt transaction document", map[string]any{
				"account_number": accountNumber,
				"error":          err.Error(),
			})
			return nil, fmt.Errorf("%w: decoding transaction document: %s", errs.ErrInternalServer, err.Error())
		}
		if doc.AccountNumber == accountNumber {
			transactions = append(transactions, doc.toEntity())
		}
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Timestamp.After(transactions[j].Timestamp)
	})
	return transactions, nil
}
