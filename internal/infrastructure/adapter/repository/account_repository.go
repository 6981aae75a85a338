package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abyssinia-labs/pocketbank/internal/domain/entity"
	errs "github.com/abyssinia-labs/pocketbank/internal/domain/error"
	coreport "github.com/abyssinia-labs/pocketbank/internal/domain/port/core"
	"github.com/abyssinia-labs/pocketbank/internal/domain/port/persistence"
)

// AccountRepository implements the AccountRepository interface over the document store
type AccountRepository struct {
	store  persistence.DocumentStore
	logger coreport.Logger
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(store persistence.DocumentStore, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		store:  store,
		logger: logger,
	}
}

// GetByNumber retrieves an account by its account number
func (r *AccountRepository) GetByNumber(ctx context.Context, accountNumber string) (*entity.Account, error) {
	raw, err := r.store.GetByKey(ctx, persistence.Accounts, accountNumber)
	if err != nil {
		if errors.Is(err, errs.ErrDocumentNotFound) {
			return nil, errs.ErrUnknownAccount
		}
		return nil, err
	}

	doc, err := r.decode(raw, accountNumber)
	if err != nil {
		return nil, err
	}
	return doc.toEntity(), nil
}

// GetByUser retrieves all accounts owned by the given username.
// The store offers no filtered reads, so this is a full scan.
func (r *AccountRepository) GetByUser(ctx context.Context, username string) ([]*entity.Account, error) {
	raws, err := r.store.GetAll(ctx, persistence.Accounts)
	if err != nil {
		return nil, err
	}

	var accounts []*entity.Account
	for _, raw := range raws {
		doc, err := r.decode(raw, "")
		if err != nil {
			return nil, err
		}
		if doc.UserID == username {
			accounts = append(accounts, doc.toEntity())
		}
	}
	return accounts, nil
}

// Exists checks whether an account number is already taken
func (r *AccountRepository) Exists(ctx context.Context, accountNumber string) (bool, error) {
	_, err := r.store.GetByKey(ctx, persistence.Accounts, accountNumber)
	if err != nil {
		if errors.Is(err, errs.ErrDocumentNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Create stores a new account
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	return r.store.PutByKey(ctx, persistence.Accounts, account.AccountNumber, accountToDocument(account))
}

func (r *AccountRepository) decode(raw json.RawMessage, accountNumber string) (accountDocument, error) {
	var doc accountDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		r.logger.Error("Corrupt account document", map[string]any{
			"account_number": accountNumber,
			"error":          err.Error(),
		})
		return doc, fmt.Errorf("%w: decoding account document: %s", errs.ErrInternalServer, err.Error())
	}
	return doc, nil
}
