package persistence

import (
	"context"

	"github.com/abyssinia-labs/pocketbank/internal/domain/entity"
)

// AccountRepository defines essential methods to interact with account records
type AccountRepository interface {
	// GetByNumber retrieves an account by its account number
	//
	// Possible errors:
	// - ErrUnknownAccount: If no account with the number exists
	// - ErrPersistence: If the document store fails
	GetByNumber(ctx context.Context, accountNumber string) (*entity.Account, error)

	// GetByUser retrieves all accounts owned by the given username.
	// The result is a full-collection scan filtered in memory.
	GetByUser(ctx context.Context, username string) ([]*entity.Account, error)

	// Exists checks whether an account number is already taken
	Exists(ctx context.Context, accountNumber string) (bool, error)

	// Create stores a new account
	Create(ctx context.Context, account *entity.Account) error
}
