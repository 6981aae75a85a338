package persistence

import (
	"context"

	"github.com/abyssinia-labs/pocketbank/internal/domain/entity"
)

// UserRepository defines essential methods to interact with user records
type UserRepository interface {
	// GetByUsername retrieves a user by username
	//
	// Possible errors:
	// - ErrUnknownUser: If no user with the username exists
	// - ErrPersistence: If the document store fails
	GetByUsername(ctx context.Context, username string) (*entity.User, error)

	// Exists checks whether a username is already registered
	Exists(ctx context.Context, username string) (bool, error)

	// Create stores a new user
	//
	// Possible errors:
	// - ErrPersistence: If the document store fails
	Create(ctx context.Context, user *entity.User) error

	// UpdateLoginState merge-updates the login-attempt fields of a user.
	// Only loginAttempts, isLocked, and lastLoginAttempt change; the
	// credential fields are never rewritten through this method.
	UpdateLoginState(ctx context.Context, user *entity.User) error
}
