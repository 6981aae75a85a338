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

// UserRepository implements the UserRepository interface over the document store
type UserRepository struct {
	store  persistence.DocumentStore
	logger coreport.Logger
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(store persistence.DocumentStore, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		store:  store,
		logger: logger,
	}
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	raw, err := r.store.GetByKey(ctx, persistence.Users, username)
	if err != nil {
		if errors.Is(err, errs.ErrDocumentNotFound) {
			return nil, errs.ErrUnknownUser
		}
		return nil, err
	}

	var doc userDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		r.logger.Error("Corrupt user document", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("%w: decoding user document: %s", errs.ErrInternalServer, err.Error())
	}
	return doc.toEntity(), nil
}

// Exists checks whether a username is already registered
func (r *UserRepository) Exists(ctx context.Context, username string) (bool, error) {
	_, err := r.store.GetByKey(ctx, persistence.Users, username)
	if err != nil {
		if errors.Is(err, errs.ErrDocumentNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Create stores a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	return r.store.PutByKey(ctx, persistence.Users, user.Username, userToDocument(user))
}

// UpdateLoginState merge-updates the login-attempt fields of a user.
// The credential fields are never rewritten here.
func (r *UserRepository) UpdateLoginState(ctx context.Context, user *entity.User) error {
	fields := map[string]any{
		"loginAttempts": user.LoginAttempts,
		"isLocked":      user.IsLocked,
		"updatedAt":     user.UpdatedAt,
	}
	if user.LastLoginAttempt != nil {
		fields["lastLoginAttempt"] = *user.LastLoginAttempt
	}
	return r.store.UpdateFields(ctx, persistence.Users, user.Username, fields)
}
