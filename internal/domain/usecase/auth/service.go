package auth

import (
	"context"
	"fmt"

	"github.com/abyssinia-labs/pocketbank/internal/domain/entity"
	errs "github.com/abyssinia-labs/pocketbank/internal/domain/error"
	coreport "github.com/abyssinia-labs/pocketbank/internal/domain/port/core"
	"github.com/abyssinia-labs/pocketbank/internal/domain/port/persistence"
)

// accountNumberAttempts bounds the uniqueness check-and-retry loop for
// generated account numbers. Ten random digits collide rarely; hitting the
// bound means the generator or the store is misbehaving.
const accountNumberAttempts = 5

// Service handles registration and login
type Service struct {
	users          persistence.UserRepository
	accounts       persistence.AccountRepository
	guard          *Guard
	accountNumbers coreport.AccountNumberGenerator
	timeProvider   coreport.TimeProvider
	logger         coreport.Logger
}

// NewService creates a new auth service
func NewService(
	users persistence.UserRepository,
	accounts persistence.AccountRepository,
	guard *Guard,
	accountNumbers coreport.AccountNumberGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		users:          users,
		accounts:       accounts,
		guard:          guard,
		accountNumbers: accountNumbers,
		timeProvider:   timeProvider,
		logger:         logger,
	}
}

// RegisterResult carries the newly created user and their account
type RegisterResult struct {
	User    *entity.User
	Account *entity.Account
}

// Register creates a new user with a fresh account of the requested type.
// The account starts with a zero balance and a generated 10-digit number
// that is verified unused before the pair is stored.
func (s *Service) Register(ctx context.Context, username, password, accountType string) (*RegisterResult, error) {
	if !entity.IsValidAccountType(accountType) {
		return nil, errs.ErrInvalidAccountType
	}

	user, err := entity.NewUser(username, password, s.timeProvider)
	if err != nil {
		return nil, err
	}

	taken, err := s.users.Exists(ctx, user.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.ErrDuplicateUser
	}

	accountNumber, err := s.generateAccountNumber(ctx)
	if err != nil {
		return nil, err
	}

	account, err := entity.NewAccount(accountNumber, entity.AccountType(accountType), user.Username, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", map[string]any{
		"username":       user.Username,
		"account_number": account.AccountNumber,
		"account_type":   string(account.Type),
	})

	return &RegisterResult{User: user, Account: account}, nil
}

// generateAccountNumber draws candidate numbers until one is unused
func (s *Service) generateAccountNumber(ctx context.Context) (string, error) {
	for attempt := 0; attempt < accountNumberAttempts; attempt++ {
		candidate, err := s.accountNumbers.Generate()
		if err != nil {
			return "", fmt.Errorf("%w: account number generation failed: %s", errs.ErrInternalServer, err.Error())
		}

		taken, err := s.accounts.Exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}

		s.logger.Warn("Account number collision, retrying", map[string]any{
			"attempt": attempt + 1,
		})
	}
	return "", fmt.Errorf("%w: could not generate a unique account number", errs.ErrInternalServer)
}

// Login evaluates one login attempt. Mutated login state is persisted even
// when the attempt fails, so a crashed session cannot forget a lockout.
func (s *Service) Login(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	outcome := s.guard.Evaluate(user, password, s.timeProvider.Now())

	if outcome.StateChanged {
		if err := s.users.UpdateLoginState(ctx, user); err != nil {
			return nil, err
		}
	}

	switch outcome.Kind {
	case OutcomeStillLocked:
		s.logger.Warn("Login attempt on locked account", map[string]any{
			"username":    username,
			"retry_after": outcome.RetryAfter.String(),
		})
		return nil, errs.NewLockedError(username, outcome.RetryAfter)

	case OutcomeLockedOut:
		s.logger.Warn("Account locked after repeated failures", map[string]any{
			"username":     username,
			"max_attempts": s.guard.MaxAttempts(),
		})
		return nil, errs.NewLockedError(username, s.guard.LockoutDuration())

	case OutcomeInvalidPassword:
		s.logger.Warn("Invalid password", map[string]any{
			"username":           username,
			"remaining_attempts": outcome.RemainingAttempts,
		})
		return nil, fmt.Errorf("%w: %d attempts remaining", errs.ErrInvalidPassword, outcome.RemainingAttempts)
	}

	s.logger.Info("Login succeeded", map[string]any{
		"username": username,
	})
	return user, nil
}
