package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abyssinia-labs/pocketbank/internal/domain/entity"
	errs "github.com/abyssinia-labs/pocketbank/internal/domain/error"
	coremocks "github.com/abyssinia-labs/pocketbank/mocks/port/core"
	persistencemocks "github.com/abyssinia-labs/pocketbank/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serviceMocks struct {
	users          *persistencemocks.MockUserRepository
	accounts       *persistencemocks.MockAccountRepository
	accountNumbers *coremocks.MockAccountNumberGenerator
	timeProvider   *coremocks.MockTimeProvider
	logger         *coremocks.MockLogger
}

func newServiceMocks(t *testing.T, fixedTime time.Time) serviceMocks {
	m := serviceMocks{
		users:          persistencemocks.NewMockUserRepository(t),
		accounts:       persistencemocks.NewMockAccountRepository(t),
		accountNumbers: coremocks.NewMockAccountNumberGenerator(t),
		timeProvider:   coremocks.NewMockTimeProvider(t),
		logger:         coremocks.NewMockLogger(t),
	}
	m.timeProvider.On("Now").Return(fixedTime).Maybe()
	m.logger.On("Info", mock.Anything, mock.Anything).Maybe()
	m.logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	return m
}

func (m serviceMocks) service() *Service {
	return NewService(m.users, m.accounts, NewGuard(3, 10*time.Minute), m.accountNumbers, m.timeProvider, m.logger)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful registration", func(t *testing.T) {
		m := newServiceMocks(t, fixedTime)

		m.users.On("Exists", mock.Anything, "alice").Return(false, nil).Once()
		m.accountNumbers.On("Generate").Return("1234567890", nil).Once()
		m.accounts.On("Exists", mock.Anything, "1234567890").Return(false, nil).Once()
		m.users.On("Create", mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
			return user.Username == "alice" && !user.IsLocked
		})).Return(nil).Once()
		m.accounts.On("Create", mock.Anything, mock.MatchedBy(func(account *entity.Account) bool {
			return account.AccountNumber == "1234567890" &&
				account.Type == entity.TypeSavings &&
				account.Balance() == 0
		})).Return(nil).Once()

		result, err := m.service().Register(ctx, "alice", "hunter2", "savings")

		require.NoError(t, err)
		assert.Equal(t, "alice", result.User.Username)
		assert.Equal(t, "1234567890", result.Account.AccountNumber)
		assert.Equal(t, "0.00", result.Account.FormattedBalance())
	})

	t.Run("Invalid account type", func(t *testing.T) {
		m := newServiceMocks(t, fixedTime)

		result, err := m.service().Register(ctx, "alice", "hunter2", "premium")

		assert.ErrorIs(t, err, errs.ErrInvalidAccountType)
		assert.Nil(t, result)
	})

	t.Run("Duplicate username", func(t *testing.T) {
		m := newServiceMocks(t, fixedTime)

		m.users.On("Exists", mock.Anything, "alice").Return(true, nil).Once()

		result, err := m.service().Register(ctx, "alice", "hunter2", "checking")

		assert.ErrorIs(t, err, errs.ErrDuplicateUser)
		assert.Nil(t, result)
	})

	t.Run("Account number collision retries until unused", func(t *testing.T) {
		m := newServiceMocks(t, fixedTime)

		m.users.On("Exists", mock.Anything, "alice").Return(false, nil).Once()
		m.accountNumbers.On("Generate").Return("1111111111", nil).Once()
		m.accountNumbers.On("Generate").Return("2222222222", nil).Once()
		m.accounts.On("Exists", mock.Anything, "1111111111").Return(true, nil).Once()
		m.accounts.On("Exists", mock.Anything, "2222222222").Return(false, nil).Once()
		m.users.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
		m.accounts.On("Create", mock.Anything, mock.MatchedBy(func(account *entity.Account) bool {
			return account.AccountNumber == "2222222222"
		})).Return(nil).Once()

		result, err := m.service().Register(ctx, "alice", "hunter2", "savings")

		require.NoError(t, err)
		assert.Equal(t, "2222222222", result.Account.AccountNumber)
	})

	t.Run("Exhausting the collision retries fails", func(t *testing.T) {
		m := newServiceMocks(t, fixedTime)

		m.users.On("Exists", mock.Anything, "alice").Return(false, nil).Once()
		m.accountNumbers.On("Generate").Return("1111111111", nil).Times(accountNumberAttempts)
		m.accounts.On("Exists", mock.Anything, "1111111111").Return(true, nil).Times(accountNumberAttempts)

		result, err := m.service().Register(ctx, "alice", "hunter2", "savings")

		assert.ErrorIs(t, err, errs.ErrInternalServer)
		assert.Nil(t, result)
	})

	t.Run("User store failure surfaces", func(t *testing.T) {
		m := newServiceMocks(t, fixedTime)
		storeErr := errors.New("connection reset")

		m.users.On("Exists", mock.Anything, "alice").Return(false, nil).Once()
		m.accountNumbers.On("Generate").Return("1234567890", nil).Once()
		m.accounts.On("Exists", mock.Anything, "1234567890").Return(false, nil).Once()
		m.users.On("Create", mock.Anything, mock.Anything).Return(storeErr).Once()

		result, err := m.service().Register(ctx, "alice", "hunter2", "savings")

		assert.ErrorIs(t, err, storeErr)
		assert.Nil(t, result)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful login resets attempts and persists", func(t *testing.T) {
		m := newServiceMocks(t, fixedTime)
		user := &entity.User{Username: "alice", Password: "hunter2", LoginAttempts: 2}

		m.users.On("GetByUsername", mock.Anything, "alice").Return(user, nil).Once()
		m.users.On("UpdateLoginState", mock.Anything, user).Return(nil).Once()

		got, err := m.service().Login(ctx, "alice", "hunter2")

		require.NoError(t, err)
		assert.Equal(t, "alice", got.Username)
		assert.Equal(t, 0, got.LoginAttempts)
	})

	t.Run("Unknown user", func(t *testing.T) {
		m := newServiceMocks(t, fixedTime)

		m.users.On("GetByUsername", mock.Anything, "ghost").Return(nil, errs.ErrUnknownUser).Once()

		got, err := m.service().Login(ctx, "ghost", "hunter2")

		assert.ErrorIs(t, err, errs.ErrUnknownUser)
		assert.Nil(t, got)
	})

	t.Run("Wrong password reports remaining attempts", func(t *testing.T) {
		m := newServiceMocks(t, fixedTime)
		user := &entity.User{Username: "alice", Password: "hunter2"}

		m.users.On("GetByUsername", mock.Anything, "alice").Return(user, nil).Once()
		m.users.On("UpdateLoginState", mock.Anything, user).Return(nil).Once()

		got, err := m.service().Login(ctx, "alice", "wrong")

		assert.ErrorIs(t, err, errs.ErrInvalidPassword)
		assert.Contains(t, err.Error(), "2 attempts remaining")
		assert.Nil(t, got)
		assert.Equal(t, 1, user.LoginAttempts)
	})

	t.Run("Third failure locks and persists the lock", func(t *testing.T) {
		m := newServiceMocks(t, fixedTime)
		user := &entity.User{Username: "alice", Password: "hunter2", LoginAttempts: 2}

		m.users.On("GetByUsername", mock.Anything, "alice").Return(user, nil).Once()
		m.users.On("UpdateLoginState", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.IsLocked && u.LastLoginAttempt != nil
		})).Return(nil).Once()

		got, err := m.service().Login(ctx, "alice", "wrong")

		assert.ErrorIs(t, err, errs.ErrAccountLocked)
		assert.Nil(t, got)
		assert.True(t, errs.IsLockedError(err))
	})

	t.Run("Locked account rejects the correct password without persisting", func(t *testing.T) {
		m := newServiceMocks(t, fixedTime)
		lockedAt := fixedTime.Add(-5 * time.Minute)
		user := &entity.User{
			Username:         "alice",
			Password:         "hunter2",
			LoginAttempts:    3,
			IsLocked:         true,
			LastLoginAttempt: &lockedAt,
		}

		m.users.On("GetByUsername", mock.Anything, "alice").Return(user, nil).Once()

		got, err := m.service().Login(ctx, "alice", "hunter2")

		assert.ErrorIs(t, err, errs.ErrAccountLocked)
		assert.Nil(t, got)
	})

	t.Run("Expired lock clears and the login succeeds", func(t *testing.T) {
		m := newServiceMocks(t, fixedTime)
		lockedAt := fixedTime.Add(-11 * time.Minute)
		user := &entity.User{
			Username:         "alice",
			Password:         "hunter2",
			LoginAttempts:    3,
			IsLocked:         true,
			LastLoginAttempt: &lockedAt,
		}

		m.users.On("GetByUsername", mock.Anything, "alice").Return(user, nil).Once()
		m.users.On("UpdateLoginState", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return !u.IsLocked && u.LoginAttempts == 0
		})).Return(nil).Once()

		got, err := m.service().Login(ctx, "alice", "hunter2")

		require.NoError(t, err)
		assert.False(t, got.IsLocked)
	})

	t.Run("Persistence failure during state update surfaces", func(t *testing.T) {
		m := newServiceMocks(t, fixedTime)
		storeErr := errors.New("write failed")
		user := &entity.User{Username: "alice", Password: "hunter2"}

		m.users.On("GetByUsername", mock.Anything, "alice").Return(user, nil).Once()
		m.users.On("UpdateLoginState", mock.Anything, user).Return(storeErr).Once()

		got, err := m.service().Login(ctx, "alice", "wrong")

		assert.ErrorIs(t, err, storeErr)
		assert.Nil(t, got)
	})
}
