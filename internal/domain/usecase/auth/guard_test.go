package auth

import (
	"testing"
	"time"

	"github.com/abyssinia-labs/pocketbank/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGuard(t *testing.T) {
	t.Run("Explicit configuration", func(t *testing.T) {
		guard := NewGuard(5, 30*time.Minute)
		assert.Equal(t, 5, guard.MaxAttempts())
		assert.Equal(t, 30*time.Minute, guard.LockoutDuration())
	})

	t.Run("Non-positive values fall back to defaults", func(t *testing.T) {
		guard := NewGuard(0, 0)
		assert.Equal(t, DefaultMaxAttempts, guard.MaxAttempts())
		assert.Equal(t, DefaultLockoutDuration, guard.LockoutDuration())

		guard = NewGuard(-1, -time.Minute)
		assert.Equal(t, DefaultMaxAttempts, guard.MaxAttempts())
		assert.Equal(t, DefaultLockoutDuration, guard.LockoutDuration())
	})
}

func TestEvaluateSuccess(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	guard := NewGuard(3, 10*time.Minute)

	t.Run("Matching password resets attempts", func(t *testing.T) {
		user := &entity.User{Username: "alice", Password: "hunter2", LoginAttempts: 2}

		outcome := guard.Evaluate(user, "hunter2", now)

		assert.Equal(t, OutcomeSuccess, outcome.Kind)
		assert.True(t, outcome.StateChanged)
		assert.Equal(t, 0, user.LoginAttempts)
		assert.False(t, user.IsLocked)
	})
}

func TestEvaluateFailures(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	guard := NewGuard(3, 10*time.Minute)

	t.Run("First failure leaves two attempts", func(t *testing.T) {
		user := &entity.User{Username: "alice", Password: "hunter2"}

		outcome := guard.Evaluate(user, "wrong", now)

		assert.Equal(t, OutcomeInvalidPassword, outcome.Kind)
		assert.Equal(t, 2, outcome.RemainingAttempts)
		assert.True(t, outcome.StateChanged)
		assert.False(t, user.IsLocked)
	})

	t.Run("Third consecutive failure locks the account", func(t *testing.T) {
		user := &entity.User{Username: "alice", Password: "hunter2"}

		first := guard.Evaluate(user, "wrong", now)
		assert.Equal(t, OutcomeInvalidPassword, first.Kind)
		assert.Equal(t, 2, first.RemainingAttempts)

		second := guard.Evaluate(user, "wrong", now)
		assert.Equal(t, OutcomeInvalidPassword, second.Kind)
		assert.Equal(t, 1, second.RemainingAttempts)

		third := guard.Evaluate(user, "wrong", now)
		assert.Equal(t, OutcomeLockedOut, third.Kind)
		assert.True(t, third.StateChanged)
		assert.True(t, user.IsLocked)
		require.NotNil(t, user.LastLoginAttempt)
		assert.Equal(t, now, *user.LastLoginAttempt)
	})

	t.Run("Correct password on the final attempt still locks nothing", func(t *testing.T) {
		user := &entity.User{Username: "alice", Password: "hunter2", LoginAttempts: 2}

		outcome := guard.Evaluate(user, "hunter2", now)

		assert.Equal(t, OutcomeSuccess, outcome.Kind)
		assert.False(t, user.IsLocked)
		assert.Equal(t, 0, user.LoginAttempts)
	})
}

func TestEvaluateLockout(t *testing.T) {
	lockedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	guard := NewGuard(3, 10*time.Minute)

	lockedUser := func() *entity.User {
		at := lockedAt
		return &entity.User{
			Username:         "alice",
			Password:         "hunter2",
			LoginAttempts:    3,
			IsLocked:         true,
			LastLoginAttempt: &at,
		}
	}

	t.Run("Open window rejects even the correct password", func(t *testing.T) {
		user := lockedUser()

		outcome := guard.Evaluate(user, "hunter2", lockedAt.Add(5*time.Minute))

		assert.Equal(t, OutcomeStillLocked, outcome.Kind)
		assert.Equal(t, 5*time.Minute, outcome.RetryAfter)
		assert.False(t, outcome.StateChanged)
		assert.True(t, user.IsLocked)
		assert.Equal(t, 3, user.LoginAttempts)
	})

	t.Run("Exactly at expiry the lock clears", func(t *testing.T) {
		user := lockedUser()

		outcome := guard.Evaluate(user, "hunter2", lockedAt.Add(10*time.Minute))

		assert.Equal(t, OutcomeSuccess, outcome.Kind)
		assert.False(t, user.IsLocked)
	})

	t.Run("Expired lock resets before the password check", func(t *testing.T) {
		user := lockedUser()

		outcome := guard.Evaluate(user, "wrong", lockedAt.Add(11*time.Minute))

		// The reset happened first, so this counts as the first fresh failure
		assert.Equal(t, OutcomeInvalidPassword, outcome.Kind)
		assert.Equal(t, 2, outcome.RemainingAttempts)
		assert.True(t, outcome.StateChanged)
		assert.False(t, user.IsLocked)
		assert.Equal(t, 1, user.LoginAttempts)
	})

	t.Run("Expired lock then correct password succeeds", func(t *testing.T) {
		user := lockedUser()

		outcome := guard.Evaluate(user, "hunter2", lockedAt.Add(15*time.Minute))

		assert.Equal(t, OutcomeSuccess, outcome.Kind)
		assert.True(t, outcome.StateChanged)
		assert.False(t, user.IsLocked)
		assert.Equal(t, 0, user.LoginAttempts)
	})
}
