package auth

import (
	"time"

	"github.com/abyssinia-labs/pocketbank/internal/domain/entity"
)

// Default guard configuration
const (
	DefaultMaxAttempts     = 3
	DefaultLockoutDuration = 10 * time.Minute
)

// OutcomeKind enumerates the possible results of a login attempt
type OutcomeKind int

// Outcome kinds
const (
	// OutcomeSuccess means the password matched and the attempt state was reset
	OutcomeSuccess OutcomeKind = iota
	// OutcomeInvalidPassword means the password did not match and attempts remain
	OutcomeInvalidPassword
	// OutcomeLockedOut means this attempt crossed the threshold and locked the account
	OutcomeLockedOut
	// OutcomeStillLocked means the lockout window is still open; nothing changed
	OutcomeStillLocked
)

// Outcome describes the result of evaluating one login attempt.
// StateChanged reports whether the user entity was mutated and must be
// persisted, including the failure paths: a lock expiry reset followed by a
// wrong password still changes state.
type Outcome struct {
	Kind              OutcomeKind
	RemainingAttempts int           // Set for OutcomeInvalidPassword
	RetryAfter        time.Duration // Set for OutcomeStillLocked
	StateChanged      bool
}

// Guard is the login-attempt state machine. Per user the states are
// Active(attempts) and Locked(since); the lockout window is evaluated by
// wall-clock comparison at each attempt, never by a background timer.
type Guard struct {
	maxAttempts     int
	lockoutDuration time.Duration
}

// NewGuard creates a guard with the given threshold and lockout window
func NewGuard(maxAttempts int, lockoutDuration time.Duration) *Guard {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if lockoutDuration <= 0 {
		lockoutDuration = DefaultLockoutDuration
	}
	return &Guard{
		maxAttempts:     maxAttempts,
		lockoutDuration: lockoutDuration,
	}
}

// MaxAttempts returns the configured failed-attempt threshold
func (g *Guard) MaxAttempts() int {
	return g.maxAttempts
}

// LockoutDuration returns the configured lockout window
func (g *Guard) LockoutDuration() time.Duration {
	return g.lockoutDuration
}

// Evaluate runs one login attempt against the user at the given instant.
// The user entity is mutated in place; the caller persists it whenever
// Outcome.StateChanged is true.
//
// Transitions:
//   - Locked, window open: StillLocked, no mutation.
//   - Locked, window elapsed: explicit reset to Active(0), then the
//     password check below runs against the reset state.
//   - Wrong password: attempts+1; reaching the threshold locks the account.
//   - Matching password: reset to Active(0).
func (g *Guard) Evaluate(user *entity.User, suppliedPassword string, now time.Time) Outcome {
	if user.IsLocked {
		remaining := user.LockoutRemaining(now, g.lockoutDuration)
		if remaining > 0 {
			return Outcome{Kind: OutcomeStillLocked, RetryAfter: remaining}
		}
		user.ResetLoginState(now)
	}

	if !user.PasswordMatches(suppliedPassword) {
		if user.RecordFailedAttempt(now, g.maxAttempts) {
			return Outcome{Kind: OutcomeLockedOut, StateChanged: true}
		}
		return Outcome{
			Kind:              OutcomeInvalidPassword,
			RemainingAttempts: g.maxAttempts - user.LoginAttempts,
			StateChanged:      true,
		}
	}

	user.ResetLoginState(now)
	return Outcome{Kind: OutcomeSuccess, StateChanged: true}
}
