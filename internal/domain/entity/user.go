package entity

import (
	"strings"
	"time"

	errs "github.com/abyssinia-labs/pocketbank/internal/domain/error"
	coreport "github.com/abyssinia-labs/pocketbank/internal/domain/port/core"
)

// User represents a registered user and their login-attempt state.
// Password is compared in plaintext; hardening it is out of scope for
// this demo and deliberately kept faithful to the stored shape.
type User struct {
	Username         string     // Unique identifier
	Password         string     // Plaintext credential
	LoginAttempts    int        // Consecutive failed attempts since the last success or reset
	IsLocked         bool       // True while the lockout window may be open
	LastLoginAttempt *time.Time // Set when the account transitions to locked
	CreatedAt        time.Time  // When the user registered
	UpdatedAt        time.Time  // When the login state last changed
}

// NewUser creates a new user in the unlocked state with zero failed attempts
func NewUser(username, password string, timeProvider coreport.TimeProvider) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errs.ErrInvalidUsername
	}
	if password == "" {
		return nil, errs.ErrInvalidPassword
	}

	now := timeProvider.Now()
	return &User{
		Username:      username,
		Password:      password,
		LoginAttempts: 0,
		IsLocked:      false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// LockoutRemaining returns how much of the lockout window is still open at
// the given instant or zero when the user is not locked or the window has
// elapsed. LastLoginAttempt marks the instant the lock was applied.
func (u *User) LockoutRemaining(now time.Time, lockoutDuration time.Duration) time.Duration {
	if !u.IsLocked || u.LastLoginAttempt == nil {
		return 0
	}
	remaining := u.LastLoginAttempt.Add(lockoutDuration).Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// RecordFailedAttempt increments the failed-attempt counter and transitions
// to Locked when the counter reaches maxAttempts. Returns true when the
// account locked as a result of this attempt.
func (u *User) RecordFailedAttempt(now time.Time, maxAttempts int) bool {
	u.LoginAttempts++
	u.UpdatedAt = now
	if u.LoginAttempts >= maxAttempts {
		u.IsLocked = true
		at := now
		u.LastLoginAttempt = &at
		return true
	}
	return false
}

// ResetLoginState transitions the user back to Active with zero attempts.
// Applied on successful login and when an expired lockout is cleared.
func (u *User) ResetLoginState(now time.Time) {
	u.LoginAttempts = 0
	u.IsLocked = false
	u.UpdatedAt = now
}

// PasswordMatches compares the supplied credential against the stored one
func (u *User) PasswordMatches(supplied string) bool {
	return u.Password == supplied
}
