package error

import (
	"errors"
	"fmt"
	"time"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount     = 4001
	CodeInsufficientFunds = 4002
	CodeSelfTransfer      = 4003
	CodeInvalidUsername   = 4004
	CodeAmountOverflow    = 4006
	CodeDuplicateUser     = 4009
	CodeInvalidPassword   = 4010
	CodeUnknownAccount    = 4040
	CodeUnknownUser       = 4041
	CodeAccountLocked     = 4230

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodePersistence    = 5001
)

// Base error types
var (
	// ErrInvalidAmount is returned when an amount is malformed, zero, or negative
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNegativeAmount is returned when an amount carries a leading minus sign
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrAmountOverflow is returned when applying an amount would overflow the balance
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrInsufficientFunds is returned when a debit exceeds the account balance
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrUnknownAccount is returned when the referenced account does not exist
	ErrUnknownAccount = errors.New("account not found")

	// ErrSelfTransfer is returned when source and target of a transfer are the same account
	ErrSelfTransfer = errors.New("cannot transfer to the same account")

	// ErrUnknownUser is returned when the requested user doesn't exist
	ErrUnknownUser = errors.New("user not found")

	// ErrDuplicateUser is returned when registering a username that is already taken
	ErrDuplicateUser = errors.New("username already registered")

	// ErrInvalidUsername is returned when the username is empty or malformed
	ErrInvalidUsername = errors.New("invalid username")

	// ErrInvalidPassword is returned when the supplied password does not match
	ErrInvalidPassword = errors.New("invalid password")

	// ErrAccountLocked is returned while the login lockout window is still open
	ErrAccountLocked = errors.New("account is locked")

	// ErrInvalidAccountType is returned when the account type is not savings or checking
	ErrInvalidAccountType = errors.New("invalid account type")

	// ErrDocumentNotFound is returned by the document store for a missing key
	ErrDocumentNotFound = errors.New("document not found")

	// ErrPersistence wraps any failure reported by the document store
	ErrPersistence = errors.New("persistence failure")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrSelfTransfer):
		return CodeSelfTransfer
	case errors.Is(err, ErrInvalidUsername), errors.Is(err, ErrInvalidAccountType):
		return CodeInvalidUsername
	case errors.Is(err, ErrAmountOverflow):
		return CodeAmountOverflow
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrInvalidPassword):
		return CodeInvalidPassword
	case errors.Is(err, ErrUnknownAccount):
		return CodeUnknownAccount
	case errors.Is(err, ErrUnknownUser):
		return CodeUnknownUser
	case errors.Is(err, ErrAccountLocked):
		return CodeAccountLocked
	case errors.Is(err, ErrPersistence):
		return CodePersistence
	default:
		return CodeInternalServer
	}
}

// InsufficientFundsError provides detailed error information for a rejected debit
type InsufficientFundsError struct {
	AccountNumber string
	Amount        string
	Balance       string
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds on account %s: required %s, available %s",
		e.AccountNumber, e.Amount, e.Balance)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "insufficient_funds",
		"account_number": e.AccountNumber,
		"amount":         e.Amount,
		"balance":        e.Balance,
		"error_code":     CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(accountNumber, amount, balance string) error {
	return &InsufficientFundsError{
		AccountNumber: accountNumber,
		Amount:        amount,
		Balance:       balance,
	}
}

// LockedError reports how long a locked account must wait before the next attempt
type LockedError struct {
	Username  string
	Remaining time.Duration
}

// Error implements the error interface
func (e *LockedError) Error() string {
	return fmt.Sprintf("account %s is locked, try again in %s", e.Username, e.Remaining.Round(time.Second))
}

// Is checks if the target error is an ErrAccountLocked
func (e *LockedError) Is(target error) bool {
	return target == ErrAccountLocked
}

// LogFields returns a map of fields for structured logging
func (e *LockedError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "account_locked",
		"username":   e.Username,
		"remaining":  e.Remaining.String(),
		"error_code": CodeAccountLocked,
	}
}

// NewLockedError creates a new detailed lockout error
func NewLockedError(username string, remaining time.Duration) error {
	return &LockedError{Username: username, Remaining: remaining}
}

// PersistenceError wraps a document store failure with its operation context
type PersistenceError struct {
	Op         string
	Collection string
	Key        string
	Err        error
}

// Error implements the error interface
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s on %s/%s: %v",
		e.Op, e.Collection, e.Key, e.Err)
}

// Unwrap returns the underlying error
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrPersistence
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

// LogFields returns a map of fields for structured logging
func (e *PersistenceError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "persistence_failure",
		"op":         e.Op,
		"collection": e.Collection,
		"key":        e.Key,
		"error":      e.Err.Error(),
		"error_code": CodePersistence,
	}
}

// NewPersistenceError creates a new persistence error wrapping the store failure
func NewPersistenceError(op, collection, key string, err error) error {
	return &PersistenceError{Op: op, Collection: collection, Key: key, Err: err}
}

// IsInsufficientFundsError checks if the error is related to insufficient funds
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsUnknownUserError checks if the error is a user not found error
func IsUnknownUserError(err error) bool {
	return errors.Is(err, ErrUnknownUser)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUnknownAccount) ||
		errors.Is(err, ErrUnknownUser) ||
		errors.Is(err, ErrDocumentNotFound)
}

// IsLockedError checks if the error is related to a locked user
func IsLockedError(err error) bool {
	return errors.Is(err, ErrAccountLocked)
}

// IsPersistenceError checks if the error originated in the document store
func IsPersistenceError(err error) bool {
	return errors.Is(err, ErrPersistence)
}
