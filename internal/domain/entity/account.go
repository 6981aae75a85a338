package entity

import (
	"math"
	"time"

	errs "github.com/abyssinia-labs/pocketbank/internal/domain/error"
	coreport "github.com/abyssinia-labs/pocketbank/internal/domain/port/core"
)

// AccountType distinguishes the two supported account kinds
type AccountType string

// Account types
const (
	TypeSavings  AccountType = "savings"
	TypeChecking AccountType = "checking"
)

// IsValidAccountType validates if the account type is allowed
func IsValidAccountType(accountType string) bool {
	return accountType == string(TypeSavings) || accountType == string(TypeChecking)
}

// AccountNumberLength is the fixed width of generated account numbers
const AccountNumberLength = 10

// Account represents a bank account owned by a user
type Account struct {
	AccountNumber string      // Unique 10-digit numeral string
	Type          AccountType // savings or checking
	balance       int64       // Balance in cents to avoid floating point precision issues (private)
	UserID        string      // Owning user's username
	CreatedAt     time.Time   // When the account was created
	UpdatedAt     time.Time   // When the account was last updated
}

// NewAccount creates a new account with a zero balance
func NewAccount(accountNumber string, accountType AccountType, userID string, timeProvider coreport.TimeProvider) (*Account, error) {
	if len(accountNumber) != AccountNumberLength {
		return nil, errs.ErrUnknownAccount
	}
	if !IsValidAccountType(string(accountType)) {
		return nil, errs.ErrInvalidAccountType
	}
	if userID == "" {
		return nil, errs.ErrInvalidUsername
	}

	now := timeProvider.Now()
	return &Account{
		AccountNumber: accountNumber,
		Type:          accountType,
		balance:       0,
		UserID:        userID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Balance returns the current balance in cents
func (a *Account) Balance() int64 {
	return a.balance
}

// FormattedBalance returns the balance as a string with 2 decimal places
func (a *Account) FormattedBalance() string {
	return AmountInCentsToString(a.balance)
}

// SetBalance updates the balance directly (for internal use, like repositories)
func (a *Account) SetBalance(balanceInCents int64, at time.Time) {
	a.balance = balanceInCents
	a.UpdatedAt = at
}

// CanDebit checks if the account has enough balance for a debit
func (a *Account) CanDebit(amountInCents int64) bool {
	return a.balance >= amountInCents
}

// Credit adds the amount to the balance.
// Returns ErrAmountOverflow if the new balance would not fit in int64.
func (a *Account) Credit(amountInCents int64, at time.Time) error {
	if amountInCents > math.MaxInt64-a.balance {
		return errs.ErrAmountOverflow
	}
	a.balance += amountInCents
	a.UpdatedAt = at
	return nil
}

// Debit subtracts the amount from the balance if sufficient funds exist.
// The balance never goes negative.
func (a *Account) Debit(amountInCents int64, at time.Time) error {
	if a.balance < amountInCents {
		return errs.ErrInsufficientFunds
	}
	a.balance -= amountInCents
	a.UpdatedAt = at
	return nil
}

// Clone returns a copy of the account.
// Ledger operations compute on copies so a failed operation leaves the
// caller's snapshot untouched.
func (a *Account) Clone() *Account {
	cp := *a
	return &cp
}
