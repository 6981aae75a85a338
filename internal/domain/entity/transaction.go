package entity

import (
	"time"

	errs "github.com/abyssinia-labs/pocketbank/internal/domain/error"
)

// TransactionType represents the kind of ledger mutation a record documents
type TransactionType string

// Transaction types
const (
	TypeDeposit     TransactionType = "deposit"
	TypeWithdrawal  TransactionType = "withdrawal"
	TypeTransferIn  TransactionType = "transfer-in"
	TypeTransferOut TransactionType = "transfer-out"
)

// IsValidTransactionType validates if the transaction type is allowed
func IsValidTransactionType(transactionType string) bool {
	switch TransactionType(transactionType) {
	case TypeDeposit, TypeWithdrawal, TypeTransferIn, TypeTransferOut:
		return true
	}
	return false
}

// Transaction is one immutable entry of the append-only ledger log.
// BalanceAfter is a denormalized snapshot of the owning account's balance
// once this entry was applied.
type Transaction struct {
	ID                   string          // Unique identifier (UUIDv4)
	AccountNumber        string          // Owning account
	Type                 TransactionType // deposit, withdrawal, transfer-in, transfer-out
	AmountInCents        int64           // Always positive
	Timestamp            time.Time       // Creation instant; transfer legs share one
	BalanceAfter         int64           // Owning account's balance after this entry, in cents
	RelatedAccountNumber string          // Counterpart account, set for transfer legs only
}

// NewTransaction creates a new ledger entry with basic validation
func NewTransaction(
	id string,
	accountNumber string,
	transactionType TransactionType,
	amountInCents int64,
	timestamp time.Time,
	balanceAfter int64,
) (*Transaction, error) {
	if id == "" {
		return nil, errs.ErrInternalServer
	}
	if accountNumber == "" {
		return nil, errs.ErrUnknownAccount
	}
	if !IsValidTransactionType(string(transactionType)) {
		return nil, errs.ErrInternalServer
	}
	if amountInCents <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	return &Transaction{
		ID:            id,
		AccountNumber: accountNumber,
		Type:          transactionType,
		AmountInCents: amountInCents,
		Timestamp:     timestamp,
		BalanceAfter:  balanceAfter,
	}, nil
}

// Amount returns the transaction amount as a string with 2 decimal places
func (t *Transaction) Amount() string {
	return AmountInCentsToString(t.AmountInCents)
}

// ResultBalance returns the post-transaction balance as a string with 2 decimal places
func (t *Transaction) ResultBalance() string {
	return AmountInCentsToString(t.BalanceAfter)
}

// IsCredit returns true if this entry increased the owning account's balance
func (t *Transaction) IsCredit() bool {
	return t.Type == TypeDeposit || t.Type == TypeTransferIn
}

// IsDebit returns true if this entry decreased the owning account's balance
func (t *Transaction) IsDebit() bool {
	return t.Type == TypeWithdrawal || t.Type == TypeTransferOut
}

// IsTransferLeg returns true for either half of a two-sided transfer
func (t *Transaction) IsTransferLeg() bool {
	return t.Type == TypeTransferIn || t.Type == TypeTransferOut
}
