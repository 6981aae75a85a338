package repository

import (
	"time"

	"github.com/abyssinia-labs/pocketbank/internal/domain/entity"
)

// Document shapes stored in the document store. Field names follow the
// collection schema, not Go conventions, so documents written by other
// clients of the store stay readable.

type userDocument struct {
	Username         string     `json:"username"`
	Password         string     `json:"password"`
	LoginAttempts    int        `json:"loginAttempts"`
	IsLocked         bool       `json:"isLocked"`
	LastLoginAttempt *time.Time `json:"lastLoginAttempt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func userToDocument(u *entity.User) userDocument {
	return userDocument{
		Username:         u.Username,
		Password:         u.Password,
		LoginAttempts:    u.LoginAttempts,
		IsLocked:         u.IsLocked,
		LastLoginAttempt: u.LastLoginAttempt,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

func (d userDocument) toEntity() *entity.User {
	return &entity.User{
		Username:         d.Username,
		Password:         d.Password,
		LoginAttempts:    d.LoginAttempts,
		IsLocked:         d.IsLocked,
		LastLoginAttempt: d.LastLoginAttempt,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

type accountDocument struct {
	AccountNumber string    `json:"accountNumber"`
	Type          string    `json:"type"`
	Balance       int64     `json:"balance"` // cents
	UserID        string    `json:"userId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func accountToDocument(a *entity.Account) accountDocument {
	return accountDocument{
		AccountNumber: a.AccountNumber,
		Type:          string(a.Type),
		Balance:       a.Balance(),
		UserID:        a.UserID,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func (d accountDocument) toEntity() *entity.Account {
	account := &entity.Account{
		AccountNumber: d.AccountNumber,
		Type:          entity.AccountType(d.Type),
		UserID:        d.UserID,
		CreatedAt:     d.CreatedAt,
	}
	account.SetBalance(d.Balance, d.UpdatedAt)
	return account
}

type transactionDocument struct {
	ID                   string    `json:"id"`
	AccountNumber        string    `json:"accountNumber"`
	Type                 string    `json:"type"`
	Amount               int64     `json:"amount"` // cents
	Timestamp            time.Time `json:"timestamp"`
	Balance              int64     `json:"balance"` // cents, post-operation snapshot
	RelatedAccountNumber string    `json:"relatedAccountNumber,omitempty"`
}

func transactionToDocument(t *entity.Transaction) transactionDocument {
	return transactionDocument{
		ID:                   t.ID,
		AccountNumber:        t.AccountNumber,
		Type:                 string(t.Type),
		Amount:               t.AmountInCents,
		Timestamp:            t.Timestamp,
		Balance:              t.BalanceAfter,
		RelatedAccountNumber: t.RelatedAccountNumber,
	}
}

func (d transactionDocument) toEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:                   d.ID,
		AccountNumber:        d.AccountNumber,
		Type:                 entity.TransactionType(d.Type),
		AmountInCents:        d.Amount,
		Timestamp:            d.Timestamp,
		BalanceAfter:         d.Balance,
		RelatedAccountNumber: d.RelatedAccountNumber,
	}
}
