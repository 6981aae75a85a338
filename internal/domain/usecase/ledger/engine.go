package ledger

import (
	"github.com/abyssinia-labs/pocketbank/internal/domain/entity"
	errs "github.com/abyssinia-labs/pocketbank/internal/domain/error"
	coreport "github.com/abyssinia-labs/pocketbank/internal/domain/port/core"
)

// Engine computes the effect of ledger operations against account snapshots.
// It performs no I/O: callers pass current account state in and persist the
// returned state themselves. Entry id and timestamp are the only impure
// fields and come from the injected ports, so given the same inputs the
// resulting balances and entry shapes are always the same.
type Engine struct {
	ids          coreport.IDGenerator
	timeProvider coreport.TimeProvider
}

// NewEngine creates a new ledger engine
func NewEngine(ids coreport.IDGenerator, timeProvider coreport.TimeProvider) *Engine {
	return &Engine{
		ids:          ids,
		timeProvider: timeProvider,
	}
}

// MutationResult carries the outcome of a single-account operation
type MutationResult struct {
	Account *entity.Account
	Entry   *entity.Transaction
}

// TransferResult carries the outcome of a two-leg transfer
type TransferResult struct {
	Source   *entity.Account
	Target   *entity.Account
	OutEntry *entity.Transaction
	InEntry  *entity.Transaction
}

// Deposit validates the amount and computes the credited account state plus
// its deposit entry. The input account is not mutated.
func (e *Engine) Deposit(account *entity.Account, amount string) (*MutationResult, error) {
	cents, err := entity.ValidatePositiveAmount(amount)
	if err != nil {
		return nil, err
	}

	now := e.timeProvider.Now()
	updated := account.Clone()
	if err := updated.Credit(cents, now); err != nil {
		return nil, err
	}

	entry, err := entity.NewTransaction(
		e.ids.NewID(),
		updated.AccountNumber,
		entity.TypeDeposit,
		cents,
		now,
		updated.Balance(),
	)
	if err != nil {
		return nil, err
	}

	return &MutationResult{Account: updated, Entry: entry}, nil
}

// Withdraw validates the amount and computes the debited account state plus
// its withdrawal entry. Fails with ErrInsufficientFunds when the amount
// exceeds the balance; the input account is never left partially changed.
func (e *Engine) Withdraw(account *entity.Account, amount string) (*MutationResult, error) {
	cents, err := entity.ValidatePositiveAmount(amount)
	if err != nil {
		return nil, err
	}

	if !account.CanDebit(cents) {
		return nil, errs.NewInsufficientFundsError(
			account.AccountNumber,
			entity.AmountInCentsToString(cents),
			account.FormattedBalance(),
		)
	}

	now := e.timeProvider.Now()
	updated := account.Clone()
	if err := updated.Debit(cents, now); err != nil {
		return nil, err
	}

	entry, err := entity.NewTransaction(
		e.ids.NewID(),
		updated.AccountNumber,
		entity.TypeWithdrawal,
		cents,
		now,
		updated.Balance(),
	)
	if err != nil {
		return nil, err
	}

	return &MutationResult{Account: updated, Entry: entry}, nil
}

// Transfer computes both legs of a transfer. A nil target means the lookup
// found nothing and yields ErrUnknownAccount; a target equal to the source is
// rejected with ErrSelfTransfer. Both legs share one timestamp and reference
// each other's account number, and the sum of the two balances is unchanged.
func (e *Engine) Transfer(source, target *entity.Account, amount string) (*TransferResult, error) {
	cents, err := entity.ValidatePositiveAmount(amount)
	if err != nil {
		return nil, err
	}

	if target == nil {
		return nil, errs.ErrUnknownAccount
	}
	if source.AccountNumber == target.AccountNumber {
		return nil, errs.ErrSelfTransfer
	}

	if !source.CanDebit(cents) {
		return nil, errs.NewInsufficientFundsError(
			source.AccountNumber,
			entity.AmountInCentsToString(cents),
			source.FormattedBalance(),
		)
	}

	now := e.timeProvider.Now()

	newSource := source.Clone()
	if err := newSource.Debit(cents, now); err != nil {
		return nil, err
	}
	newTarget := target.Clone()
	if err := newTarget.Credit(cents, now); err != nil {
		return nil, err
	}

	outEntry, err := entity.NewTransaction(
		e.ids.NewID(),
		newSource.AccountNumber,
		entity.TypeTransferOut,
		cents,
		now,
		newSource.Balance(),
	)
	if err != nil {
		return nil, err
	}
	outEntry.RelatedAccountNumber = newTarget.AccountNumber

	inEntry, err := entity.NewTransaction(
		e.ids.NewID(),
		newTarget.AccountNumber,
		entity.TypeTransferIn,
		cents,
		now,
		newTarget.Balance(),
	)
	if err != nil {
		return nil, err
	}
	inEntry.RelatedAccountNumber = newSource.AccountNumber

	return &TransferResult{
		Source:   newSource,
		Target:   newTarget,
		OutEntry: outEntry,
		InEntry:  inEntry,
	}, nil
}
