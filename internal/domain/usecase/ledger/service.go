package ledger

import (
	"context"
	"errors"

	"github.com/abyssinia-labs/pocketbank/internal/domain/entity"
	errs "github.com/abyssinia-labs/pocketbank/internal/domain/error"
	coreport "github.com/abyssinia-labs/pocketbank/internal/domain/port/core"
	"github.com/abyssinia-labs/pocketbank/internal/domain/port/persistence"
)

// Service orchestrates ledger mutations: it re-reads account state under the
// per-account lock, runs the pure engine, and commits the result through the
// atomic batch primitive. The read-compute-commit cycle for an account never
// interleaves with another mutation of the same account.
type Service struct {
	accounts     persistence.AccountRepository
	transactions persistence.TransactionRepository
	committer    persistence.LedgerCommitter
	engine       *Engine
	locker       *accountLocker
	logger       coreport.Logger
}

// NewService creates a new ledger service
func NewService(
	accounts persistence.AccountRepository,
	transactions persistence.TransactionRepository,
	committer persistence.LedgerCommitter,
	engine *Engine,
	logger coreport.Logger,
) *Service {
	return &Service{
		accounts:     accounts,
		transactions: transactions,
		committer:    committer,
		engine:       engine,
		locker:       newAccountLocker(),
		logger:       logger,
	}
}

// Account returns the current state of an account
func (s *Service) Account(ctx context.Context, accountNumber string) (*entity.Account, error) {
	return s.accounts.GetByNumber(ctx, accountNumber)
}

// AccountForUser returns the user's account. The data model permits several
// accounts per user but registration creates exactly one; the first match
// wins, matching the original single-account design.
func (s *Service) AccountForUser(ctx context.Context, username string) (*entity.Account, error) {
	accounts, err := s.accounts.GetByUser(ctx, username)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, errs.ErrUnknownAccount
	}
	return accounts[0], nil
}

// History returns the account's ledger entries, newest first
func (s *Service) History(ctx context.Context, accountNumber string) ([]*entity.Transaction, error) {
	if _, err := s.accounts.GetByNumber(ctx, accountNumber); err != nil {
		return nil, err
	}
	return s.transactions.ListByAccount(ctx, accountNumber)
}

// Deposit credits the account and appends one deposit entry
func (s *Service) Deposit(ctx context.Context, accountNumber, amount string) (*MutationResult, error) {
	unlock := s.locker.Lock(accountNumber)
	defer unlock()

	account, err := s.accounts.GetByNumber(ctx, accountNumber)
	if err != nil {
		return nil, err
	}

	result, err := s.engine.Deposit(account, amount)
	if err != nil {
		s.logFailure("deposit", accountNumber, amount, err)
		return nil, err
	}

	if err := s.committer.CommitMutation(ctx,
		[]*entity.Account{result.Account},
		[]*entity.Transaction{result.Entry},
	); err != nil {
		return nil, err
	}

	s.logger.Info("Deposit applied", map[string]any{
		"account_number": accountNumber,
		"amount":         result.Entry.Amount(),
		"new_balance":    result.Account.FormattedBalance(),
		"entry_id":       result.Entry.ID,
	})
	return result, nil
}

// Withdraw debits the account and appends one withdrawal entry. A rejected
// withdrawal leaves the account untouched and records nothing.
func (s *Service) Withdraw(ctx context.Context, accountNumber, amount string) (*MutationResult, error) {
	unlock := s.locker.Lock(accountNumber)
	defer unlock()

	account, err := s.accounts.GetByNumber(ctx, accountNumber)
	if err != nil {
		return nil, err
	}

	result, err := s.engine.Withdraw(account, amount)
	if err != nil {
		s.logFailure("withdrawal", accountNumber, amount, err)
		return nil, err
	}

	if err := s.committer.CommitMutation(ctx,
		[]*entity.Account{result.Account},
		[]*entity.Transaction{result.Entry},
	); err != nil {
		return nil, err
	}

	s.logger.Info("Withdrawal applied", map[string]any{
		"account_number": accountNumber,
		"amount":         result.Entry.Amount(),
		"new_balance":    result.Account.FormattedBalance(),
		"entry_id":       result.Entry.ID,
	})
	return result, nil
}

// Transfer moves funds between two accounts. Both legs and both balance
// updates commit in one atomic batch, so a persistence failure can never
// leave one leg recorded without the other.
func (s *Service) Transfer(ctx context.Context, sourceNumber, targetNumber, amount string) (*TransferResult, error) {
	// Self-transfer is rejected before touching the locks; locking the
	// same account twice is collapsed by the locker but the operation is
	// invalid regardless.
	if sourceNumber == targetNumber {
		return nil, errs.ErrSelfTransfer
	}

	unlock := s.locker.Lock(sourceNumber, targetNumber)
	defer unlock()

	source, err := s.accounts.GetByNumber(ctx, sourceNumber)
	if err != nil {
		return nil, err
	}

	target, err := s.accounts.GetByNumber(ctx, targetNumber)
	if err != nil {
		if errors.Is(err, errs.ErrUnknownAccount) {
			target = nil
		} else {
			return nil, err
		}
	}

	result, err := s.engine.Transfer(source, target, amount)
	if err != nil {
		s.logFailure("transfer", sourceNumber, amount, err)
		return nil, err
	}

	if err := s.committer.CommitMutation(ctx,
		[]*entity.Account{result.Source, result.Target},
		[]*entity.Transaction{result.OutEntry, result.InEntry},
	); err != nil {
		return nil, err
	}

	s.logger.Info("Transfer applied", map[string]any{
		"source_account": sourceNumber,
		"target_account": targetNumber,
		"amount":         result.OutEntry.Amount(),
		"source_balance": result.Source.FormattedBalance(),
		"target_balance": result.Target.FormattedBalance(),
	})
	return result, nil
}

func (s *Service) logFailure(operation, accountNumber, amount string, err error) {
	s.logger.Warn("Ledger operation rejected", map[string]any{
		"operation":      operation,
		"account_number": accountNumber,
		"amount":         amount,
		"error":          err.Error(),
		"error_code":     errs.ErrorCode(err),
	})
}
