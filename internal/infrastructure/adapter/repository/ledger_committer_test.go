package repository

import (
	"context"
	"testing"
	"time"

	"github.com/abyssinia-labs/pocketbank/internal/domain/entity"
	errs "github.com/abyssinia-labs/pocketbank/internal/domain/error"
	"github.com/abyssinia-labs/pocketbank/internal/infrastructure/adapter/docstore"
	"github.com/abyssinia-labs/pocketbank/internal/infrastructure/adapter/logger"
	coremocks "github.com/abyssinia-labs/pocketbank/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommitterFixture(t *testing.T, fixedTime time.Time) (*LedgerCommitter, *AccountRepository, *TransactionRepository, *docstore.MemoryStore) {
	store := docstore.NewMemoryStore()
	noop := logger.NewNoopLogger()

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.On("Now").Return(fixedTime).Maybe()

	return NewLedgerCommitter(store, mockTime, noop),
		NewAccountRepository(store, noop),
		NewTransactionRepository(store, noop),
		store
}

func TestCommitMutationSingleAccount(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	committer, accounts, transactions, _ := newCommitterFixture(t, fixedTime)

	alice := storedAccount("1111111111", "alice", entity.TypeSavings, 10000, fixedTime)
	require.NoError(t, accounts.Create(ctx, alice))

	updated := alice.Clone()
	require.NoError(t, updated.Credit(5000, fixedTime.Add(time.Second)))
	entry, err := entity.NewTransaction("tx-1", "1111111111", entity.TypeDeposit, 5000, fixedTime.Add(time.Second), updated.Balance())
	require.NoError(t, err)

	require.NoError(t, committer.CommitMutation(ctx,
		[]*entity.Account{updated},
		[]*entity.Transaction{entry},
	))

	got, err := accounts.GetByNumber(ctx, "1111111111")
	require.NoError(t, err)
	assert.Equal(t, int64(15000), got.Balance())

	listing, err := transactions.ListByAccount(ctx, "1111111111")
	require.NoError(t, err)
	require.Len(t, listing, 1)
	assert.Equal(t, "tx-1", listing[0].ID)
	assert.Equal(t, entity.TypeDeposit, listing[0].Type)
	assert.Equal(t, int64(15000), listing[0].BalanceAfter)
}

func TestCommitMutationTransferLegs(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	committer, accounts, transactions, _ := newCommitterFixture(t, fixedTime)

	alice := storedAccount("1111111111", "alice", entity.TypeSavings, 15000, fixedTime)
	bob := storedAccount("2222222222", "bob", entity.TypeChecking, 5000, fixedTime)
	require.NoError(t, accounts.Create(ctx, alice))
	require.NoError(t, accounts.Create(ctx, bob))

	at := fixedTime.Add(time.Second)
	newAlice := alice.Clone()
	require.NoError(t, newAlice.Debit(3000, at))
	newBob := bob.Clone()
	require.NoError(t, newBob.Credit(3000, at))

	outEntry, err := entity.NewTransaction("tx-out", "1111111111", entity.TypeTransferOut, 3000, at, newAlice.Balance())
	require.NoError(t, err)
	outEntry.RelatedAccountNumber = "2222222222"
	inEntry, err := entity.NewTransaction("tx-in", "2222222222", entity.TypeTransferIn, 3000, at, newBob.Balance())
	require.NoError(t, err)
	inEntry.RelatedAccountNumber = "1111111111"

	require.NoError(t, committer.CommitMutation(ctx,
		[]*entity.Account{newAlice, newBob},
		[]*entity.Transaction{outEntry, inEntry},
	))

	gotAlice, err := accounts.GetByNumber(ctx, "1111111111")
	require.NoError(t, err)
	assert.Equal(t, "120.00", gotAlice.FormattedBalance())

	gotBob, err := accounts.GetByNumber(ctx, "2222222222")
	require.NoError(t, err)
	assert.Equal(t, "80.00", gotBob.FormattedBalance())

	aliceListing, err := transactions.ListByAccount(ctx, "1111111111")
	require.NoError(t, err)
	require.Len(t, aliceListing, 1)
	assert.Equal(t, "2222222222", aliceListing[0].RelatedAccountNumber)

	bobListing, err := transactions.ListByAccount(ctx, "2222222222")
	require.NoError(t, err)
	require.Len(t, bobListing, 1)
	assert.Equal(t, "1111111111", bobListing[0].RelatedAccountNumber)
}

func TestCommitMutationFailureAppliesNothing(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	committer, accounts, transactions, store := newCommitterFixture(t, fixedTime)

	alice := storedAccount("1111111111", "alice", entity.TypeSavings, 10000, fixedTime)
	require.NoError(t, accounts.Create(ctx, alice))

	updated := alice.Clone()
	require.NoError(t, updated.Credit(5000, fixedTime))
	entry, err := entity.NewTransaction("tx-1", "1111111111", entity.TypeDeposit, 5000, fixedTime, updated.Balance())
	require.NoError(t, err)

	store.FailNextBatch = true
	err = committer.CommitMutation(ctx,
		[]*entity.Account{updated},
		[]*entity.Transaction{entry},
	)
	require.Error(t, err)
	assert.True(t, errs.IsPersistenceError(err))

	got, err := accounts.GetByNumber(ctx, "1111111111")
	require.NoError(t, err)
	assert.Equal(t, int64(10000), got.Balance())

	listing, err := transactions.ListByAccount(ctx, "1111111111")
	require.NoError(t, err)
	assert.Empty(t, listing)
}
