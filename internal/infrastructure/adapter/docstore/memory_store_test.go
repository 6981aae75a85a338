package docstore

import (
	"context"
	"encoding/json"
	"testing"

	errs "github.com/abyssinia-labs/pocketbank/internal/domain/error"
	"github.com/abyssinia-labs/pocketbank/internal/domain/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDoc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemoryStorePutAndGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	t.Run("Get on a missing key", func(t *testing.T) {
		_, err := store.GetByKey(ctx, persistence.Users, "missing")
		assert.ErrorIs(t, err, errs.ErrDocumentNotFound)
	})

	t.Run("Put then get round trips", func(t *testing.T) {
		require.NoError(t, store.PutByKey(ctx, persistence.Users, "alice", testDoc{Name: "alice", Count: 1}))

		raw, err := store.GetByKey(ctx, persistence.Users, "alice")
		require.NoError(t, err)

		var doc testDoc
		require.NoError(t, json.Unmarshal(raw, &doc))
		assert.Equal(t, "alice", doc.Name)
		assert.Equal(t, 1, doc.Count)
	})

	t.Run("Put replaces the whole document", func(t *testing.T) {
		require.NoError(t, store.PutByKey(ctx, persistence.Users, "alice", testDoc{Name: "alice", Count: 7}))

		raw, err := store.GetByKey(ctx, persistence.Users, "alice")
		require.NoError(t, err)

		var doc testDoc
		require.NoError(t, json.Unmarshal(raw, &doc))
		assert.Equal(t, 7, doc.Count)
	})

	t.Run("Collections are isolated", func(t *testing.T) {
		_, err := store.GetByKey(ctx, persistence.Accounts, "alice")
		assert.ErrorIs(t, err, errs.ErrDocumentNotFound)
	})
}

func TestMemoryStoreGetAll(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	t.Run("Empty collection yields no documents", func(t *testing.T) {
		docs, err := store.GetAll(ctx, persistence.Accounts)
		require.NoError(t, err)
		assert.Empty(t, docs)
	})

	t.Run("Documents come back ordered by key", func(t *testing.T) {
		require.NoError(t, store.PutByKey(ctx, persistence.Accounts, "b", testDoc{Name: "second"}))
		require.NoError(t, store.PutByKey(ctx, persistence.Accounts, "a", testDoc{Name: "first"}))

		docs, err := store.GetAll(ctx, persistence.Accounts)
		require.NoError(t, err)
		require.Len(t, docs, 2)

		var first, second testDoc
		require.NoError(t, json.Unmarshal(docs[0], &first))
		require.NoError(t, json.Unmarshal(docs[1], &second))
		assert.Equal(t, "first", first.Name)
		assert.Equal(t, "second", second.Name)
	})
}

func TestMemoryStoreUpdateFields(t *testing.T) {
	ctx := context.Background()

	t.Run("Merge preserves untouched fields", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.PutByKey(ctx, persistence.Users, "alice", testDoc{Name: "alice", Count: 1}))

		require.NoError(t, store.UpdateFields(ctx, persistence.Users, "alice", map[string]any{"count": 5}))

		raw, err := store.GetByKey(ctx, persistence.Users, "alice")
		require.NoError(t, err)

		var doc testDoc
		require.NoError(t, json.Unmarshal(raw, &doc))
		assert.Equal(t, "alice", doc.Name)
		assert.Equal(t, 5, doc.Count)
	})

	t.Run("Missing key is a silent no-op", func(t *testing.T) {
		store := NewMemoryStore()

		require.NoError(t, store.UpdateFields(ctx, persistence.Users, "ghost", map[string]any{"count": 5}))

		_, err := store.GetByKey(ctx, persistence.Users, "ghost")
		assert.ErrorIs(t, err, errs.ErrDocumentNotFound)
	})
}

func TestMemoryStoreApplyBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("Batch applies puts and merges together", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.PutByKey(ctx, persistence.Accounts, "1111111111", testDoc{Name: "alice", Count: 100}))

		err := store.ApplyBatch(ctx, []persistence.Write{
			{Collection: persistence.Accounts, Key: "1111111111", Fields: map[string]any{"count": 70}},
			{Collection: persistence.Transactions, Key: "tx-1", Doc: testDoc{Name: "transfer-out", Count: 30}},
		})
		require.NoError(t, err)

		raw, err := store.GetByKey(ctx, persistence.Accounts, "1111111111")
		require.NoError(t, err)
		var account testDoc
		require.NoError(t, json.Unmarshal(raw, &account))
		assert.Equal(t, 70, account.Count)

		_, err = store.GetByKey(ctx, persistence.Transactions, "tx-1")
		assert.NoError(t, err)
	})

	t.Run("Failed batch applies nothing", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.PutByKey(ctx, persistence.Accounts, "1111111111", testDoc{Name: "alice", Count: 100}))

		store.FailNextBatch = true
		err := store.ApplyBatch(ctx, []persistence.Write{
			{Collection: persistence.Accounts, Key: "1111111111", Fields: map[string]any{"count": 70}},
			{Collection: persistence.Transactions, Key: "tx-1", Doc: testDoc{Name: "transfer-out", Count: 30}},
		})
		require.Error(t, err)
		assert.True(t, errs.IsPersistenceError(err))

		// The merge did not happen
		raw, err := store.GetByKey(ctx, persistence.Accounts, "1111111111")
		require.NoError(t, err)
		var account testDoc
		require.NoError(t, json.Unmarshal(raw, &account))
		assert.Equal(t, 100, account.Count)

		// The put did not happen either
		_, err = store.GetByKey(ctx, persistence.Transactions, "tx-1")
		assert.ErrorIs(t, err, errs.ErrDocumentNotFound)

		// The failure hook is one-shot
		err = store.ApplyBatch(ctx, []persistence.Write{
			{Collection: persistence.Transactions, Key: "tx-1", Doc: testDoc{Name: "transfer-out", Count: 30}},
		})
		assert.NoError(t, err)
	})

	t.Run("Unmarshalable document rolls the batch back", func(t *testing.T) {
		store := NewMemoryStore()

		err := store.ApplyBatch(ctx, []persistence.Write{
			{Collection: persistence.Transactions, Key: "tx-1", Doc: testDoc{Name: "ok"}},
			{Collection: persistence.Transactions, Key: "tx-2", Doc: make(chan int)},
		})
		require.Error(t, err)

		_, err = store.GetByKey(ctx, persistence.Transactions, "tx-1")
		assert.ErrorIs(t, err, errs.ErrDocumentNotFound)
	})
}
