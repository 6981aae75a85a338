package persistence

import (
	"context"
	"encoding/json"
)

// Collection names the three document collections the service reads and writes
type Collection string

// Collections
const (
	Users        Collection = "users"
	Accounts     Collection = "accounts"
	Transactions Collection = "transactions"
)

// Write describes one element of an atomic batch. Exactly one of Doc or
// Fields is set: Doc requests a full upsert of the key, Fields a merge-update
// of the named fields.
type Write struct {
	Collection Collection
	Key        string
	Doc        any
	Fields     map[string]any
}

// DocumentStore is the narrow surface the core consumes from the backing
// document database. Collections are key-addressable; reads are either point
// lookups or full scans with no filtering pushed down.
type DocumentStore interface {
	// GetAll returns every document in the collection.
	GetAll(ctx context.Context, collection Collection) ([]json.RawMessage, error)

	// GetByKey returns the document stored under key.
	//
	// Possible errors:
	// - ErrDocumentNotFound: If no document exists under the key
	// - ErrPersistence: If the store is unreachable or the read fails
	GetByKey(ctx context.Context, collection Collection, key string) (json.RawMessage, error)

	// PutByKey stores doc under key, replacing any existing document.
	PutByKey(ctx context.Context, collection Collection, key string, doc any) error

	// UpdateFields merges the given fields into the document under key.
	// A missing key is a silent no-op; callers must not rely on a
	// not-found error from this method.
	UpdateFields(ctx context.Context, collection Collection, key string, fields map[string]any) error

	// ApplyBatch applies all writes atomically: either every write commits
	// or none do. Transfer legs and their balance updates go through here.
	ApplyBatch(ctx context.Context, writes []Write) error
}
