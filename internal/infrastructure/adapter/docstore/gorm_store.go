package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	errs "github.com/abyssinia-labs/pocketbank/internal/domain/error"
	coreport "github.com/abyssinia-labs/pocketbank/internal/domain/port/core"
	"github.com/abyssinia-labs/pocketbank/internal/domain/port/persistence"
)

// GormStore implements the DocumentStore interface on PostgreSQL through
// GORM. Batches run inside one database transaction, which gives ApplyBatch
// its all-or-nothing guarantee.
type GormStore struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewGormStore creates a new PostgreSQL-backed document store
func NewGormStore(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *GormStore {
	return &GormStore{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Migrate creates the documents table if it does not exist
func (s *GormStore) Migrate() error {
	if err := s.db.AutoMigrate(&Document{}); err != nil {
		return fmt.Errorf("migrating documents table: %w", err)
	}
	return nil
}

// GetAll returns every document in the collection
func (s *GormStore) GetAll(ctx context.Context, collection persistence.Collection) ([]json.RawMessage, error) {
	var rows []Document
	result := s.db.WithContext(ctx).
		Where("collection = ?", string(collection)).
		Find(&rows)
	if result.Error != nil {
		return nil, errs.NewPersistenceError("scan", string(collection), "", result.Error)
	}

	docs := make([]json.RawMessage, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, json.RawMessage(row.Data))
	}
	return docs, nil
}

// GetByKey returns the document stored under key
func (s *GormStore) GetByKey(ctx context.Context, collection persistence.Collection, key string) (json.RawMessage, error) {
	var row Document
	result := s.db.WithContext(ctx).
		Where("collection = ? AND key = ?", string(collection), key).
		First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrDocumentNotFound
		}
		return nil, errs.NewPersistenceError("get", string(collection), key, result.Error)
	}
	return json.RawMessage(row.Data), nil
}

// PutByKey stores doc under key, replacing any existing document
func (s *GormStore) PutByKey(ctx context.Context, collection persistence.Collection, key string, doc any) error {
	if err := s.put(s.db.WithContext(ctx), collection, key, doc); err != nil {
		return errs.NewPersistenceError("put", string(collection), key, err)
	}
	return nil
}

// UpdateFields merges the given fields into the document under key.
// A missing key is a silent no-op.
func (s *GormStore) UpdateFields(ctx context.Context, collection persistence.Collection, key string, fields map[string]any) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.mergeFields(tx, collection, key, fields)
	})
	if err != nil {
		return errs.NewPersistenceError("update", string(collection), key, err)
	}
	return nil
}

// ApplyBatch applies all writes in one database transaction
func (s *GormStore) ApplyBatch(ctx context.Context, writes []persistence.Write) error {
	if len(writes) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, w := range writes {
			if w.Doc != nil {
				if err := s.put(tx, w.Collection, w.Key, w.Doc); err != nil {
					return err
				}
				continue
			}
			if err := s.mergeFields(tx, w.Collection, w.Key, w.Fields); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Batch write failed, rolled back", map[string]any{
			"writes": len(writes),
			"error":  err.Error(),
		})
		return errs.NewPersistenceError("batch", "", "", err)
	}
	return nil
}

// put upserts a full document inside the given transaction handle
func (s *GormStore) put(tx *gorm.DB, collection persistence.Collection, key string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}

	now := s.timeProvider.Now()
	row := Document{
		Collection: string(collection),
		Key:        key,
		Data:       data,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "collection"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row).Error
}

// mergeFields reads the current document under a row lock, merges the
// partial fields into it, and writes it back. Rows that do not exist are
// skipped without error.
func (s *GormStore) mergeFields(tx *gorm.DB, collection persistence.Collection, key string, fields map[string]any) error {
	var row Document
	result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("collection = ? AND key = ?", string(collection), key).
		First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil
		}
		return result.Error
	}

	var doc map[string]any
	if err := json.Unmarshal(row.Data, &doc); err != nil {
		return fmt.Errorf("unmarshaling document for merge: %w", err)
	}
	for k, v := range fields {
		doc[k] = v
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling merged document: %w", err)
	}

	return tx.Model(&Document{}).
		Where("collection = ? AND key = ?", string(collection), key).
		Updates(map[string]any{
			"data":       data,
			"updated_at": s.timeProvider.Now(),
		}).Error
}
