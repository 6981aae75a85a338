package docstore

import (
	"time"
)

// Document is the database model backing every collection: one row per
// document, with the JSON payload stored as-is. Collection and Key form
// the composite primary key.
type Document struct {
	Collection string    `gorm:"primaryKey;size:50"`
	Key        string    `gorm:"primaryKey;size:255"`
	Data       []byte    `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for Document
func (Document) TableName() string {
	return "documents"
}
