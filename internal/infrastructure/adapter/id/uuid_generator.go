package id

import (
	"github.com/google/uuid"

	"github.com/abyssinia-labs/pocketbank/internal/domain/port/core"
)

// UUIDGenerator produces UUIDv4 identifiers for ledger entries
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new UUID generator
func NewUUIDGenerator() core.IDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a random UUIDv4 string
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
