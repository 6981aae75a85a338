package id

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/abyssinia-labs/pocketbank/internal/domain/entity"
	"github.com/abyssinia-labs/pocketbank/internal/domain/port/core"
)

// RandomAccountNumberGenerator draws uniformly random 10-digit numeral
// strings from crypto/rand. Leading zeros are allowed; the number is an
// opaque key, not an integer.
type RandomAccountNumberGenerator struct{}

// NewAccountNumberGenerator creates a new account number generator
func NewAccountNumberGenerator() core.AccountNumberGenerator {
	return &RandomAccountNumberGenerator{}
}

// Generate returns a candidate 10-digit account number
func (g *RandomAccountNumberGenerator) Generate() (string, error) {
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(entity.AccountNumberLength), nil)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}
	return fmt.Sprintf("%0*d", entity.AccountNumberLength, n), nil
}
