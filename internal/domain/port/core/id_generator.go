package core

// IDGenerator produces collision-resistant identifiers for transaction records.
type IDGenerator interface {
	NewID() string
}

// AccountNumberGenerator produces candidate 10-digit account numbers.
// Uniqueness against the store is the caller's responsibility.
type AccountNumberGenerator interface {
	Generate() (string, error)
}
