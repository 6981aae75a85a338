package core

import (
	"context"
	"time"
)

// TimeProvider abstracts time operations for the domain.
// The lockout clock is evaluated against this interface so tests can
// move the clock instead of sleeping.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	Until(t time.Time) time.Duration
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
