package logger

import (
	"github.com/abyssinia-labs/pocketbank/internal/domain/port/core"
)

// NoopLogger discards everything. Used in tests where log output is noise.
type NoopLogger struct {
	level core.LogLevel
}

// NewNoopLogger returns a logger that drops all entries.
func NewNoopLogger() core.Logger {
	return &NoopLogger{level: core.LogLevelError}
}

func (l *NoopLogger) SetLevel(level core.LogLevel) {
	l.level = level
}

func (l *NoopLogger) GetLevel() core.LogLevel {
	return l.level
}

func (l *NoopLogger) Debug(message string, fields map[string]any) {}

func (l *NoopLogger) Info(message string, fields map[string]any) {}

func (l *NoopLogger) Warn(message string, fields map[string]any) {}

func (l *NoopLogger) Error(message string, fields map[string]any) {}

func (l *NoopLogger) Flush() error {
	return nil
}
