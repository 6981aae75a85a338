package logger

import (
	"github.com/abyssinia-labs/pocketbank/internal/domain/port/core"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapts zap to the core.Logger port.
type ZapLogger struct {
	logger *zap.Logger
	level  core.LogLevel
}

// NewZapLogger builds a zap-backed logger. Production mode uses the JSON
// encoder; development mode uses the colored console encoder.
func NewZapLogger(isProduction bool) core.Logger {
	var cfg zap.Config

	if isProduction {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.MessageKey = "message"

	zapLogger, err := cfg.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}

	return &ZapLogger{
		logger: zapLogger,
		level:  core.LogLevelInfo,
	}
}

func (l *ZapLogger) SetLevel(level core.LogLevel) {
	l.level = level
}

func (l *ZapLogger) GetLevel() core.LogLevel {
	return l.level
}

// enabled reports whether entries at the given level should be emitted.
func (l *ZapLogger) enabled(level core.LogLevel) bool {
	return level >= l.level
}

func toZapFields(fields map[string]any) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	return out
}

func (l *ZapLogger) Debug(message string, fields map[string]any) {
	if l.enabled(core.LogLevelDebug) {
		l.logger.Debug(message, toZapFields(fields)...)
	}
}

func (l *ZapLogger) Info(message string, fields map[string]any) {
	if l.enabled(core.LogLevelInfo) {
		l.logger.Info(message, toZapFields(fields)...)
	}
}

func (l *ZapLogger) Warn(message string, fields map[string]any) {
	if l.enabled(core.LogLevelWarn) {
		l.logger.Warn(message, toZapFields(fields)...)
	}
}

func (l *ZapLogger) Error(message string, fields map[string]any) {
	if l.enabled(core.LogLevelError) {
		l.logger.Error(message, toZapFields(fields)...)
	}
}

// Flush syncs the underlying zap logger.
func (l *ZapLogger) Flush() error {
	return l.logger.Sync()
}
