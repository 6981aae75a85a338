package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	coreport "github.com/abyssinia-labs/pocketbank/internal/domain/port/core"
)

// Connect establishes a database connection with retry and pool settings
func Connect(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) (*gorm.DB, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	logger.Info("Connecting to database", map[string]any{
		"host": config.Host,
		"port": config.Port,
		"name": config.Database,
	})

	var db *gorm.DB
	var err error

	for attempt := 0; attempt < config.RetryAttempts; attempt++ {
		if attempt > 0 {
			logger.Warn("Retrying database connection", map[string]any{
				"attempt": attempt + 1,
				"of":      config.RetryAttempts,
				"delay":   config.RetryDelay.String(),
			})
			time.Sleep(config.RetryDelay)
		}

		db, err = gorm.Open(postgres.Open(config.DSN()), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Warn),
			NowFunc: func() time.Time {
				return timeProvider.Now()
			},
		})
		if err == nil {
			break
		}

		logger.Error("Failed to connect to database", map[string]any{
			"error":   err.Error(),
			"attempt": attempt + 1,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", config.RetryAttempts, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(config.ConnMaxIdleTime)

	logger.Info("Successfully connected to database", map[string]any{
		"host":           config.Host,
		"max_open_conns": config.MaxOpenConns,
		"max_idle_conns": config.MaxIdleConns,
	})

	return db, nil
}

// Close shuts down the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}
