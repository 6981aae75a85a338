package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/abyssinia-labs/pocketbank/internal/domain/port/core"
	authUseCase "github.com/abyssinia-labs/pocketbank/internal/domain/usecase/auth"
	ledgerUseCase "github.com/abyssinia-labs/pocketbank/internal/domain/usecase/ledger"

	"github.com/abyssinia-labs/pocketbank/internal/infrastructure/adapter/api/handler"
	"github.com/abyssinia-labs/pocketbank/internal/infrastructure/adapter/api/routes"
	"github.com/abyssinia-labs/pocketbank/internal/infrastructure/adapter/database"
	"github.com/abyssinia-labs/pocketbank/internal/infrastructure/adapter/docstore"
	idGenerator "github.com/abyssinia-labs/pocketbank/internal/infrastructure/adapter/id"
	"github.com/abyssinia-labs/pocketbank/internal/infrastructure/adapter/logger"
	"github.com/abyssinia-labs/pocketbank/internal/infrastructure/adapter/repository"
	timeProvider "github.com/abyssinia-labs/pocketbank/internal/infrastructure/adapter/time"
	"github.com/abyssinia-labs/pocketbank/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(core.ParseLogLevel(cfg.Logger.Level))
	defer appLogger.Flush()

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Setup database configuration
	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}

	// Connect to the database
	db, err := database.Connect(dbConfig, appLogger, tp)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			appLogger.Error("Failed to close database", map[string]any{
				"error": err.Error(),
			})
		}
	}()

	// Initialize the document store and run migrations
	store := docstore.NewGormStore(db, tp, appLogger)
	if err := store.Migrate(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(store, appLogger)
	accountRepo := repository.NewAccountRepository(store, appLogger)
	transactionRepo := repository.NewTransactionRepository(store, appLogger)
	committer := repository.NewLedgerCommitter(store, tp, appLogger)

	// Initialize use cases
	engine := ledgerUseCase.NewEngine(idGenerator.NewUUIDGenerator(), tp)
	ledgerService := ledgerUseCase.NewService(accountRepo, transactionRepo, committer, engine, appLogger)

	guard := authUseCase.NewGuard(cfg.Auth.MaxLoginAttempts, cfg.Auth.LockoutDuration)
	authService := authUseCase.NewService(
		userRepo,
		accountRepo,
		guard,
		idGenerator.NewAccountNumberGenerator(),
		tp,
		appLogger,
	)

	// Initialize API handlers
	authHandler := handler.NewAuthHandler(authService, ledgerService, appLogger)
	accountHandler := handler.NewAccountHandler(ledgerService, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, authHandler, accountHandler)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Shutdown the server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		missingConfigs = append(missingConfigs, "database.host (or PB_DB_HOST environment variable)")
	}
	if cfg.Database.Port == "" {
		missingConfigs = append(missingConfigs, "database.port (or PB_DB_PORT environment variable)")
	}
	if cfg.Database.Username == "" {
		missingConfigs = append(missingConfigs, "database.username (or PB_DB_USERNAME environment variable)")
	}
	if cfg.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database (or PB_DB_NAME environment variable)")
	}

	if cfg.Auth.MaxLoginAttempts <= 0 {
		missingConfigs = append(missingConfigs, "auth.maxLoginAttempts")
	}
	if cfg.Auth.LockoutDuration <= 0 {
		missingConfigs = append(missingConfigs, "auth.lockoutDuration")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missingConfigs, ", "))
	}

	return nil
}
