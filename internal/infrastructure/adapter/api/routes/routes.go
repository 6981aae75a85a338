package routes

import (
	coreport "github.com/abyssinia-labs/pocketbank/internal/domain/port/core"
	"github.com/abyssinia-labs/pocketbank/internal/infrastructure/adapter/api/handler"
	"github.com/abyssinia-labs/pocketbank/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	accountHandler *handler.AccountHandler,
) {
	// Auth routes
	authRoutes := router.Group("/auth")
	{
		// POST /auth/register
		authRoutes.POST("/register", authHandler.Register)

		// POST /auth/login
		authRoutes.POST("/login", authHandler.Login)
	}

	// Account routes
	accountRoutes := router.Group("/accounts")
	{
		// GET /accounts/:accountNumber
		accountRoutes.GET("/:accountNumber", accountHandler.GetAccount)

		// GET /accounts/:accountNumber/transactions
		accountRoutes.GET("/:accountNumber/transactions", accountHandler.GetTransactions)

		// POST /accounts/:accountNumber/deposit
		accountRoutes.POST("/:accountNumber/deposit", accountHandler.Deposit)

		// POST /accounts/:accountNumber/withdraw
		accountRoutes.POST("/:accountNumber/withdraw", accountHandler.Withdraw)

		// POST /accounts/:accountNumber/transfer
		accountRoutes.POST("/:accountNumber/transfer", accountHandler.Transfer)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
