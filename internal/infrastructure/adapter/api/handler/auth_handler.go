package handler

import (
	"net/http"

	domainerr "github.com/abyssinia-labs/pocketbank/internal/domain/error"
	coreport "github.com/abyssinia-labs/pocketbank/internal/domain/port/core"
	authUseCase "github.com/abyssinia-labs/pocketbank/internal/domain/usecase/auth"
	ledgerUseCase "github.com/abyssinia-labs/pocketbank/internal/domain/usecase/ledger"
	"github.com/abyssinia-labs/pocketbank/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login HTTP requests
type AuthHandler struct {
	authService   *authUseCase.Service
	ledgerService *ledgerUseCase.Service
	logger        coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(
	authService *authUseCase.Service,
	ledgerService *ledgerUseCase.Service,
	logger coreport.Logger,
) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		ledgerService: ledgerService,
		logger:        logger,
	}
}

// Register handles the POST /auth/register endpoint
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid registration request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidUsername),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.authService.Register(c.Request.Context(), req.Username, req.Password, req.AccountType)
	if err != nil {
		h.logger.Error("Registration failed", map[string]any{
			"username": req.Username,
			"error":    err.Error(),
		})
		c.JSON(httpStatus(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: publicMessage(err),
		})
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Username:      result.User.Username,
		AccountNumber: result.Account.AccountNumber,
		AccountType:   string(result.Account.Type),
		Balance:       result.Account.FormattedBalance(),
	})
}

// Login handles the POST /auth/login endpoint
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidUsername),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(httpStatus(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: publicMessage(err),
		})
		return
	}

	resp := dto.LoginResponse{Username: user.Username}

	// Best effort lookup of the user's account number for the client
	if account, err := h.ledgerService.AccountForUser(c.Request.Context(), user.Username); err == nil {
		resp.AccountNumber = account.AccountNumber
	}

	c.JSON(http.StatusOK, resp)
}
