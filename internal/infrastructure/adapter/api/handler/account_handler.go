package handler

import (
	"net/http"
	"time"

	"github.com/abyssinia-labs/pocketbank/internal/domain/entity"
	domainerr "github.com/abyssinia-labs/pocketbank/internal/domain/error"
	coreport "github.com/abyssinia-labs/pocketbank/internal/domain/port/core"
	ledgerUseCase "github.com/abyssinia-labs/pocketbank/internal/domain/usecase/ledger"
	"github.com/abyssinia-labs/pocketbank/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AccountHandler handles account and ledger HTTP requests
type AccountHandler struct {
	ledgerService *ledgerUseCase.Service
	logger        coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(ledgerService *ledgerUseCase.Service, logger coreport.Logger) *AccountHandler {
	return &AccountHandler{
		ledgerService: ledgerService,
		logger:        logger,
	}
}

// GetAccount handles the GET /accounts/:accountNumber endpoint
func (h *AccountHandler) GetAccount(c *gin.Context) {
	accountNumber := c.Param("accountNumber")

	account, err := h.ledgerService.Account(c.Request.Context(), accountNumber)
	if err != nil {
		h.logger.Error("Error getting account", map[string]any{
			"account_number": accountNumber,
			"error":          err.Error(),
		})
		c.JSON(httpStatus(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: publicMessage(err),
		})
		return
	}

	c.JSON(http.StatusOK, dto.AccountResponse{
		AccountNumber: account.AccountNumber,
		Type:          string(account.Type),
		Balance:       account.FormattedBalance(),
		Username:      account.UserID,
	})
}

// GetTransactions handles the GET /accounts/:accountNumber/transactions endpoint
func (h *AccountHandler) GetTransactions(c *gin.Context) {
	accountNumber := c.Param("accountNumber")

	transactions, err := h.ledgerService.History(c.Request.Context(), accountNumber)
	if err != nil {
		c.JSON(httpStatus(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: publicMessage(err),
		})
		return
	}

	items := make([]dto.TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		items = append(items, dto.TransactionResponse{
			ID:                   tx.ID,
			Type:                 string(tx.Type),
			Amount:               tx.Amount(),
			Timestamp:            tx.Timestamp.UTC().Format(time.RFC3339),
			Balance:              tx.ResultBalance(),
			RelatedAccountNumber: tx.RelatedAccountNumber,
		})
	}

	c.JSON(http.StatusOK, dto.TransactionListResponse{
		AccountNumber: accountNumber,
		Transactions:  items,
	})
}

// Deposit handles the POST /accounts/:accountNumber/deposit endpoint
func (h *AccountHandler) Deposit(c *gin.Context) {
	h.mutate(c, entity.TypeDeposit)
}

// Withdraw handles the POST /accounts/:accountNumber/withdraw endpoint
func (h *AccountHandler) Withdraw(c *gin.Context) {
	h.mutate(c, entity.TypeWithdrawal)
}

func (h *AccountHandler) mutate(c *gin.Context, kind entity.TransactionType) {
	accountNumber := c.Param("accountNumber")

	var req dto.MutationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidAmount),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	var result *ledgerUseCase.MutationResult
	var err error
	if kind == entity.TypeDeposit {
		result, err = h.ledgerService.Deposit(c.Request.Context(), accountNumber, req.Amount)
	} else {
		result, err = h.ledgerService.Withdraw(c.Request.Context(), accountNumber, req.Amount)
	}
	if err != nil {
		c.JSON(httpStatus(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: publicMessage(err),
		})
		return
	}

	c.JSON(http.StatusOK, dto.MutationResponse{
		TransactionID: result.Entry.ID,
		AccountNumber: result.Account.AccountNumber,
		Type:          string(result.Entry.Type),
		Amount:        result.Entry.Amount(),
		ResultBalance: result.Account.FormattedBalance(),
	})
}

// Transfer handles the POST /accounts/:accountNumber/transfer endpoint
func (h *AccountHandler) Transfer(c *gin.Context) {
	accountNumber := c.Param("accountNumber")

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidAmount),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.ledgerService.Transfer(c.Request.Context(), accountNumber, req.TargetAccountNumber, req.Amount)
	if err != nil {
		c.JSON(httpStatus(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: publicMessage(err),
		})
		return
	}

	c.JSON(http.StatusOK, dto.TransferResponse{
		TransactionID:       result.OutEntry.ID,
		SourceAccountNumber: result.Source.AccountNumber,
		TargetAccountNumber: result.Target.AccountNumber,
		Amount:              result.OutEntry.Amount(),
		ResultBalance:       result.Source.FormattedBalance(),
	})
}
