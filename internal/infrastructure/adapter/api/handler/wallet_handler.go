package handler

import (
	"net/http"

	coreport "github.com/ramadhanf/slot-portal/internal/domain/port/core"
	walletUseCase "github.com/ramadhanf/slot-portal/internal/domain/usecase/wallet"
	"github.com/ramadhanf/slot-portal/internal/infrastructure/adapter/api/dto"
	"github.com/ramadhanf/slot-portal/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// WalletHandler handles deposit and withdrawal HTTP requests
type WalletHandler struct {
	walletService *walletUseCase.Service
	logger        coreport.Logger
}

// NewWalletHandler creates a new wallet handler instance
func NewWalletHandler(walletService *walletUseCase.Service, logger coreport.Logger) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		logger:        logger,
	}
}

// Deposit handles the POST /api/wallet/deposit endpoint. The created
// transaction stays pending until an admin settles it; the balance is
// untouched here.
func (h *WalletHandler) Deposit(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	amountInCents, err := dto.AmountToCents(req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	txn, err := h.walletService.SubmitDeposit(c.Request.Context(), userID, amountInCents, req.ProofImageURL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTransactionResponse(txn))
}

// Withdraw handles the POST /api/wallet/withdraw endpoint. The amount is
// debited immediately; an insufficient balance fails with 400 and leaves the
// balance unchanged.
func (h *WalletHandler) Withdraw(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	amountInCents, err := dto.AmountToCents(req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	txn, err := h.walletService.SubmitWithdraw(c.Request.Context(), userID, amountInCents, req.DestinationAccount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTransactionResponse(txn))
}

// History handles the GET /api/wallet/history endpoint
func (h *WalletHandler) History(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	txns, err := h.walletService.History(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to load transaction history", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponses(txns))
}
