package handler

import (
	"net/http"

	coreport "github.com/ramadhanf/slot-portal/internal/domain/port/core"
	ledgerUseCase "github.com/ramadhanf/slot-portal/internal/domain/usecase/ledger"
	walletUseCase "github.com/ramadhanf/slot-portal/internal/domain/usecase/wallet"
	"github.com/ramadhanf/slot-portal/internal/infrastructure/adapter/api/dto"
	"github.com/ramadhanf/slot-portal/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// AdminHandler handles the admin console HTTP requests
type AdminHandler struct {
	ledgerService *ledgerUseCase.Service
	walletService *walletUseCase.Service
	logger        coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(
	ledgerService *ledgerUseCase.Service,
	walletService *walletUseCase.Service,
	logger coreport.Logger,
) *AdminHandler {
	return &AdminHandler{
		ledgerService: ledgerService,
		walletService: walletService,
		logger:        logger,
	}
}

// ListUsers handles the GET /api/admin/users endpoint
func (h *AdminHandler) ListUsers(c *gin.Context) {
	accounts, err := h.ledgerService.ListAccounts(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list accounts", map[string]any{
			"error": err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAdminUserResponses(accounts))
}

// UpdateUser handles the PATCH /api/admin/users/:userId endpoint. Only the
// fields present in the payload are applied.
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	userID := c.Param("userId")

	var req dto.AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	update, err := req.ToProfileUpdate()
	if err != nil {
		respondError(c, err)
		return
	}

	profile, err := h.ledgerService.AdminUpdate(c.Request.Context(), userID, update)
	if err != nil {
		respondError(c, err)
		return
	}

	h.logger.Info("Admin updated user", map[string]any{
		"admin_id":       middleware.UserIDFromContext(c),
		"target_user_id": userID,
	})

	account, err := h.ledgerService.GetAccount(c.Request.Context(), profile.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAdminUserResponse(account))
}

// ListTransactions handles the GET /api/admin/transactions endpoint.
// An optional status query parameter filters by settlement state.
func (h *AdminHandler) ListTransactions(c *gin.Context) {
	statusFilter := c.Query("status")

	txns, err := h.walletService.ListTransactions(c.Request.Context(), statusFilter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponses(txns))
}

// ProcessTransaction handles the POST /api/admin/transactions/:transactionId/process
// endpoint: the settlement decision on a pending deposit or withdrawal.
func (h *AdminHandler) ProcessTransaction(c *gin.Context) {
	transactionID, err := dto.ParseTransactionID(c.Param("transactionId"))
	if err != nil {
		respondBadRequest(c, "transaction ID must be a positive integer")
		return
	}

	var req dto.ProcessTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	txn, err := h.walletService.Settle(c.Request.Context(), transactionID, req.Status, req.AdminNote)
	if err != nil {
		respondError(c, err)
		return
	}

	h.logger.Info("Admin settled transaction", map[string]any{
		"admin_id":       middleware.UserIDFromContext(c),
		"transaction_id": txn.ID,
		"decision":       req.Status,
	})

	c.JSON(http.StatusOK, dto.NewTransactionResponse(txn))
}
