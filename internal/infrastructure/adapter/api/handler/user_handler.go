package handler

import (
	"net/http"

	coreport "github.com/ramadhanf/slot-portal/internal/domain/port/core"
	"github.com/ramadhanf/slot-portal/internal/domain/port/persistence"
	ledgerUseCase "github.com/ramadhanf/slot-portal/internal/domain/usecase/ledger"
	"github.com/ramadhanf/slot-portal/internal/infrastructure/adapter/api/dto"
	"github.com/ramadhanf/slot-portal/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// UserHandler handles account-related HTTP requests
type UserHandler struct {
	ledgerService *ledgerUseCase.Service
	logger        coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(ledgerService *ledgerUseCase.Service, logger coreport.Logger) *UserHandler {
	return &UserHandler{
		ledgerService: ledgerService,
		logger:        logger,
	}
}

// Me handles the GET /api/user/me endpoint. The profile is created on first
// access, so a freshly registered identity sees its signup bonus here.
func (h *UserHandler) Me(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	account, err := h.ledgerService.GetAccount(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to load account", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(account))
}

// UpdateBank handles the PUT /api/user/bank endpoint
func (h *UserHandler) UpdateBank(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req dto.UpdateBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	details := persistence.BankDetails{
		BankName:          req.BankName,
		BankAccountNumber: req.BankAccountNumber,
		BankAccountName:   req.BankAccountName,
	}
	if err := h.ledgerService.UpdateBankDetails(c.Request.Context(), userID, details); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
