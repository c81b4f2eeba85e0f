package middleware

import (
	"net/http"

	domainerr "github.com/ramadhanf/slot-portal/internal/domain/error"
	coreport "github.com/ramadhanf/slot-portal/internal/domain/port/core"
	ledgerUseCase "github.com/ramadhanf/slot-portal/internal/domain/usecase/ledger"
	"github.com/ramadhanf/slot-portal/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// AdminOnly gates a route group to profiles carrying the admin flag.
// It must run behind Auth; a request without a resolved user ID is rejected.
func AdminOnly(ledgerService *ledgerUseCase.Service, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := UserIDFromContext(c)
		if userID == "" {
			abortUnauthenticated(c)
			return
		}

		profile, err := ledgerService.GetProfile(c.Request.Context(), userID)
		if err != nil {
			if domainerr.IsNotFoundError(err) {
				abortUnauthenticated(c)
				return
			}
			logger.Error("Admin check failed", map[string]any{
				"user_id":    userID,
				"error":      err.Error(),
				"request_id": RequestIDFromContext(c),
			})
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
				Message: "Internal server error",
			})
			return
		}

		if !profile.IsAdmin {
			logger.Warn("Admin route denied", map[string]any{
				"user_id":    userID,
				"path":       c.Request.URL.Path,
				"request_id": RequestIDFromContext(c),
			})
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrAdminRequired),
				Message: "Admin access required",
			})
			return
		}

		c.Next()
	}
}
