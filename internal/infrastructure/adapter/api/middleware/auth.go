package middleware

import (
	"net/http"

	domainerr "github.com/ramadhanf/slot-portal/internal/domain/error"
	coreport "github.com/ramadhanf/slot-portal/internal/domain/port/core"
	"github.com/ramadhanf/slot-portal/internal/domain/port/persistence"
	"github.com/ramadhanf/slot-portal/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// Auth resolves the session cookie against the session records written by
// the external identity provider. A missing, unknown or expired session
// rejects the request with 401 before any handler runs.
func Auth(
	identityRepo persistence.IdentityRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cookieName string,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			abortUnauthenticated(c)
			return
		}

		session, err := identityRepo.GetSession(c.Request.Context(), token)
		if err != nil {
			if !domainerr.IsUnauthenticatedError(err) {
				logger.Error("Session lookup failed", map[string]any{
					"error":      err.Error(),
					"request_id": RequestIDFromContext(c),
				})
			}
			abortUnauthenticated(c)
			return
		}

		if session.IsExpired(timeProvider.Now()) {
			abortUnauthenticated(c)
			return
		}

		c.Set(userIDKey, session.UserID)
		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrUnauthenticated),
		Message: "Authentication required",
	})
}

// UserIDFromContext returns the authenticated user ID set by Auth.
// Handlers behind the auth middleware can rely on it being non-empty.
func UserIDFromContext(c *gin.Context) string {
	return c.GetString(userIDKey)
}
