package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/ramadhanf/slot-portal/internal/domain/error"
	"github.com/ramadhanf/slot-portal/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// respondError maps a domain error to its HTTP status and writes the
// standard error envelope. Unrecognized errors become an opaque 500 so
// database details never leak to the client.
func respondError(c *gin.Context, err error) {
	status := errorStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

func errorStatus(err error) int {
	switch {
	case domainerr.IsUnauthenticatedError(err):
		return http.StatusUnauthorized
	case domainerr.IsForbiddenError(err):
		return http.StatusForbidden
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case domainerr.IsInsufficientBalanceError(err),
		domainerr.IsAlreadyProcessedError(err),
		isValidationError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func isValidationError(err error) bool {
	for _, sentinel := range []error{
		domainerr.ErrInvalidRequest,
		domainerr.ErrInvalidAmount,
		domainerr.ErrNegativeAmount,
		domainerr.ErrAmountBelowMinimum,
		domainerr.ErrInvalidUserID,
		domainerr.ErrInvalidWinRate,
		domainerr.ErrInvalidDecision,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// respondBadRequest writes a 400 for malformed request payloads
func respondBadRequest(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: "Invalid request format: " + detail,
	})
}
