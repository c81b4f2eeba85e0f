package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	domainerr "github.com/ramadhanf/slot-portal/internal/domain/error"
)

func TestErrorStatus(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"Unauthenticated", domainerr.ErrUnauthenticated, http.StatusUnauthorized},
		{"AdminRequired", domainerr.ErrAdminRequired, http.StatusForbidden},
		{"AccountFrozen", domainerr.ErrAccountFrozen, http.StatusForbidden},
		{"BalanceTooLow", domainerr.ErrBalanceTooLow, http.StatusForbidden},
		{"UserNotFound", domainerr.ErrUserNotFound, http.StatusNotFound},
		{"TransactionNotFound", domainerr.ErrTransactionNotFound, http.StatusNotFound},
		{"GameNotFound", domainerr.ErrGameNotFound, http.StatusNotFound},
		{"InsufficientBalance", domainerr.ErrInsufficientBalance, http.StatusBadRequest},
		{"DetailedInsufficientBalance", domainerr.NewInsufficientBalanceError("u", "10000.00", "500.00"), http.StatusBadRequest},
		{"AlreadyProcessed", domainerr.ErrAlreadyProcessed, http.StatusBadRequest},
		{"AmountBelowMinimum", domainerr.ErrAmountBelowMinimum, http.StatusBadRequest},
		{"InvalidWinRate", domainerr.ErrInvalidWinRate, http.StatusBadRequest},
		{"InvalidDecision", domainerr.ErrInvalidDecision, http.StatusBadRequest},
		{"InvalidRequest", domainerr.ErrInvalidRequest, http.StatusBadRequest},
		{"WrappedValidation", fmt.Errorf("field: %w", domainerr.ErrInvalidAmount), http.StatusBadRequest},
		{"DatabaseConnection", domainerr.ErrDatabaseConnection, http.StatusInternalServerError},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, errorStatus(tc.err))
		})
	}
}
