package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientBalance = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidUserID       = 4003
	CodeAlreadyProcessed    = 4004
	CodeInvalidWinRate      = 4005
	CodeAccountFrozen       = 4031
	CodeBalanceTooLow       = 4032
	CodeAdminRequired       = 4033
	CodeUserNotFound        = 4040
	CodeTransactionNotFound = 4041
	CodeGameNotFound        = 4042
	CodeUnauthenticated     = 4010

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInsufficientBalance is returned when a withdrawal exceeds the available balance
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidAmount is returned when a monetary amount has an invalid format
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when a monetary amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrAmountBelowMinimum is returned when a deposit or withdrawal is below the configured minimum
	ErrAmountBelowMinimum = errors.New("amount is below the minimum")

	// ErrInvalidUserID is returned when the user identifier is empty
	ErrInvalidUserID = errors.New("user ID cannot be empty")

	// ErrInvalidWinRate is returned when a win rate is outside the 0-100 range
	ErrInvalidWinRate = errors.New("win rate must be between 0 and 100")

	// ErrAlreadyProcessed is returned when settling a transaction that is no longer pending
	ErrAlreadyProcessed = errors.New("transaction already processed")

	// ErrInvalidDecision is returned when a settlement decision is not approved or rejected
	ErrInvalidDecision = errors.New("invalid settlement decision")

	// ErrAccountFrozen is returned when a frozen account attempts a gated action
	ErrAccountFrozen = errors.New("account is frozen")

	// ErrBalanceTooLow is returned when the balance is below the minimum required to play
	ErrBalanceTooLow = errors.New("balance too low to play")

	// ErrAdminRequired is returned when a non-admin calls an admin operation
	ErrAdminRequired = errors.New("admin access required")

	// ErrUnauthenticated is returned when no valid session accompanies the request
	ErrUnauthenticated = errors.New("authentication required")

	// ErrUserNotFound is returned when the requested user or profile doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrGameNotFound is returned when the requested game is unknown or inactive
	ErrGameNotFound = errors.New("game not found")

	// ErrDuplicateProfile is returned when creating a profile that already exists
	ErrDuplicateProfile = errors.New("profile already exists")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount), errors.Is(err, ErrAmountBelowMinimum):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidWinRate):
		return CodeInvalidWinRate
	case errors.Is(err, ErrAlreadyProcessed):
		return CodeAlreadyProcessed
	case errors.Is(err, ErrAccountFrozen):
		return CodeAccountFrozen
	case errors.Is(err, ErrBalanceTooLow):
		return CodeBalanceTooLow
	case errors.Is(err, ErrAdminRequired):
		return CodeAdminRequired
	case errors.Is(err, ErrUnauthenticated):
		return CodeUnauthenticated
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrGameNotFound):
		return CodeGameNotFound
	default:
		return CodeInternalServer
	}
}

// InsufficientBalanceError provides detailed error information for insufficient balance
type InsufficientBalanceError struct {
	UserID      string
	Amount      string
	CurrBalance string
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for user %s: required %s, available %s",
		e.UserID, e.Amount, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_balance",
		"user_id":         e.UserID,
		"amount":          e.Amount,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(userID, amount, currentBalance string) error {
	return &InsufficientBalanceError{
		UserID:      userID,
		Amount:      amount,
		CurrBalance: currentBalance,
	}
}

// SettlementError represents an error raised while settling a wallet transaction
type SettlementError struct {
	TransactionID uint64
	UserID        string
	Type          string
	Decision      string
	Reason        string
	Err           error
}

// Error implements the error interface for SettlementError
func (e *SettlementError) Error() string {
	return fmt.Sprintf("settlement error for transaction %d (user: %s, type: %s, decision: %s): %s - %v",
		e.TransactionID, e.UserID, e.Type, e.Decision, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *SettlementError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *SettlementError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "settlement_error",
		"transaction_id": e.TransactionID,
		"user_id":        e.UserID,
		"type":           e.Type,
		"decision":       e.Decision,
		"reason":         e.Reason,
		"error":          e.Err.Error(),
		"error_code":     ErrorCode(e.Err),
	}
}

// NewSettlementError creates a detailed settlement error
func NewSettlementError(transactionID uint64, userID, txType, decision, reason string, err error) *SettlementError {
	return &SettlementError{
		TransactionID: transactionID,
		UserID:        userID,
		Type:          txType,
		Decision:      decision,
		Reason:        reason,
		Err:           err,
	}
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsAlreadyProcessedError checks if the error is an already-processed settlement error
func IsAlreadyProcessedError(err error) bool {
	return errors.Is(err, ErrAlreadyProcessed)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrGameNotFound)
}

// IsUnauthenticatedError checks if the error is an authentication failure
func IsUnauthenticatedError(err error) bool {
	return errors.Is(err, ErrUnauthenticated)
}

// IsForbiddenError checks if the error should surface as a 403 to the caller
func IsForbiddenError(err error) bool {
	return errors.Is(err, ErrAccountFrozen) ||
		errors.Is(err, ErrBalanceTooLow) ||
		errors.Is(err, ErrAdminRequired)
}
