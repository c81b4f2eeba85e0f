package dto

import (
	"strconv"
	"time"

	"github.com/ramadhanf/slot-portal/internal/domain/entity"
)

// DepositRequest is the payload for POST /api/wallet/deposit.
// The 10000 minimum is part of the API contract and enforced at binding time.
type DepositRequest struct {
	Amount        float64 `json:"amount" binding:"required,gte=10000"`
	ProofImageURL string  `json:"proofImageUrl" binding:"required,url"`
}

// WithdrawRequest is the payload for POST /api/wallet/withdraw
type WithdrawRequest struct {
	Amount             float64 `json:"amount" binding:"required,gte=10000"`
	DestinationAccount string  `json:"destinationAccount" binding:"required"`
}

// AmountToCents converts a JSON number amount to cents without accumulating
// float error: the value is formatted to two decimal places first, then parsed
// by the same validator the rest of the system uses.
func AmountToCents(amount float64) (int64, error) {
	return entity.ValidateAndConvertAmount(strconv.FormatFloat(amount, 'f', 2, 64))
}

// TransactionResponse represents a wallet transaction on the wire
type TransactionResponse struct {
	ID                 uint64     `json:"id"`
	UserID             string     `json:"userId"`
	Type               string     `json:"type"`
	Amount             string     `json:"amount"`
	Status             string     `json:"status"`
	ProofImageURL      string     `json:"proofImageUrl,omitempty"`
	DestinationAccount string     `json:"destinationAccount,omitempty"`
	AdminNote          string     `json:"adminNote,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	ProcessedAt        *time.Time `json:"processedAt,omitempty"`
}

// NewTransactionResponse builds a TransactionResponse from an entity
func NewTransactionResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                 txn.ID,
		UserID:             txn.UserID,
		Type:               string(txn.Type),
		Amount:             txn.FormattedAmount(),
		Status:             string(txn.Status),
		ProofImageURL:      txn.ProofImageURL,
		DestinationAccount: txn.DestinationAccount,
		AdminNote:          txn.AdminNote,
		CreatedAt:          txn.CreatedAt,
		ProcessedAt:        txn.ProcessedAt,
	}
}

// NewTransactionResponses builds a response slice from entities
func NewTransactionResponses(txns []*entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(txns))
	for _, txn := range txns {
		responses = append(responses, NewTransactionResponse(txn))
	}
	return responses
}
