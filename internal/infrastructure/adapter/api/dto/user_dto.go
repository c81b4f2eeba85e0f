package dto

import (
	"github.com/ramadhanf/slot-portal/internal/domain/entity"
)

// BankDetails carries the payout account fields of a user profile
type BankDetails struct {
	BankName          string `json:"bankName"`
	BankAccountNumber string `json:"accountNumber"`
	BankAccountName   string `json:"accountName"`
}

// UserResponse combines the external identity with the portal profile
type UserResponse struct {
	ID              string      `json:"id"`
	Email           string      `json:"email,omitempty"`
	FirstName       string      `json:"firstName,omitempty"`
	LastName        string      `json:"lastName,omitempty"`
	ProfileImageURL string      `json:"profileImageUrl,omitempty"`
	Balance         string      `json:"balance"`
	IsAdmin         bool        `json:"isAdmin"`
	IsFrozen        bool        `json:"isFrozen"`
	WinRate         int         `json:"winRate"`
	BankDetails     BankDetails `json:"bankDetails"`
}

// NewUserResponse builds a UserResponse from a joined account
func NewUserResponse(account *entity.UserAccount) UserResponse {
	return UserResponse{
		ID:              account.Identity.ID,
		Email:           account.Identity.Email,
		FirstName:       account.Identity.FirstName,
		LastName:        account.Identity.LastName,
		ProfileImageURL: account.Identity.ProfileImageURL,
		Balance:         account.Profile.FormattedBalance(),
		IsAdmin:         account.Profile.IsAdmin,
		IsFrozen:        account.Profile.IsFrozen,
		WinRate:         account.Profile.WinRate,
		BankDetails: BankDetails{
			BankName:          account.Profile.BankName,
			BankAccountNumber: account.Profile.BankAccountNumber,
			BankAccountName:   account.Profile.BankAccountName,
		},
	}
}

// UpdateBankRequest is the payload for PUT /api/user/bank
type UpdateBankRequest struct {
	BankName          string `json:"bankName" binding:"required"`
	BankAccountNumber string `json:"bankAccountNumber" binding:"required"`
	BankAccountName   string `json:"bankAccountName" binding:"required"`
}
