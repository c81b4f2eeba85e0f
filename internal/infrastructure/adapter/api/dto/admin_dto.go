package dto

import (
	"strconv"

	"github.com/ramadhanf/slot-portal/internal/domain/entity"
	errs "github.com/ramadhanf/slot-portal/internal/domain/error"
	"github.com/ramadhanf/slot-portal/internal/domain/port/persistence"
)

// AdminUpdateUserRequest carries a partial profile override. Each field is
// optional; only present fields are applied.
type AdminUpdateUserRequest struct {
	IsFrozen *bool    `json:"isFrozen"`
	WinRate  *int     `json:"winRate" binding:"omitempty,min=0,max=100"`
	Balance  *float64 `json:"balance" binding:"omitempty,gte=0"`
	IsAdmin  *bool    `json:"isAdmin"`
}

// ToProfileUpdate converts the request into a domain-level update,
// normalizing the balance into cents.
func (r *AdminUpdateUserRequest) ToProfileUpdate() (persistence.ProfileUpdate, error) {
	update := persistence.ProfileUpdate{
		IsFrozen: r.IsFrozen,
		IsAdmin:  r.IsAdmin,
		WinRate:  r.WinRate,
	}

	if r.Balance != nil {
		cents, err := AmountToCents(*r.Balance)
		if err != nil {
			return persistence.ProfileUpdate{}, err
		}
		update.BalanceInCents = &cents
		return update, nil
	}
	return update, nil
}

// ProcessTransactionRequest carries an admin settlement decision
type ProcessTransactionRequest struct {
	Status    string `json:"status" binding:"required,oneof=approved rejected"`
	AdminNote string `json:"adminNote"`
}

// AdminUserResponse extends the user view with moderation fields only
// admins are allowed to see
type AdminUserResponse struct {
	UserID      string      `json:"userId"`
	Email       string      `json:"email"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	Balance     string      `json:"balance"`
	IsFrozen    bool        `json:"isFrozen"`
	IsAdmin     bool        `json:"isAdmin"`
	WinRate     int         `json:"winRate"`
	PhoneNumber string      `json:"phoneNumber"`
	Bank        BankDetails `json:"bank"`
	CreatedAt   string      `json:"createdAt"`
}

// NewAdminUserResponse builds the moderation view for a single account
func NewAdminUserResponse(account *entity.UserAccount) AdminUserResponse {
	return AdminUserResponse{
		UserID:      account.Profile.UserID,
		Email:       account.Identity.Email,
		FirstName:   account.Identity.FirstName,
		LastName:    account.Identity.LastName,
		Balance:     account.Profile.FormattedBalance(),
		IsFrozen:    account.Profile.IsFrozen,
		IsAdmin:     account.Profile.IsAdmin,
		WinRate:     account.Profile.WinRate,
		PhoneNumber: account.Profile.PhoneNumber,
		Bank: BankDetails{
			BankName:          account.Profile.BankName,
			BankAccountName:   account.Profile.BankAccountName,
			BankAccountNumber: account.Profile.BankAccountNumber,
		},
		CreatedAt: account.Profile.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// NewAdminUserResponses builds the moderation view for a list of accounts
func NewAdminUserResponses(accounts []*entity.UserAccount) []AdminUserResponse {
	responses := make([]AdminUserResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, NewAdminUserResponse(account))
	}
	return responses
}

// ParseTransactionID parses a path parameter into a transaction ID
func ParseTransactionID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errs.ErrInvalidRequest
	}
	return id, nil
}
