package ledger

import (
	"context"
	"errors"

	"github.com/ramadhanf/slot-portal/internal/domain/entity"
	errs "github.com/ramadhanf/slot-portal/internal/domain/error"
	coreport "github.com/ramadhanf/slot-portal/internal/domain/port/core"
	"github.com/ramadhanf/slot-portal/internal/domain/port/persistence"
)

// Params holds the tunable amounts of the account ledger
type Params struct {
	// SignupBonusInCents seeds the balance of every new profile
	SignupBonusInCents int64
	// MinPlayBalanceInCents is the minimum balance required to launch a game
	MinPlayBalanceInCents int64
}

// Service implements the account ledger: profile lifecycle, balance reads,
// administrative overrides and the game eligibility check.
type Service struct {
	profileRepo  persistence.ProfileRepository
	identityRepo persistence.IdentityRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	params       Params
}

// NewService creates a new ledger service
func NewService(
	profileRepo persistence.ProfileRepository,
	identityRepo persistence.IdentityRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	params Params,
) *Service {
	return &Service{
		profileRepo:  profileRepo,
		identityRepo: identityRepo,
		timeProvider: timeProvider,
		logger:       logger,
		params:       params,
	}
}

// EnsureProfile returns the profile for the given identity, creating it with
// the signup bonus on first call. The very first profile in the system is
// promoted to admin as a bootstrap convenience. Safe to call on every
// authenticated request; it only writes when the profile is missing.
func (s *Service) EnsureProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}

	profile, err = entity.NewProfile(userID, s.params.SignupBonusInCents, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		// A concurrent first request may have created it already
		if errors.Is(err, errs.ErrDuplicateProfile) {
			return s.profileRepo.GetByUserID(ctx, userID)
		}
		return nil, err
	}

	s.logger.Info("Profile created with signup bonus", map[string]any{
		"user_id": userID,
		"balance": profile.FormattedBalance(),
	})

	count, err := s.profileRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count == 1 {
		if err := s.profileRepo.SetAdmin(ctx, userID, true); err != nil {
			return nil, err
		}
		profile.IsAdmin = true
		s.logger.Info("First registered user promoted to admin", map[string]any{
			"user_id": userID,
		})
	}

	return profile, nil
}

// GetProfile returns the profile for the given identity
func (s *Service) GetProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	return s.profileRepo.GetByUserID(ctx, userID)
}

// GetAccount returns the identity joined with its profile
func (s *Service) GetAccount(ctx context.Context, userID string) (*entity.UserAccount, error) {
	identity, err := s.identityRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile, err := s.EnsureProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &entity.UserAccount{Identity: *identity, Profile: *profile}, nil
}

// ListAccounts returns every identity with its profile, for the admin console
func (s *Service) ListAccounts(ctx context.Context) ([]*entity.UserAccount, error) {
	return s.identityRepo.ListAccounts(ctx)
}

// UpdateBankDetails overwrites the user's payout bank fields
func (s *Service) UpdateBankDetails(ctx context.Context, userID string, details persistence.BankDetails) error {
	if userID == "" {
		return errs.ErrInvalidUserID
	}

	if err := s.profileRepo.UpdateBankDetails(ctx, userID, details); err != nil {
		return err
	}

	s.logger.Info("Bank details updated", map[string]any{
		"user_id":   userID,
		"bank_name": details.BankName,
	})
	return nil
}

// AdminUpdate applies a partial administrative override to a profile.
// A supplied balance replaces the stored value outright, bypassing the
// transaction workflow; the override is logged as a distinct admin action
// since it cannot be reconstructed from transaction history.
func (s *Service) AdminUpdate(ctx context.Context, userID string, update persistence.ProfileUpdate) (*entity.Profile, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	if update.WinRate != nil && (*update.WinRate < 0 || *update.WinRate > 100) {
		return nil, errs.ErrInvalidWinRate
	}
	if update.BalanceInCents != nil && *update.BalanceInCents < 0 {
		return nil, errs.ErrNegativeAmount
	}

	profile, err := s.profileRepo.ApplyAdminUpdate(ctx, userID, update)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{
		"user_id": userID,
	}
	if update.BalanceInCents != nil {
		fields["balance_override"] = entity.AmountInCentsToString(*update.BalanceInCents)
	}
	if update.IsFrozen != nil {
		fields["is_frozen"] = *update.IsFrozen
	}
	if update.IsAdmin != nil {
		fields["is_admin"] = *update.IsAdmin
	}
	if update.WinRate != nil {
		fields["win_rate"] = *update.WinRate
	}
	s.logger.Warn("Admin profile override applied", fields)

	return profile, nil
}

// IsEligibleToPlay checks the game access gate: the profile must exist,
// not be frozen, and hold at least the minimum play balance. A session with
// no profile behind it counts as unauthenticated, not as a missing resource.
func (s *Service) IsEligibleToPlay(ctx context.Context, userID string) error {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return errs.ErrUnauthenticated
		}
		return err
	}
	return profile.CanPlay(s.params.MinPlayBalanceInCents)
}
