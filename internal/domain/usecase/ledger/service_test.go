package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ramadhanf/slot-portal/internal/domain/entity"
	errs "github.com/ramadhanf/slot-portal/internal/domain/error"
	"github.com/ramadhanf/slot-portal/internal/domain/port/persistence"
	coremocks "github.com/ramadhanf/slot-portal/mocks/port/core"
	persistencemocks "github.com/ramadhanf/slot-portal/mocks/port/persistence"
)

var testParams = Params{
	SignupBonusInCents:    10000000, // 100000.00
	MinPlayBalanceInCents: 50000,    // 500.00
}

type ledgerMocks struct {
	profileRepo  *persistencemocks.MockProfileRepository
	identityRepo *persistencemocks.MockIdentityRepository
	timeProvider *coremocks.MockTimeProvider
	logger       *coremocks.MockLogger
}

func newLedgerService() (*Service, *ledgerMocks) {
	m := &ledgerMocks{
		profileRepo:  new(persistencemocks.MockProfileRepository),
		identityRepo: new(persistencemocks.MockIdentityRepository),
		timeProvider: new(coremocks.MockTimeProvider),
		logger:       new(coremocks.MockLogger),
	}
	m.timeProvider.On("Now").Return(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)).Maybe()

	svc := NewService(m.profileRepo, m.identityRepo, m.timeProvider, m.logger, testParams)
	return svc, m
}

func existingProfile(t *testing.T, userID string, balanceInCents int64) *entity.Profile {
	t.Helper()
	tp := new(coremocks.MockTimeProvider)
	tp.On("Now").Return(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	profile, err := entity.NewProfile(userID, balanceInCents, tp)
	require.NoError(t, err)
	return profile
}

func TestEnsureProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns existing profile without writing", func(t *testing.T) {
		svc, m := newLedgerService()
		profile := existingProfile(t, "user-1", 123456)

		m.profileRepo.On("GetByUserID", ctx, "user-1").Return(profile, nil)

		got, err := svc.EnsureProfile(ctx, "user-1")

		require.NoError(t, err)
		assert.Equal(t, profile, got)
		m.profileRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Creates missing profile with signup bonus", func(t *testing.T) {
		svc, m := newLedgerService()

		m.profileRepo.On("GetByUserID", ctx, "user-2").Return(nil, errs.ErrUserNotFound)
		m.profileRepo.On("Create", ctx, mock.MatchedBy(func(p *entity.Profile) bool {
			return p.UserID == "user-2" && p.Balance() == testParams.SignupBonusInCents
		})).Return(nil)
		m.profileRepo.On("Count", ctx).Return(int64(5), nil)
		m.logger.On("Info", "Profile created with signup bonus", mock.Anything).Return()

		got, err := svc.EnsureProfile(ctx, "user-2")

		require.NoError(t, err)
		assert.Equal(t, "100000.00", got.FormattedBalance())
		assert.False(t, got.IsAdmin)
		m.profileRepo.AssertExpectations(t)
	})

	t.Run("First profile is promoted to admin", func(t *testing.T) {
		svc, m := newLedgerService()

		m.profileRepo.On("GetByUserID", ctx, "founder").Return(nil, errs.ErrUserNotFound)
		m.profileRepo.On("Create", ctx, mock.Anything).Return(nil)
		m.profileRepo.On("Count", ctx).Return(int64(1), nil)
		m.profileRepo.On("SetAdmin", ctx, "founder", true).Return(nil)
		m.logger.On("Info", "Profile created with signup bonus", mock.Anything).Return()
		m.logger.On("Info", "First registered user promoted to admin", mock.Anything).Return()

		got, err := svc.EnsureProfile(ctx, "founder")

		require.NoError(t, err)
		assert.True(t, got.IsAdmin)
		m.profileRepo.AssertExpectations(t)
	})

	t.Run("Concurrent creation falls back to the winner's row", func(t *testing.T) {
		svc, m := newLedgerService()
		winner := existingProfile(t, "user-3", testParams.SignupBonusInCents)

		m.profileRepo.On("GetByUserID", ctx, "user-3").Return(nil, errs.ErrUserNotFound).Once()
		m.profileRepo.On("Create", ctx, mock.Anything).Return(errs.ErrDuplicateProfile)
		m.profileRepo.On("GetByUserID", ctx, "user-3").Return(winner, nil).Once()

		got, err := svc.EnsureProfile(ctx, "user-3")

		require.NoError(t, err)
		assert.Equal(t, winner, got)
	})

	t.Run("Empty user ID", func(t *testing.T) {
		svc, _ := newLedgerService()

		_, err := svc.EnsureProfile(ctx, "")
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}

func TestGetAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("Joins identity with profile", func(t *testing.T) {
		svc, m := newLedgerService()
		identity := &entity.Identity{ID: "user-1", Email: "player@example.com"}
		profile := existingProfile(t, "user-1", 123456)

		m.identityRepo.On("GetByID", ctx, "user-1").Return(identity, nil)
		m.profileRepo.On("GetByUserID", ctx, "user-1").Return(profile, nil)

		account, err := svc.GetAccount(ctx, "user-1")

		require.NoError(t, err)
		assert.Equal(t, "player@example.com", account.Identity.Email)
		assert.Equal(t, int64(123456), account.Profile.Balance())
	})

	t.Run("Unknown identity", func(t *testing.T) {
		svc, m := newLedgerService()

		m.identityRepo.On("GetByID", ctx, "ghost").Return(nil, errs.ErrUserNotFound)

		_, err := svc.GetAccount(ctx, "ghost")
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestAdminUpdate(t *testing.T) {
	ctx := context.Background()

	boolPtr := func(b bool) *bool { return &b }
	intPtr := func(i int) *int { return &i }
	int64Ptr := func(i int64) *int64 { return &i }

	t.Run("Applies freeze and win rate", func(t *testing.T) {
		svc, m := newLedgerService()
		update := persistence.ProfileUpdate{IsFrozen: boolPtr(true), WinRate: intPtr(30)}
		updated := existingProfile(t, "user-1", 123456)
		updated.IsFrozen = true
		updated.WinRate = 30

		m.profileRepo.On("ApplyAdminUpdate", ctx, "user-1", update).Return(updated, nil)
		m.logger.On("Warn", "Admin profile override applied", mock.Anything).Return()

		got, err := svc.AdminUpdate(ctx, "user-1", update)

		require.NoError(t, err)
		assert.True(t, got.IsFrozen)
		assert.Equal(t, 30, got.WinRate)
		m.profileRepo.AssertExpectations(t)
	})

	t.Run("Balance override replaces the stored value", func(t *testing.T) {
		svc, m := newLedgerService()
		update := persistence.ProfileUpdate{BalanceInCents: int64Ptr(999900)}
		updated := existingProfile(t, "user-1", 999900)

		m.profileRepo.On("ApplyAdminUpdate", ctx, "user-1", update).Return(updated, nil)
		m.logger.On("Warn", "Admin profile override applied", mock.Anything).Return()

		got, err := svc.AdminUpdate(ctx, "user-1", update)

		require.NoError(t, err)
		assert.Equal(t, "9999.00", got.FormattedBalance())
	})

	t.Run("Win rate out of range", func(t *testing.T) {
		svc, m := newLedgerService()

		_, err := svc.AdminUpdate(ctx, "user-1", persistence.ProfileUpdate{WinRate: intPtr(101)})
		assert.ErrorIs(t, err, errs.ErrInvalidWinRate)
		m.profileRepo.AssertNotCalled(t, "ApplyAdminUpdate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Negative balance override", func(t *testing.T) {
		svc, _ := newLedgerService()

		_, err := svc.AdminUpdate(ctx, "user-1", persistence.ProfileUpdate{BalanceInCents: int64Ptr(-1)})
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})

	t.Run("Unknown user", func(t *testing.T) {
		svc, m := newLedgerService()
		update := persistence.ProfileUpdate{IsFrozen: boolPtr(true)}

		m.profileRepo.On("ApplyAdminUpdate", ctx, "ghost", update).Return(nil, errs.ErrUserNotFound)

		_, err := svc.AdminUpdate(ctx, "ghost", update)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestUpdateBankDetails(t *testing.T) {
	ctx := context.Background()
	details := persistence.BankDetails{
		BankName:          "BCA",
		BankAccountNumber: "1234567890",
		BankAccountName:   "Player One",
	}

	t.Run("Persists and logs", func(t *testing.T) {
		svc, m := newLedgerService()

		m.profileRepo.On("UpdateBankDetails", ctx, "user-1", details).Return(nil)
		m.logger.On("Info", "Bank details updated", mock.Anything).Return()

		assert.NoError(t, svc.UpdateBankDetails(ctx, "user-1", details))
		m.profileRepo.AssertExpectations(t)
	})

	t.Run("Empty user ID", func(t *testing.T) {
		svc, _ := newLedgerService()
		assert.ErrorIs(t, svc.UpdateBankDetails(ctx, "", details), errs.ErrInvalidUserID)
	})
}

func TestIsEligibleToPlay(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		balance  int64
		frozen   bool
		expected error
	}{
		{"Sufficient balance", 10000000, false, nil},
		{"Exactly at minimum", 50000, false, nil},
		{"Below minimum", 49999, false, errs.ErrBalanceTooLow},
		{"Frozen account", 10000000, true, errs.ErrAccountFrozen},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newLedgerService()
			profile := existingProfile(t, "user-1", tc.balance)
			profile.IsFrozen = tc.frozen

			m.profileRepo.On("GetByUserID", ctx, "user-1").Return(profile, nil)

			err := svc.IsEligibleToPlay(ctx, "user-1")
			if tc.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.expected)
			}
		})
	}

	t.Run("Session without profile is unauthenticated", func(t *testing.T) {
		svc, m := newLedgerService()
		m.profileRepo.On("GetByUserID", ctx, "ghost").Return(nil, errs.ErrUserNotFound)

		err := svc.IsEligibleToPlay(ctx, "ghost")
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
		assert.NotErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Database failure passes through", func(t *testing.T) {
		svc, m := newLedgerService()
		m.profileRepo.On("GetByUserID", ctx, "user-1").Return(nil, errs.ErrDatabaseConnection)

		assert.ErrorIs(t, svc.IsEligibleToPlay(ctx, "user-1"), errs.ErrDatabaseConnection)
	})
}
