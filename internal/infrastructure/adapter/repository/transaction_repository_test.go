package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ramadhanf/slot-portal/internal/domain/entity"
	errs "github.com/ramadhanf/slot-portal/internal/domain/error"
	applogger "github.com/ramadhanf/slot-portal/internal/infrastructure/adapter/logger"
	coremocks "github.com/ramadhanf/slot-portal/mocks/port/core"
)

var repoNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// newMockedRepository runs the repository against a sqlmock-backed GORM
// session, so the balance arithmetic executes through the real SQL paths.
func newMockedRepository(t *testing.T) (*TransactionRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err)

	timeProvider := new(coremocks.MockTimeProvider)
	timeProvider.On("Now").Return(repoNow).Maybe()

	return NewTransactionRepository(db, timeProvider, applogger.NewNoopLogger()), mock
}

func profileRows(balance int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "balance"}).
		AddRow(1, "user-1", balance)
}

func transactionRows(id uint64, txType string, amount int64, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "type", "amount_in_cents", "status", "destination_account", "created_at"}).
		AddRow(id, "user-1", txType, amount, status, "BCA 1234567890", repoNow)
}

func pendingWithdrawal(t *testing.T, repo *TransactionRepository, amountInCents int64) *entity.Transaction {
	t.Helper()
	txn, err := entity.NewWithdrawal("user-1", amountInCents, "BCA 1234567890", repo.timeProvider)
	require.NoError(t, err)
	return txn
}

func TestCreateWithdrawal(t *testing.T) {
	ctx := context.Background()

	t.Run("Debits exactly the requested amount", func(t *testing.T) {
		repo, mock := newMockedRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "profiles" WHERE user_id = \$1`).
			WillReturnRows(profileRows(10000000))
		mock.ExpectExec(`UPDATE "profiles" SET "balance"=\$1,"updated_at"=\$2 WHERE user_id = \$3`).
			WithArgs(int64(7000000), sqlmock.AnyArg(), "user-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`INSERT INTO "transactions"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		mock.ExpectCommit()

		txn := pendingWithdrawal(t, repo, 3000000)
		require.NoError(t, repo.CreateWithdrawal(ctx, txn))

		assert.Equal(t, uint64(7), txn.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Refuses when balance does not cover the amount", func(t *testing.T) {
		repo, mock := newMockedRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "profiles" WHERE user_id = \$1`).
			WillReturnRows(profileRows(50000))
		mock.ExpectRollback()

		txn := pendingWithdrawal(t, repo, 3000000)
		err := repo.CreateWithdrawal(ctx, txn)

		require.True(t, errs.IsInsufficientBalanceError(err))
		var balErr *errs.InsufficientBalanceError
		require.ErrorAs(t, err, &balErr)
		assert.Equal(t, "30000.00", balErr.Amount)
		assert.Equal(t, "500.00", balErr.CurrBalance)

		// No UPDATE or INSERT was expected, so the mock proves the
		// balance stayed untouched.
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown profile", func(t *testing.T) {
		repo, mock := newMockedRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "profiles" WHERE user_id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "balance"}))
		mock.ExpectRollback()

		txn := pendingWithdrawal(t, repo, 3000000)
		assert.ErrorIs(t, repo.CreateWithdrawal(ctx, txn), errs.ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

// TestWithdrawRejectRefundCycle walks a balance of 100000.00 through a
// 30000.00 withdrawal (down to 70000.00) and its rejection (back to
// 100000.00), asserting the refund is credited exactly once.
func TestWithdrawRejectRefundCycle(t *testing.T) {
	ctx := context.Background()
	repo, mock := newMockedRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "profiles" WHERE user_id = \$1`).
		WillReturnRows(profileRows(10000000))
	mock.ExpectExec(`UPDATE "profiles" SET "balance"=\$1,"updated_at"=\$2 WHERE user_id = \$3`).
		WithArgs(int64(7000000), sqlmock.AnyArg(), "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "transactions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE "transactions"\."id" = \$1`).
		WillReturnRows(transactionRows(7, "withdraw", 3000000, "pending"))
	mock.ExpectQuery(`SELECT \* FROM "profiles" WHERE user_id = \$1`).
		WillReturnRows(profileRows(7000000))
	mock.ExpectExec(`UPDATE "profiles" SET "balance"=\$1,"updated_at"=\$2 WHERE user_id = \$3`).
		WithArgs(int64(10000000), sqlmock.AnyArg(), "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "transactions" SET "admin_note"=\$1,"processed_at"=\$2,"status"=\$3 WHERE id = \$4`).
		WithArgs("transfer proof unreadable", sqlmock.AnyArg(), "rejected", uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	txn := pendingWithdrawal(t, repo, 3000000)
	require.NoError(t, repo.CreateWithdrawal(ctx, txn))

	settled, err := repo.Settle(ctx, txn.ID, entity.StatusRejected, "transfer proof unreadable")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusRejected, settled.Status)
	require.NotNil(t, settled.ProcessedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettle(t *testing.T) {
	ctx := context.Background()

	t.Run("Approved deposit credits the amount", func(t *testing.T) {
		repo, mock := newMockedRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE "transactions"\."id" = \$1`).
			WillReturnRows(transactionRows(4, "deposit", 3000000, "pending"))
		mock.ExpectQuery(`SELECT \* FROM "profiles" WHERE user_id = \$1`).
			WillReturnRows(profileRows(7000000))
		mock.ExpectExec(`UPDATE "profiles" SET "balance"=\$1,"updated_at"=\$2 WHERE user_id = \$3`).
			WithArgs(int64(10000000), sqlmock.AnyArg(), "user-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE "transactions" SET "admin_note"=\$1,"processed_at"=\$2,"status"=\$3 WHERE id = \$4`).
			WithArgs("verified", sqlmock.AnyArg(), "approved", uint64(4)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		settled, err := repo.Settle(ctx, 4, entity.StatusApproved, "verified")
		require.NoError(t, err)
		assert.Equal(t, entity.StatusApproved, settled.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Approved withdrawal touches no balance", func(t *testing.T) {
		repo, mock := newMockedRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE "transactions"\."id" = \$1`).
			WillReturnRows(transactionRows(7, "withdraw", 3000000, "pending"))
		mock.ExpectExec(`UPDATE "transactions" SET "admin_note"=\$1,"processed_at"=\$2,"status"=\$3 WHERE id = \$4`).
			WithArgs("paid out", sqlmock.AnyArg(), "approved", uint64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		settled, err := repo.Settle(ctx, 7, entity.StatusApproved, "paid out")
		require.NoError(t, err)
		assert.Equal(t, entity.StatusApproved, settled.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Already processed", func(t *testing.T) {
		repo, mock := newMockedRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE "transactions"\."id" = \$1`).
			WillReturnRows(transactionRows(7, "withdraw", 3000000, "rejected"))
		mock.ExpectRollback()

		_, err := repo.Settle(ctx, 7, entity.StatusApproved, "")
		assert.ErrorIs(t, err, errs.ErrAlreadyProcessed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database failure surfaces as settlement error", func(t *testing.T) {
		repo, mock := newMockedRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE "transactions"\."id" = \$1`).
			WillReturnError(errors.New("could not serialize access due to concurrent update"))
		mock.ExpectRollback()

		_, err := repo.Settle(ctx, 7, entity.StatusApproved, "")

		var settleErr *errs.SettlementError
		require.ErrorAs(t, err, &settleErr)
		assert.Equal(t, "lock contention", settleErr.Reason)
		assert.Equal(t, uint64(7), settleErr.TransactionID)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}
