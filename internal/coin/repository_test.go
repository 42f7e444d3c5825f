package coin

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(sqlx.NewDb(db, "postgres")), mock
}

func TestDebitForBooking_Success(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT total_coins FROM profiles (.+) FOR UPDATE").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"total_coins"}).AddRow(int64(300)))
	mock.ExpectExec("INSERT INTO coin_transactions").
		WithArgs(7, int64(-50), TxBookingFee, "Base booking fee at Hilltop Resort", 12, int64(250)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO coin_transactions").
		WithArgs(7, int64(-100), TxRedemption, "Redeemed Weekend Saver at Hilltop Resort", 12, int64(150)).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectExec("UPDATE profiles SET total_coins").
		WithArgs(int64(150), 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.DebitForBooking(context.Background(), 7, 12, []DebitEntry{
		{Amount: 50, Type: TxBookingFee, Description: "Base booking fee at Hilltop Resort"},
		{Amount: 100, Type: TxRedemption, Description: "Redeemed Weekend Saver at Hilltop Resort"},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDebitForBooking_InsufficientCoins(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT total_coins FROM profiles (.+) FOR UPDATE").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"total_coins"}).AddRow(int64(100)))
	mock.ExpectRollback()

	err := repo.DebitForBooking(context.Background(), 7, 12, []DebitEntry{
		{Amount: 50, Type: TxBookingFee, Description: "Base booking fee"},
		{Amount: 100, Type: TxRedemption, Description: "Redeemed discount"},
	})
	assert.ErrorIs(t, err, ErrInsufficientCoins)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDebitForBooking_NoEntriesIsNoop(t *testing.T) {
	repo, mock := newMockRepo(t)

	err := repo.DebitForBooking(context.Background(), 7, 12, nil)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDebitForBooking_ZeroTotalIsNoop(t *testing.T) {
	repo, mock := newMockRepo(t)

	err := repo.DebitForBooking(context.Background(), 7, 12, []DebitEntry{
		{Amount: 0, Type: TxBookingFee, Description: "Free hotel"},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBalance_ProfileNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT total_coins FROM profiles").
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"total_coins"}))

	_, err := repo.GetBalance(context.Background(), 99)
	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
