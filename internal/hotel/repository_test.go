package hotel

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupHotelMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

func hotelRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "owner_id", "name", "description", "location", "category", "latitude", "longitude",
		"images", "base_coin_deduction", "is_verified", "is_active", "created_at", "updated_at",
	})
}

func TestGetHotelByID(t *testing.T) {
	repo, mock, close := setupHotelMock(t)
	defer close()

	now := time.Now()
	mock.ExpectQuery("SELECT .+ FROM hotels WHERE id = \\$1").
		WithArgs(1).
		WillReturnRows(hotelRows().AddRow(1, 10, "Sea View", nil, "Goa", "resort", nil, nil, "{}", 50, true, true, now, now))

	h, err := repo.GetHotelByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "Sea View", h.Name)
	require.Equal(t, int64(50), h.BaseCoinDeduction)
	require.True(t, h.IsVerified)
}

func TestListActiveHotels_WithCategory(t *testing.T) {
	repo, mock, close := setupHotelMock(t)
	defer close()

	now := time.Now()
	mock.ExpectQuery("SELECT .+ FROM hotels\\s+WHERE is_active AND category = \\$1").
		WithArgs("budget").
		WillReturnRows(hotelRows().
			AddRow(1, 10, "Inn", nil, "Pune", "budget", nil, nil, "{}", 0, false, true, now, now).
			AddRow(2, 11, "Lodge", nil, "Pune", "budget", nil, nil, "{}", 10, true, true, now, now))

	hotels, err := repo.ListActiveHotels(context.Background(), "budget")
	require.NoError(t, err)
	require.Len(t, hotels, 2)
}

func TestSetBaseCoinDeduction(t *testing.T) {
	repo, mock, close := setupHotelMock(t)
	defer close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE hotels SET base_coin_deduction = $1, updated_at = NOW() WHERE id = $2")).
		WithArgs(int64(75), 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetBaseCoinDeduction(context.Background(), 1, 75)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
