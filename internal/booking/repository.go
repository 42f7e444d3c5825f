package booking

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrBookingNotFound = errors.New("booking not found")

const bookingColumns = `id, user_id, hotel_id, room_id, check_in, check_out, total_amount,
	coins_used, discount_id, discount_applied, status, special_requests, created_at, updated_at`

const detailColumns = `b.id, b.user_id, b.hotel_id, b.room_id, b.check_in, b.check_out,
	b.total_amount, b.coins_used, b.discount_id, b.discount_applied, b.status,
	b.special_requests, b.created_at, b.updated_at,
	h.name AS hotel_name, r.name AS room_name, u.name AS user_name, u.email AS user_email`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateBooking(ctx context.Context, b *Booking) (*Booking, error) {
	var created Booking
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO bookings (user_id, hotel_id, room_id, check_in, check_out,
			total_amount, coins_used, discount_id, discount_applied, special_requests)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+bookingColumns+`
	`, b.UserID, b.HotelID, b.RoomID, b.CheckIn, b.CheckOut,
		b.TotalAmount, b.CoinsUsed, b.DiscountID, b.DiscountApplied, b.SpecialRequests,
	).StructScan(&created)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetBookingByID(ctx context.Context, id int) (*Booking, error) {
	var b Booking
	err := r.db.GetContext(ctx, &b, `
		SELECT `+bookingColumns+` FROM bookings WHERE id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	return &b, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int) ([]BookingWithDetails, error) {
	bookings := []BookingWithDetails{}
	err := r.db.SelectContext(ctx, &bookings, `
		SELECT `+detailColumns+`
		FROM bookings b
		JOIN hotels h ON h.id = b.hotel_id
		JOIN rooms r ON r.id = b.room_id
		JOIN users u ON u.id = b.user_id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
	`, userID)
	return bookings, err
}

func (r *repository) ListByHotel(ctx context.Context, hotelID int) ([]BookingWithDetails, error) {
	bookings := []BookingWithDetails{}
	err := r.db.SelectContext(ctx, &bookings, `
		SELECT `+detailColumns+`
		FROM bookings b
		JOIN hotels h ON h.id = b.hotel_id
		JOIN rooms r ON r.id = b.room_id
		JOIN users u ON u.id = b.user_id
		WHERE b.hotel_id = $1
		ORDER BY b.check_in DESC, b.created_at DESC
	`, hotelID)
	return bookings, err
}

func (r *repository) GetWithDetails(ctx context.Context, id int) (*BookingWithDetails, error) {
	var b BookingWithDetails
	err := r.db.GetContext(ctx, &b, `
		SELECT `+detailColumns+`
		FROM bookings b
		JOIN hotels h ON h.id = b.hotel_id
		JOIN rooms r ON r.id = b.room_id
		JOIN users u ON u.id = b.user_id
		WHERE b.id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	return &b, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id int, status Status) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2
	`, status, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func (r *repository) DeleteBooking(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	return err
}
