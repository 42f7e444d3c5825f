package booking

import "context"

type Repository interface {
	CreateBooking(ctx context.Context, b *Booking) (*Booking, error)
	GetBookingByID(ctx context.Context, id int) (*Booking, error)
	ListByUser(ctx context.Context, userID int) ([]BookingWithDetails, error)
	ListByHotel(ctx context.Context, hotelID int) ([]BookingWithDetails, error)
	GetWithDetails(ctx context.Context, id int) (*BookingWithDetails, error)
	UpdateStatus(ctx context.Context, id int, status Status) error
	DeleteBooking(ctx context.Context, id int) error
}
