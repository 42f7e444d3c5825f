package coin

import "context"

type Repository interface {
	GetBalance(ctx context.Context, userID int) (int64, error)
	DebitForBooking(ctx context.Context, userID, bookingID int, entries []DebitEntry) error
	ListTransactions(ctx context.Context, userID int, limit, offset int) ([]Transaction, error)
}
