package hotel

import "context"

type Repository interface {
	CreateHotel(ctx context.Context, ownerID int, req CreateHotelRequest) (*Hotel, error)
	GetHotelByID(ctx context.Context, id int) (*Hotel, error)
	ListActiveHotels(ctx context.Context, category string) ([]Hotel, error)
	ListHotelsByOwner(ctx context.Context, ownerID int) ([]Hotel, error)
	UpdateHotel(ctx context.Context, id int, req UpdateHotelRequest) (*Hotel, error)
	SetBaseCoinDeduction(ctx context.Context, id int, coins int64) error
	SetVerified(ctx context.Context, id int, verified bool) error
}
