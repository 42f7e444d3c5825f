package discount

import "context"

type Repository interface {
	CreateDiscount(ctx context.Context, hotelID int, req CreateDiscountRequest) (*Discount, error)
	GetDiscountByID(ctx context.Context, id int) (*Discount, error)
	ListActiveByHotel(ctx context.Context, hotelID int) ([]Discount, error)
	ListByHotel(ctx context.Context, hotelID int) ([]Discount, error)
	UpdateDiscount(ctx context.Context, id int, req UpdateDiscountRequest) (*Discount, error)
	DeleteDiscount(ctx context.Context, id int) error
}
