package room

import "context"

type Repository interface {
	CreateRoom(ctx context.Context, hotelID int, req CreateRoomRequest) (*Room, error)
	GetRoomByID(ctx context.Context, id int) (*Room, error)
	ListAvailableByHotel(ctx context.Context, hotelID int) ([]Room, error)
	ListByHotel(ctx context.Context, hotelID int) ([]Room, error)
	UpdateRoom(ctx context.Context, id int, req UpdateRoomRequest) (*Room, error)
	DeleteRoom(ctx context.Context, id int) error
}
