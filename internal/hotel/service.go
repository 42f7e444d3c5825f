package hotel

import (
	"context"
	"errors"
)

var (
	ErrHotelNotFound = errors.New("hotel not found")
	ErrNotHotelOwner = errors.New("not the hotel owner")
)

type Service interface {
	CreateHotel(ctx context.Context, ownerID int, req CreateHotelRequest) (*Hotel, error)
	GetHotelByID(ctx context.Context, id int) (*Hotel, error)
	ListActiveHotels(ctx context.Context, category string) ([]Hotel, error)
	ListOwnHotels(ctx context.Context, ownerID int) ([]Hotel, error)
	UpdateHotel(ctx context.Context, ownerID, hotelID int, req UpdateHotelRequest) (*Hotel, error)
	SetCoinSettings(ctx context.Context, ownerID, hotelID int, coins int64) error
	RequireOwnership(ctx context.Context, ownerID, hotelID int) (*Hotel, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateHotel(ctx context.Context, ownerID int, req CreateHotelRequest) (*Hotel, error) {
	return s.repo.CreateHotel(ctx, ownerID, req)
}

func (s *service) GetHotelByID(ctx context.Context, id int) (*Hotel, error) {
	h, err := s.repo.GetHotelByID(ctx, id)
	if err != nil {
		return nil, ErrHotelNotFound
	}
	return h, nil
}

func (s *service) ListActiveHotels(ctx context.Context, category string) ([]Hotel, error) {
	return s.repo.ListActiveHotels(ctx, category)
}

func (s *service) ListOwnHotels(ctx context.Context, ownerID int) ([]Hotel, error) {
	return s.repo.ListHotelsByOwner(ctx, ownerID)
}

// RequireOwnership loads the hotel and checks the caller owns it.
func (s *service) RequireOwnership(ctx context.Context, ownerID, hotelID int) (*Hotel, error) {
	h, err := s.repo.GetHotelByID(ctx, hotelID)
	if err != nil {
		return nil, ErrHotelNotFound
	}
	if h.OwnerID != ownerID {
		return nil, ErrNotHotelOwner
	}
	return h, nil
}

func (s *service) UpdateHotel(ctx context.Context, ownerID, hotelID int, req UpdateHotelRequest) (*Hotel, error) {
	if _, err := s.RequireOwnership(ctx, ownerID, hotelID); err != nil {
		return nil, err
	}
	return s.repo.UpdateHotel(ctx, hotelID, req)
}

func (s *service) SetCoinSettings(ctx context.Context, ownerID, hotelID int, coins int64) error {
	if _, err := s.RequireOwnership(ctx, ownerID, hotelID); err != nil {
		return err
	}
	return s.repo.SetBaseCoinDeduction(ctx, hotelID, coins)
}
