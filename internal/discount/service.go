package discount

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tourgo/internal/logger"

	"github.com/redis/go-redis/v9"
)

// cacheTTL keeps the active-discount list fresh enough for booking
// price previews without hitting Postgres on every hotel page view.
const cacheTTL = 5 * time.Minute

type Service interface {
	CreateDiscount(ctx context.Context, hotelID int, req CreateDiscountRequest) (*Discount, error)
	GetDiscountByID(ctx context.Context, id int) (*Discount, error)
	ListActiveByHotel(ctx context.Context, hotelID int) ([]Discount, error)
	ListByHotel(ctx context.Context, hotelID int) ([]Discount, error)
	UpdateDiscount(ctx context.Context, id int, req UpdateDiscountRequest) (*Discount, error)
	DeleteDiscount(ctx context.Context, id int) error
}

type service struct {
	repo  Repository
	redis *redis.Client
}

func NewService(repo Repository, redisClient *redis.Client) Service {
	return &service{repo: repo, redis: redisClient}
}

func activeCacheKey(hotelID int) string {
	return fmt.Sprintf("discounts:hotel:%d", hotelID)
}

func (s *service) ListActiveByHotel(ctx context.Context, hotelID int) ([]Discount, error) {
	key := activeCacheKey(hotelID)

	if s.redis != nil {
		cached, err := s.redis.Get(ctx, key).Result()
		if err == nil {
			var discounts []Discount
			if err := json.Unmarshal([]byte(cached), &discounts); err == nil {
				return discounts, nil
			}
			// Corrupt cache entry, fall through to the database.
			s.redis.Del(ctx, key)
		} else if err != redis.Nil {
			logger.Error("discount cache read failed", "key", key, "error", err)
		}
	}

	discounts, err := s.repo.ListActiveByHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(discounts); err == nil {
			if err := s.redis.Set(ctx, key, data, cacheTTL).Err(); err != nil {
				logger.Error("discount cache write failed", "key", key, "error", err)
			}
		}
	}

	return discounts, nil
}

func (s *service) invalidate(ctx context.Context, hotelID int) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, activeCacheKey(hotelID)).Err(); err != nil {
		logger.Error("discount cache invalidation failed", "hotel_id", hotelID, "error", err)
	}
}

func (s *service) CreateDiscount(ctx context.Context, hotelID int, req CreateDiscountRequest) (*Discount, error) {
	d, err := s.repo.CreateDiscount(ctx, hotelID, req)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, hotelID)
	return d, nil
}

func (s *service) GetDiscountByID(ctx context.Context, id int) (*Discount, error) {
	return s.repo.GetDiscountByID(ctx, id)
}

func (s *service) ListByHotel(ctx context.Context, hotelID int) ([]Discount, error) {
	return s.repo.ListByHotel(ctx, hotelID)
}

func (s *service) UpdateDiscount(ctx context.Context, id int, req UpdateDiscountRequest) (*Discount, error) {
	d, err := s.repo.UpdateDiscount(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, d.HotelID)
	return d, nil
}

func (s *service) DeleteDiscount(ctx context.Context, id int) error {
	d, err := s.repo.GetDiscountByID(ctx, id)
	if err != nil {
		return ErrDiscountNotFound
	}

	if err := s.repo.DeleteDiscount(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, d.HotelID)
	return nil
}
