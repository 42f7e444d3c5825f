package discount

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) CreateDiscount(ctx context.Context, hotelID int, req CreateDiscountRequest) (*Discount, error) {
	args := m.Called(ctx, hotelID, req)
	if d := args.Get(0); d != nil {
		return d.(*Discount), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) GetDiscountByID(ctx context.Context, id int) (*Discount, error) {
	args := m.Called(ctx, id)
	if d := args.Get(0); d != nil {
		return d.(*Discount), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) ListActiveByHotel(ctx context.Context, hotelID int) ([]Discount, error) {
	args := m.Called(ctx, hotelID)
	if d := args.Get(0); d != nil {
		return d.([]Discount), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) ListByHotel(ctx context.Context, hotelID int) ([]Discount, error) {
	args := m.Called(ctx, hotelID)
	if d := args.Get(0); d != nil {
		return d.([]Discount), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) UpdateDiscount(ctx context.Context, id int, req UpdateDiscountRequest) (*Discount, error) {
	args := m.Called(ctx, id, req)
	if d := args.Get(0); d != nil {
		return d.(*Discount), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) DeleteDiscount(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_ListActiveByHotel_CacheMiss(t *testing.T) {
	repo := new(mockRepository)
	redisClient, redisMock := redismock.NewClientMock()
	svc := NewService(repo, redisClient)

	discounts := []Discount{
		{ID: 1, HotelID: 3, Name: "Weekend Saver", Type: TypePercentage, Value: 20, Target: TargetRoom, CoinsRequired: 100, IsActive: true},
	}
	data, err := json.Marshal(discounts)
	require.NoError(t, err)

	redisMock.ExpectGet("discounts:hotel:3").RedisNil()
	repo.On("ListActiveByHotel", mock.Anything, 3).Return(discounts, nil)
	redisMock.ExpectSet("discounts:hotel:3", data, 5*time.Minute).SetVal("OK")

	got, err := svc.ListActiveByHotel(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, discounts, got)

	repo.AssertExpectations(t)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestService_ListActiveByHotel_CacheHit(t *testing.T) {
	repo := new(mockRepository)
	redisClient, redisMock := redismock.NewClientMock()
	svc := NewService(repo, redisClient)

	discounts := []Discount{
		{ID: 2, HotelID: 5, Name: "Free Dessert", Type: TypeFreeItem, Target: TargetFood, CoinsRequired: 50, IsActive: true},
	}
	data, err := json.Marshal(discounts)
	require.NoError(t, err)

	redisMock.ExpectGet("discounts:hotel:5").SetVal(string(data))

	got, err := svc.ListActiveByHotel(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, discounts, got)

	// Repository must not be touched on a cache hit.
	repo.AssertNotCalled(t, "ListActiveByHotel", mock.Anything, mock.Anything)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestService_CreateDiscount_InvalidatesCache(t *testing.T) {
	repo := new(mockRepository)
	redisClient, redisMock := redismock.NewClientMock()
	svc := NewService(repo, redisClient)

	req := CreateDiscountRequest{Name: "Early Bird", Type: TypeFlat, Value: 300, Target: TargetRoom, CoinsRequired: 150}
	created := &Discount{ID: 9, HotelID: 3, Name: "Early Bird", Type: TypeFlat, Value: 300, Target: TargetRoom, CoinsRequired: 150, IsActive: true}

	repo.On("CreateDiscount", mock.Anything, 3, req).Return(created, nil)
	redisMock.ExpectDel("discounts:hotel:3").SetVal(1)

	got, err := svc.CreateDiscount(context.Background(), 3, req)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	repo.AssertExpectations(t)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestService_DeleteDiscount_NotFound(t *testing.T) {
	repo := new(mockRepository)
	redisClient, _ := redismock.NewClientMock()
	svc := NewService(repo, redisClient)

	repo.On("GetDiscountByID", mock.Anything, 99).Return(nil, ErrDiscountNotFound)

	err := svc.DeleteDiscount(context.Background(), 99)
	assert.ErrorIs(t, err, ErrDiscountNotFound)
	repo.AssertExpectations(t)
}
