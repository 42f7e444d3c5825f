package hotel

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateHotel(ctx context.Context, ownerID int, req CreateHotelRequest) (*Hotel, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Hotel), args.Error(1)
}

func (m *MockRepository) GetHotelByID(ctx context.Context, id int) (*Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Hotel), args.Error(1)
}

func (m *MockRepository) ListActiveHotels(ctx context.Context, category string) ([]Hotel, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Hotel), args.Error(1)
}

func (m *MockRepository) ListHotelsByOwner(ctx context.Context, ownerID int) ([]Hotel, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Hotel), args.Error(1)
}

func (m *MockRepository) UpdateHotel(ctx context.Context, id int, req UpdateHotelRequest) (*Hotel, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Hotel), args.Error(1)
}

func (m *MockRepository) SetBaseCoinDeduction(ctx context.Context, id int, coins int64) error {
	args := m.Called(ctx, id, coins)
	return args.Error(0)
}

func (m *MockRepository) SetVerified(ctx context.Context, id int, verified bool) error {
	args := m.Called(ctx, id, verified)
	return args.Error(0)
}

func TestService_CreateHotel(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)

	req := CreateHotelRequest{
		Name:     "Sea View",
		Location: "Goa",
		Category: CategoryResort,
	}

	mockRepo.On("CreateHotel", mock.Anything, 10, req).Return(&Hotel{
		ID:       1,
		OwnerID:  10,
		Name:     "Sea View",
		Location: "Goa",
		Category: CategoryResort,
	}, nil)

	h, err := svc.CreateHotel(context.Background(), 10, req)

	assert.NoError(t, err)
	assert.Equal(t, "Sea View", h.Name)
	mockRepo.AssertExpectations(t)
}

func TestService_RequireOwnership(t *testing.T) {
	t.Run("Owner passes", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetHotelByID", mock.Anything, 1).Return(&Hotel{ID: 1, OwnerID: 10}, nil)

		h, err := svc.RequireOwnership(context.Background(), 10, 1)
		assert.NoError(t, err)
		assert.Equal(t, 1, h.ID)
	})

	t.Run("Non-owner rejected", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetHotelByID", mock.Anything, 1).Return(&Hotel{ID: 1, OwnerID: 10}, nil)

		_, err := svc.RequireOwnership(context.Background(), 99, 1)
		assert.ErrorIs(t, err, ErrNotHotelOwner)
	})

	t.Run("Missing hotel", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetHotelByID", mock.Anything, 404).Return(nil, errors.New("sql: no rows in result set"))

		_, err := svc.RequireOwnership(context.Background(), 10, 404)
		assert.ErrorIs(t, err, ErrHotelNotFound)
	})
}

func TestService_SetCoinSettings(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)

	mockRepo.On("GetHotelByID", mock.Anything, 1).Return(&Hotel{ID: 1, OwnerID: 10}, nil)
	mockRepo.On("SetBaseCoinDeduction", mock.Anything, 1, int64(50)).Return(nil)

	err := svc.SetCoinSettings(context.Background(), 10, 1, 50)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_UpdateHotel_ChecksOwnership(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)

	mockRepo.On("GetHotelByID", mock.Anything, 1).Return(&Hotel{ID: 1, OwnerID: 10}, nil)

	_, err := svc.UpdateHotel(context.Background(), 11, 1, UpdateHotelRequest{Name: "X", Location: "Y", Category: CategoryBudget})
	assert.ErrorIs(t, err, ErrNotHotelOwner)
	mockRepo.AssertNotCalled(t, "UpdateHotel")
}
