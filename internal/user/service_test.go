package user

import (
	"context"
	"errors"
	"testing"

	"tourgo/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, name, email, passwordHash, role string) (*User, error) {
	args := m.Called(ctx, name, email, passwordHash, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) GetProfile(ctx context.Context, userID int) (*Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Profile), args.Error(1)
}

func (m *MockRepository) UpdateProfile(ctx context.Context, userID int, req UpdateProfileRequest) (*Profile, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Profile), args.Error(1)
}

func TestService_Register(t *testing.T) {
	t.Run("Defaults to tourist role", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, "secret")

		mockRepo.On("EmailExists", mock.Anything, "a@example.com").Return(false, nil)
		mockRepo.On("Create", mock.Anything, "Alice", "a@example.com", mock.Anything, auth.RoleTourist).
			Return(&User{ID: 1, Name: "Alice", Email: "a@example.com", Role: auth.RoleTourist}, nil)

		user, access, refresh, err := svc.Register(context.Background(), RegisterRequest{
			Name:     "Alice",
			Email:    "a@example.com",
			Password: "password123",
		})

		assert.NoError(t, err)
		assert.Equal(t, auth.RoleTourist, user.Role)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Rejects duplicate email", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, "secret")

		mockRepo.On("EmailExists", mock.Anything, "a@example.com").Return(true, nil)

		_, _, _, err := svc.Register(context.Background(), RegisterRequest{
			Name:     "Alice",
			Email:    "a@example.com",
			Password: "password123",
		})

		assert.ErrorIs(t, err, ErrEmailExists)
	})

	t.Run("Hotel owner role is kept", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, "secret")

		mockRepo.On("EmailExists", mock.Anything, "o@example.com").Return(false, nil)
		mockRepo.On("Create", mock.Anything, "Owner", "o@example.com", mock.Anything, auth.RoleHotelOwner).
			Return(&User{ID: 2, Name: "Owner", Email: "o@example.com", Role: auth.RoleHotelOwner}, nil)

		user, _, _, err := svc.Register(context.Background(), RegisterRequest{
			Name:     "Owner",
			Email:    "o@example.com",
			Password: "password123",
			Role:     auth.RoleHotelOwner,
		})

		assert.NoError(t, err)
		assert.Equal(t, auth.RoleHotelOwner, user.Role)
	})
}

func TestService_Login(t *testing.T) {
	hash, _ := auth.HashPassword("correct-password")

	t.Run("Valid credentials", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, "secret")

		mockRepo.On("FindByEmail", mock.Anything, "a@example.com").
			Return(&User{ID: 1, Email: "a@example.com", PasswordHash: hash, Role: auth.RoleTourist}, nil)

		user, access, _, err := svc.Login(context.Background(), LoginRequest{
			Email:    "a@example.com",
			Password: "correct-password",
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, user.ID)
		assert.NotEmpty(t, access)
	})

	t.Run("Wrong password", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, "secret")

		mockRepo.On("FindByEmail", mock.Anything, "a@example.com").
			Return(&User{ID: 1, Email: "a@example.com", PasswordHash: hash}, nil)

		_, _, _, err := svc.Login(context.Background(), LoginRequest{
			Email:    "a@example.com",
			Password: "wrong",
		})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown email", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, "secret")

		mockRepo.On("FindByEmail", mock.Anything, "nobody@example.com").
			Return(nil, errors.New("sql: no rows in result set"))

		_, _, _, err := svc.Login(context.Background(), LoginRequest{
			Email:    "nobody@example.com",
			Password: "whatever",
		})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestService_RefreshToken(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo, "secret")

	refresh, err := auth.GenerateRefreshToken(3, "a@example.com", auth.RoleTourist, "secret")
	assert.NoError(t, err)

	mockRepo.On("FindByID", mock.Anything, 3).
		Return(&User{ID: 3, Email: "a@example.com", Role: auth.RoleTourist}, nil)

	access, user, err := svc.RefreshToken(context.Background(), refresh)
	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.Equal(t, 3, user.ID)
}
