package store

import (
	"context"
	"testing"

	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAuthClient struct {
	mock.Mock
}

func (m *MockAuthClient) Login(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthClient) Register(ctx context.Context, request *requests.RegisterUserRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockAuthClient) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestAuthSlice_Login(t *testing.T) {
	t.Run("Establishes Session On Success", func(t *testing.T) {
		mockClient := new(MockAuthClient)
		mockClient.On("Login", mock.Anything, "admin@hospital.com", "password123").
			Return(&models.User{ID: "1", Email: "admin@hospital.com", Role: models.RoleAdmin}, nil)

		slice := NewAuthSlice(mockClient, zap.NewNop())

		user, err := slice.Login(context.Background(), "admin@hospital.com", "password123")

		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.True(t, slice.Authenticated())
		assert.Equal(t, models.RoleAdmin, slice.User().Role)
		assert.False(t, slice.Loading())
	})

	t.Run("Invalid Credentials Keep Session Signed Out", func(t *testing.T) {
		mockClient := new(MockAuthClient)
		mockClient.On("Login", mock.Anything, "nobody@hospital.com", "wrong").
			Return(nil, exceptions.ErrInvalidCredentials(nil))

		slice := NewAuthSlice(mockClient, zap.NewNop())

		user, err := slice.Login(context.Background(), "nobody@hospital.com", "wrong")

		assert.Error(t, err)
		assert.Nil(t, user)
		assert.False(t, slice.Authenticated())
		assert.Nil(t, slice.User())
		assert.Equal(t, constvars.ErrClientInvalidCredentials, slice.Err())
	})
}

func TestAuthSlice_Logout(t *testing.T) {
	mockClient := new(MockAuthClient)
	mockClient.On("Login", mock.Anything, mock.Anything, mock.Anything).
		Return(&models.User{ID: "1", Role: models.RoleDoctor}, nil)
	mockClient.On("Logout", mock.Anything).Return(nil)

	slice := NewAuthSlice(mockClient, zap.NewNop())
	_, err := slice.Login(context.Background(), "sarah.johnson@hospital.com", "password123")
	assert.NoError(t, err)

	assert.NoError(t, slice.Logout(context.Background()))
	assert.False(t, slice.Authenticated())
	assert.Nil(t, slice.User())
}

func TestAuthSlice_Register(t *testing.T) {
	t.Run("Duplicate Email Surfaces Client Message", func(t *testing.T) {
		mockClient := new(MockAuthClient)
		mockClient.On("Register", mock.Anything, mock.AnythingOfType("*requests.RegisterUserRequest")).
			Return(exceptions.ErrEmailAlreadyExist(nil))

		slice := NewAuthSlice(mockClient, zap.NewNop())

		err := slice.Register(context.Background(), &requests.RegisterUserRequest{
			Name:     "John Doe",
			Email:    "john.doe@email.com",
			Password: "password123",
			Role:     models.RolePatient,
		})

		assert.Error(t, err)
		assert.Equal(t, constvars.ErrClientEmailAlreadyExists, slice.Err())
		assert.False(t, slice.Authenticated(), "register alone must not establish a session")
	})
}
