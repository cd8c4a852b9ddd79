package users

import (
	"context"
	"testing"

	"hospital-service/internal/app/config"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/models"
	"hospital-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestUserUsecase(t *testing.T) {
	hash, err := utils.HashPassword("password123")
	assert.NoError(t, err)

	repository := NewUserInMemoryRepository([]UserAccount{
		{
			User: models.User{
				ID:    "1",
				Name:  "Admin User",
				Email: "admin@hospital.com",
				Role:  models.RoleAdmin,
			},
			PasswordHash: hash,
		},
	})
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 1},
	}
	usecase := NewUserUsecase(repository, internalConfig, zap.NewNop())
	ctx := context.Background()

	t.Run("Login Succeeds With Correct Password", func(t *testing.T) {
		response, err := usecase.Login(ctx, &requests.LoginRequest{
			Email:    "admin@hospital.com",
			Password: "password123",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Admin User", response.User.Name)
		assert.NotEmpty(t, response.Token)
	})

	t.Run("Login Matches Email Case Insensitively", func(t *testing.T) {
		response, err := usecase.Login(ctx, &requests.LoginRequest{
			Email:    "Admin@Hospital.com",
			Password: "password123",
		})

		assert.NoError(t, err)
		assert.Equal(t, "1", response.User.ID)
	})

	t.Run("Login Rejects Wrong Password", func(t *testing.T) {
		response, err := usecase.Login(ctx, &requests.LoginRequest{
			Email:    "admin@hospital.com",
			Password: "wrong-password",
		})

		assert.Nil(t, response)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})

	t.Run("Login Rejects Unknown Email", func(t *testing.T) {
		response, err := usecase.Login(ctx, &requests.LoginRequest{
			Email:    "nobody@hospital.com",
			Password: "password123",
		})

		assert.Nil(t, response)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})

	t.Run("Register Rejects Duplicate Email", func(t *testing.T) {
		created, err := usecase.Register(ctx, &requests.RegisterUserRequest{
			Name:     "Second Admin",
			Email:    "admin@hospital.com",
			Password: "password123",
			Role:     models.RoleAdmin,
		})

		assert.Nil(t, created)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.ErrClientEmailAlreadyExists, customErr.ClientMessage)
	})

	t.Run("Registered User Can Log In", func(t *testing.T) {
		created, err := usecase.Register(ctx, &requests.RegisterUserRequest{
			Name:     "Anita Desai",
			Email:    "anita.desai@email.com",
			Password: "password123",
			Role:     models.RolePatient,
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, models.RolePatient, created.Role)

		response, err := usecase.Login(ctx, &requests.LoginRequest{
			Email:    "anita.desai@email.com",
			Password: "password123",
		})
		assert.NoError(t, err)
		assert.Equal(t, created.ID, response.User.ID)
	})

	t.Run("Register Rejects Short Password", func(t *testing.T) {
		created, err := usecase.Register(ctx, &requests.RegisterUserRequest{
			Name:     "Short Password",
			Email:    "short@email.com",
			Password: "short",
			Role:     models.RolePatient,
		})

		assert.Nil(t, created)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}
