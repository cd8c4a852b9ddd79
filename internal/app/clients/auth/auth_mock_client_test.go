package auth

import (
	"context"
	"testing"

	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestAuthMockClient(t *testing.T) {
	client := NewAuthMockClient(0, zap.NewNop())
	ctx := context.Background()

	t.Run("Known Email Signs In With Any Password", func(t *testing.T) {
		user, err := client.Login(ctx, "admin@hospital.com", "anything-at-all")

		assert.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, user.Role)
	})

	t.Run("Email Match Is Case Insensitive", func(t *testing.T) {
		user, err := client.Login(ctx, "Lab.Tech@Hospital.com", "password123")

		assert.NoError(t, err)
		assert.Equal(t, models.RoleLabTechnician, user.Role)
	})

	t.Run("Unknown Email Is Rejected", func(t *testing.T) {
		user, err := client.Login(ctx, "nobody@hospital.com", "password123")

		assert.Nil(t, user)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, "Invalid credentials", customErr.ClientMessage)
	})

	t.Run("Register Rejects Duplicate Email", func(t *testing.T) {
		err := client.Register(ctx, &requests.RegisterUserRequest{
			Name:     "Second Admin",
			Email:    "admin@hospital.com",
			Password: "password123",
			Role:     models.RoleAdmin,
		})

		assert.Error(t, err)
	})

	t.Run("Register Accepts A New Email", func(t *testing.T) {
		err := client.Register(ctx, &requests.RegisterUserRequest{
			Name:     "Anita Desai",
			Email:    "anita.desai@email.com",
			Password: "password123",
			Role:     models.RolePatient,
		})

		assert.NoError(t, err)
	})
}
