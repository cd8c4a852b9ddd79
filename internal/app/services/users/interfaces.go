package users

import (
	"context"

	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
	"hospital-service/internal/pkg/models"
)

// UserAccount is the stored form of a user: the public profile plus the
// bcrypt hash the login flow verifies against.
type UserAccount struct {
	models.User
	PasswordHash string
}

type UserUsecase interface {
	Login(ctx context.Context, request *requests.LoginRequest) (*responses.LoginResponse, error)
	Register(ctx context.Context, request *requests.RegisterUserRequest) (*models.User, error)
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*UserAccount, error)
	Insert(ctx context.Context, account *UserAccount) (*UserAccount, error)
}
