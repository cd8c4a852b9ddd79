package auth

import (
	"context"
	"strings"
	"time"

	"hospital-service/internal/app/clients/mockdata"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/models"
	"hospital-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authMockClient struct {
	LoginDelay time.Duration
	Log        *zap.Logger
}

func NewAuthMockClient(loginDelay time.Duration, logger *zap.Logger) contracts.AuthClient {
	return &authMockClient{
		LoginDelay: loginDelay,
		Log:        logger,
	}
}

// Login matches on email alone. The canned accounts carry no password,
// so any non-empty password is accepted for a known address.
func (c *authMockClient) Login(ctx context.Context, email, password string) (*models.User, error) {
	if err := utils.WaitWithContext(ctx, c.LoginDelay); err != nil {
		return nil, err
	}

	for _, user := range mockdata.Users() {
		if strings.EqualFold(user.Email, email) {
			c.Log.Debug("authMockClient.Login succeeded",
				zap.String(constvars.LoggingUserEmailKey, user.Email),
				zap.String(constvars.LoggingRoleKey, string(user.Role)),
			)
			found := user
			return &found, nil
		}
	}

	c.Log.Debug("authMockClient.Login rejected",
		zap.String(constvars.LoggingUserEmailKey, email),
	)
	return nil, exceptions.ErrInvalidCredentials(nil)
}

func (c *authMockClient) Register(ctx context.Context, request *requests.RegisterUserRequest) error {
	if err := utils.WaitWithContext(ctx, c.LoginDelay); err != nil {
		return err
	}

	for _, user := range mockdata.Users() {
		if strings.EqualFold(user.Email, request.Email) {
			return exceptions.ErrEmailAlreadyExist(nil)
		}
	}

	c.Log.Debug("authMockClient.Register succeeded",
		zap.String(constvars.LoggingUserEmailKey, request.Email),
	)
	return nil
}

func (c *authMockClient) Logout(ctx context.Context) error {
	c.Log.Debug("authMockClient.Logout succeeded")
	return nil
}
