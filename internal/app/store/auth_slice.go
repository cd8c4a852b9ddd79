package store

import (
	"context"
	"sync"

	"hospital-service/internal/app/contracts"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/models"

	"go.uber.org/zap"
)

// AuthSlice holds the in-memory session: the signed-in user and the
// authenticated flag. Nothing is persisted; a process restart signs the
// user out.
type AuthSlice struct {
	mu            sync.Mutex
	client        contracts.AuthClient
	log           *zap.Logger
	user          *models.User
	authenticated bool
	loading       bool
	errMsg        string
}

func NewAuthSlice(client contracts.AuthClient, logger *zap.Logger) *AuthSlice {
	return &AuthSlice{
		client: client,
		log:    logger,
	}
}

// Login authenticates against the client. On failure the session stays
// signed out and the client message becomes the slice error.
func (s *AuthSlice) Login(ctx context.Context, email, password string) (*models.User, error) {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	user, err := s.client.Login(ctx, email, password)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.errMsg = exceptions.ClientMessageOf(err)
		s.user = nil
		s.authenticated = false
		return nil, err
	}
	s.user = user
	s.authenticated = true
	s.errMsg = ""
	s.log.Info("session established",
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)),
	)
	return user, nil
}

func (s *AuthSlice) Register(ctx context.Context, request *requests.RegisterUserRequest) error {
	err := s.client.Register(ctx, request)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.errMsg = exceptions.ClientMessageOf(err)
		return err
	}
	s.errMsg = ""
	return nil
}

func (s *AuthSlice) Logout(ctx context.Context) error {
	err := s.client.Logout(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.authenticated = false
	s.errMsg = ""
	return err
}

// User returns a copy of the signed-in user, or nil when signed out.
func (s *AuthSlice) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

func (s *AuthSlice) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

func (s *AuthSlice) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *AuthSlice) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

func (s *AuthSlice) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = ""
}
