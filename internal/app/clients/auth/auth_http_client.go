package auth

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"sync"

	"hospital-service/internal/app/contracts"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/models"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	authHTTPClientInstance contracts.AuthClient
	onceAuthHTTPClient     sync.Once
)

type authHTTPClient struct {
	LoginURL    string
	RegisterURL string
	Log         *zap.Logger
}

func NewAuthHTTPClient(loginURL, registerURL string, logger *zap.Logger) contracts.AuthClient {
	onceAuthHTTPClient.Do(func() {
		authHTTPClientInstance = &authHTTPClient{
			LoginURL:    loginURL,
			RegisterURL: registerURL,
			Log:         logger,
		}
	})
	return authHTTPClientInstance
}

func (c *authHTTPClient) Login(ctx context.Context, email, password string) (*models.User, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	c.Log.Info("authHTTPClient.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserEmailKey, email),
	)

	requestJSON, err := json.Marshal(requests.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.LoginURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("authHTTPClient.Login error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("authHTTPClient.Login error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusUnauthorized {
		err := decodeUpstreamError(resp.Body)
		c.Log.Warn("authHTTPClient.Login rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserEmailKey, email),
			zap.Error(err),
		)
		return nil, exceptions.ErrInvalidCredentials(err)
	}
	if resp.StatusCode != constvars.StatusOK {
		err := decodeUpstreamError(resp.Body)
		c.Log.Error("authHTTPClient.Login upstream error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(err),
		)
		return nil, exceptions.ErrFetchResource(err, constvars.ResourceUser, "user session")
	}

	var result struct {
		Success bool                    `json:"success"`
		Message string                  `json:"message"`
		Data    responses.LoginResponse `json:"data"`
	}
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		c.Log.Error("authHTTPClient.Login error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceUser)
	}

	c.Log.Info("authHTTPClient.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserEmailKey, result.Data.User.Email),
		zap.String(constvars.LoggingRoleKey, string(result.Data.User.Role)),
	)
	return &result.Data.User, nil
}

func (c *authHTTPClient) Register(ctx context.Context, request *requests.RegisterUserRequest) error {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	c.Log.Info("authHTTPClient.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserEmailKey, request.Email),
	)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.RegisterURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("authHTTPClient.Register error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("authHTTPClient.Register error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusConflict {
		err := decodeUpstreamError(resp.Body)
		c.Log.Warn("authHTTPClient.Register duplicate email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserEmailKey, request.Email),
			zap.Error(err),
		)
		return exceptions.ErrEmailAlreadyExist(err)
	}
	if resp.StatusCode != constvars.StatusCreated {
		err := decodeUpstreamError(resp.Body)
		c.Log.Error("authHTTPClient.Register upstream error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(err),
		)
		return exceptions.ErrCreateResource(err, constvars.ResourceUser, "user account")
	}

	c.Log.Info("authHTTPClient.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserEmailKey, request.Email),
	)
	return nil
}

// Logout tears down local session state only. The upstream keeps no
// server-side session to invalidate.
func (c *authHTTPClient) Logout(ctx context.Context) error {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	c.Log.Info("authHTTPClient.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func decodeUpstreamError(body io.Reader) error {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&envelope); err != nil {
		return err
	}
	return errors.New(envelope.Message)
}
