package doctors

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
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/models"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const resourceLabel = "doctors"

var (
	doctorHTTPClientInstance contracts.DoctorClient
	onceDoctorHTTPClient     sync.Once
)

type doctorHTTPClient struct {
	EndpointURL string
	Log         *zap.Logger
}

func NewDoctorHTTPClient(endpointURL string, logger *zap.Logger) contracts.DoctorClient {
	onceDoctorHTTPClient.Do(func() {
		doctorHTTPClientInstance = &doctorHTTPClient{
			EndpointURL: endpointURL,
			Log:         logger,
		}
	})
	return doctorHTTPClientInstance
}

func (c *doctorHTTPClient) FindAll(ctx context.Context) ([]models.Doctor, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	c.Log.Info("doctorHTTPClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingURLKey, c.EndpointURL),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.EndpointURL, nil)
	if err != nil {
		c.Log.Error("doctorHTTPClient.FindAll error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("doctorHTTPClient.FindAll error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		err := decodeUpstreamError(resp.Body)
		c.Log.Error("doctorHTTPClient.FindAll upstream error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(err),
		)
		return nil, exceptions.ErrFetchResource(err, constvars.ResourceDoctor, resourceLabel)
	}

	var result struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    []models.Doctor `json:"data"`
	}
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		c.Log.Error("doctorHTTPClient.FindAll error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceDoctor)
	}

	c.Log.Info("doctorHTTPClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(result.Data)),
	)
	return result.Data, nil
}

func (c *doctorHTTPClient) Create(ctx context.Context, request *requests.CreateDoctorRequest) (*models.Doctor, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	c.Log.Info("doctorHTTPClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		c.Log.Error("doctorHTTPClient.Create error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.EndpointURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("doctorHTTPClient.Create error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("doctorHTTPClient.Create error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusCreated {
		err := decodeUpstreamError(resp.Body)
		c.Log.Error("doctorHTTPClient.Create upstream error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateResource(err, constvars.ResourceDoctor, resourceLabel)
	}

	var result struct {
		Success bool          `json:"success"`
		Message string        `json:"message"`
		Data    models.Doctor `json:"data"`
	}
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		c.Log.Error("doctorHTTPClient.Create error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceDoctor)
	}

	c.Log.Info("doctorHTTPClient.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, result.Data.ID),
	)
	return &result.Data, nil
}

// decodeUpstreamError extracts the error envelope a failing endpoint
// responds with, so the dev message keeps the upstream's own wording.
func decodeUpstreamError(body io.Reader) error {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&envelope); err != nil {
		return err
	}
	return errors.New(envelope.Message)
}
