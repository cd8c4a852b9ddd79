package patients

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

const resourceLabel = "patients"

var (
	patientHTTPClientInstance contracts.PatientClient
	oncePatientHTTPClient     sync.Once
)

type patientHTTPClient struct {
	EndpointURL string
	Log         *zap.Logger
}

func NewPatientHTTPClient(endpointURL string, logger *zap.Logger) contracts.PatientClient {
	oncePatientHTTPClient.Do(func() {
		patientHTTPClientInstance = &patientHTTPClient{
			EndpointURL: endpointURL,
			Log:         logger,
		}
	})
	return patientHTTPClientInstance
}

func (c *patientHTTPClient) FindAll(ctx context.Context) ([]models.Patient, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	c.Log.Info("patientHTTPClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingURLKey, c.EndpointURL),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.EndpointURL, nil)
	if err != nil {
		c.Log.Error("patientHTTPClient.FindAll error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("patientHTTPClient.FindAll error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		err := decodeUpstreamError(resp.Body)
		c.Log.Error("patientHTTPClient.FindAll upstream error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(err),
		)
		return nil, exceptions.ErrFetchResource(err, constvars.ResourcePatient, resourceLabel)
	}

	var result struct {
		Success bool             `json:"success"`
		Message string           `json:"message"`
		Data    []models.Patient `json:"data"`
	}
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		c.Log.Error("patientHTTPClient.FindAll error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
	}

	c.Log.Info("patientHTTPClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(result.Data)),
	)
	return result.Data, nil
}

func (c *patientHTTPClient) Create(ctx context.Context, request *requests.CreatePatientRequest) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	c.Log.Info("patientHTTPClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		c.Log.Error("patientHTTPClient.Create error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.EndpointURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("patientHTTPClient.Create error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("patientHTTPClient.Create error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusCreated {
		err := decodeUpstreamError(resp.Body)
		c.Log.Error("patientHTTPClient.Create upstream error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateResource(err, constvars.ResourcePatient, resourceLabel)
	}

	var result struct {
		Success bool           `json:"success"`
		Message string         `json:"message"`
		Data    models.Patient `json:"data"`
	}
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		c.Log.Error("patientHTTPClient.Create error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
	}

	c.Log.Info("patientHTTPClient.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, result.Data.ID),
	)
	return &result.Data, nil
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
