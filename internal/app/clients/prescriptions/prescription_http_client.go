package prescriptions

import (
	"bytes"
	"context"
	"errors"
	"fmt"
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

const resourceLabel = "prescriptions"

var (
	prescriptionHTTPClientInstance contracts.PrescriptionClient
	oncePrescriptionHTTPClient     sync.Once
)

type prescriptionHTTPClient struct {
	EndpointURL string
	Log         *zap.Logger
}

func NewPrescriptionHTTPClient(endpointURL string, logger *zap.Logger) contracts.PrescriptionClient {
	oncePrescriptionHTTPClient.Do(func() {
		prescriptionHTTPClientInstance = &prescriptionHTTPClient{
			EndpointURL: endpointURL,
			Log:         logger,
		}
	})
	return prescriptionHTTPClientInstance
}

func (c *prescriptionHTTPClient) FindAll(ctx context.Context) ([]models.Prescription, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	c.Log.Info("prescriptionHTTPClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingURLKey, c.EndpointURL),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.EndpointURL, nil)
	if err != nil {
		c.Log.Error("prescriptionHTTPClient.FindAll error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("prescriptionHTTPClient.FindAll error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		err := decodeUpstreamError(resp.Body)
		c.Log.Error("prescriptionHTTPClient.FindAll upstream error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(err),
		)
		return nil, exceptions.ErrFetchResource(err, constvars.ResourcePrescription, resourceLabel)
	}

	var result struct {
		Success bool                  `json:"success"`
		Message string                `json:"message"`
		Data    []models.Prescription `json:"data"`
	}
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		c.Log.Error("prescriptionHTTPClient.FindAll error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePrescription)
	}

	c.Log.Info("prescriptionHTTPClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(result.Data)),
	)
	return result.Data, nil
}

func (c *prescriptionHTTPClient) Create(ctx context.Context, request *requests.CreatePrescriptionRequest) (*models.Prescription, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	c.Log.Info("prescriptionHTTPClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		c.Log.Error("prescriptionHTTPClient.Create error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.EndpointURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("prescriptionHTTPClient.Create error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("prescriptionHTTPClient.Create error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusCreated {
		err := decodeUpstreamError(resp.Body)
		c.Log.Error("prescriptionHTTPClient.Create upstream error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateResource(err, constvars.ResourcePrescription, resourceLabel)
	}

	var result struct {
		Success bool                `json:"success"`
		Message string              `json:"message"`
		Data    models.Prescription `json:"data"`
	}
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		c.Log.Error("prescriptionHTTPClient.Create error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePrescription)
	}

	c.Log.Info("prescriptionHTTPClient.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, result.Data.ID),
	)
	return &result.Data, nil
}

func (c *prescriptionHTTPClient) UpdateTestStatus(ctx context.Context, prescriptionID, testID string, status models.TestStatus) error {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	c.Log.Info("prescriptionHTTPClient.UpdateTestStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
		zap.String(constvars.LoggingTestIDKey, testID),
		zap.String(constvars.LoggingStatusKey, string(status)),
	)

	requestJSON, err := json.Marshal(requests.UpdateTestStatusRequest{Status: status})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	url := fmt.Sprintf("%s/%s/tests/%s/status", c.EndpointURL, prescriptionID, testID)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPatch, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("prescriptionHTTPClient.UpdateTestStatus error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("prescriptionHTTPClient.UpdateTestStatus error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		err := decodeUpstreamError(resp.Body)
		c.Log.Error("prescriptionHTTPClient.UpdateTestStatus upstream error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(err),
		)
		return exceptions.ErrUpdateResource(err, constvars.ResourceTest, resourceLabel)
	}

	c.Log.Info("prescriptionHTTPClient.UpdateTestStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTestIDKey, testID),
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
