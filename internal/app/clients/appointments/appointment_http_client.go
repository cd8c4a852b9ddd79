package appointments

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

const resourceLabel = "appointments"

var (
	appointmentHTTPClientInstance contracts.AppointmentClient
	onceAppointmentHTTPClient     sync.Once
)

type appointmentHTTPClient struct {
	EndpointURL string
	Log         *zap.Logger
}

func NewAppointmentHTTPClient(endpointURL string, logger *zap.Logger) contracts.AppointmentClient {
	onceAppointmentHTTPClient.Do(func() {
		appointmentHTTPClientInstance = &appointmentHTTPClient{
			EndpointURL: endpointURL,
			Log:         logger,
		}
	})
	return appointmentHTTPClientInstance
}

func (c *appointmentHTTPClient) FindAll(ctx context.Context) ([]models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	c.Log.Info("appointmentHTTPClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingURLKey, c.EndpointURL),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.EndpointURL, nil)
	if err != nil {
		c.Log.Error("appointmentHTTPClient.FindAll error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("appointmentHTTPClient.FindAll error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		err := decodeUpstreamError(resp.Body)
		c.Log.Error("appointmentHTTPClient.FindAll upstream error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(err),
		)
		return nil, exceptions.ErrFetchResource(err, constvars.ResourceAppointment, resourceLabel)
	}

	var result struct {
		Success bool                 `json:"success"`
		Message string               `json:"message"`
		Data    []models.Appointment `json:"data"`
	}
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		c.Log.Error("appointmentHTTPClient.FindAll error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceAppointment)
	}

	c.Log.Info("appointmentHTTPClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(result.Data)),
	)
	return result.Data, nil
}

func (c *appointmentHTTPClient) Create(ctx context.Context, request *requests.CreateAppointmentRequest) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	c.Log.Info("appointmentHTTPClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		c.Log.Error("appointmentHTTPClient.Create error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.EndpointURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("appointmentHTTPClient.Create error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("appointmentHTTPClient.Create error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusCreated {
		err := decodeUpstreamError(resp.Body)
		c.Log.Error("appointmentHTTPClient.Create upstream error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateResource(err, constvars.ResourceAppointment, resourceLabel)
	}

	var result struct {
		Success bool               `json:"success"`
		Message string             `json:"message"`
		Data    models.Appointment `json:"data"`
	}
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		c.Log.Error("appointmentHTTPClient.Create error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceAppointment)
	}

	c.Log.Info("appointmentHTTPClient.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, result.Data.ID),
	)
	return &result.Data, nil
}

func (c *appointmentHTTPClient) UpdateStatus(ctx context.Context, appointmentID string, status models.AppointmentStatus) error {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	c.Log.Info("appointmentHTTPClient.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingStatusKey, string(status)),
	)

	requestJSON, err := json.Marshal(requests.UpdateAppointmentStatusRequest{Status: status})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	url := fmt.Sprintf("%s/%s/status", c.EndpointURL, appointmentID)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPatch, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("appointmentHTTPClient.UpdateStatus error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("appointmentHTTPClient.UpdateStatus error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		err := decodeUpstreamError(resp.Body)
		c.Log.Error("appointmentHTTPClient.UpdateStatus upstream error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(err),
		)
		return exceptions.ErrUpdateResource(err, constvars.ResourceAppointment, resourceLabel)
	}

	c.Log.Info("appointmentHTTPClient.UpdateStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
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
