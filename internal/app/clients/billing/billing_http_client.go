package billing

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

const resourceLabel = "billing records"

var (
	billingHTTPClientInstance contracts.BillingClient
	onceBillingHTTPClient     sync.Once
)

type billingHTTPClient struct {
	EndpointURL string
	Log         *zap.Logger
}

func NewBillingHTTPClient(endpointURL string, logger *zap.Logger) contracts.BillingClient {
	onceBillingHTTPClient.Do(func() {
		billingHTTPClientInstance = &billingHTTPClient{
			EndpointURL: endpointURL,
			Log:         logger,
		}
	})
	return billingHTTPClientInstance
}

func (c *billingHTTPClient) FindAll(ctx context.Context) ([]models.Billing, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	c.Log.Info("billingHTTPClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingURLKey, c.EndpointURL),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.EndpointURL, nil)
	if err != nil {
		c.Log.Error("billingHTTPClient.FindAll error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("billingHTTPClient.FindAll error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		err := decodeUpstreamError(resp.Body)
		c.Log.Error("billingHTTPClient.FindAll upstream error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(err),
		)
		return nil, exceptions.ErrFetchResource(err, constvars.ResourceBilling, resourceLabel)
	}

	var result struct {
		Success bool             `json:"success"`
		Message string           `json:"message"`
		Data    []models.Billing `json:"data"`
	}
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		c.Log.Error("billingHTTPClient.FindAll error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceBilling)
	}

	c.Log.Info("billingHTTPClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(result.Data)),
	)
	return result.Data, nil
}

func (c *billingHTTPClient) Create(ctx context.Context, request *requests.CreateBillingRequest) (*models.Billing, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	c.Log.Info("billingHTTPClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	requestJSON, err := json.Marshal(request)
	if err != nil {
		c.Log.Error("billingHTTPClient.Create error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.EndpointURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("billingHTTPClient.Create error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("billingHTTPClient.Create error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusCreated {
		err := decodeUpstreamError(resp.Body)
		c.Log.Error("billingHTTPClient.Create upstream error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateResource(err, constvars.ResourceBilling, resourceLabel)
	}

	var result struct {
		Success bool           `json:"success"`
		Message string         `json:"message"`
		Data    models.Billing `json:"data"`
	}
	err = json.NewDecoder(resp.Body).Decode(&result)
	if err != nil {
		c.Log.Error("billingHTTPClient.Create error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceBilling)
	}

	c.Log.Info("billingHTTPClient.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBillingIDKey, result.Data.ID),
	)
	return &result.Data, nil
}

func (c *billingHTTPClient) UpdateStatus(ctx context.Context, billingID string, status models.BillingStatus, paidAmount float64) error {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	c.Log.Info("billingHTTPClient.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBillingIDKey, billingID),
		zap.String(constvars.LoggingStatusKey, string(status)),
	)

	requestJSON, err := json.Marshal(requests.UpdateBillingStatusRequest{
		Status:     status,
		PaidAmount: paidAmount,
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	url := fmt.Sprintf("%s/%s/status", c.EndpointURL, billingID)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPatch, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("billingHTTPClient.UpdateStatus error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.Log.Error("billingHTTPClient.UpdateStatus error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		err := decodeUpstreamError(resp.Body)
		c.Log.Error("billingHTTPClient.UpdateStatus upstream error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(err),
		)
		return exceptions.ErrUpdateResource(err, constvars.ResourceBilling, resourceLabel)
	}

	c.Log.Info("billingHTTPClient.UpdateStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBillingIDKey, billingID),
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
