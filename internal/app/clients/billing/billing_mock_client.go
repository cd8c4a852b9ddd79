package billing

import (
	"context"
	"time"

	"hospital-service/internal/app/clients/mockdata"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/models"
	"hospital-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type billingMockClient struct {
	FetchDelay  time.Duration
	CreateDelay time.Duration
	UpdateDelay time.Duration
	Log         *zap.Logger
}

func NewBillingMockClient(fetchDelay, createDelay, updateDelay time.Duration, logger *zap.Logger) contracts.BillingClient {
	return &billingMockClient{
		FetchDelay:  fetchDelay,
		CreateDelay: createDelay,
		UpdateDelay: updateDelay,
		Log:         logger,
	}
}

func (c *billingMockClient) FindAll(ctx context.Context) ([]models.Billing, error) {
	if err := utils.WaitWithContext(ctx, c.FetchDelay); err != nil {
		return nil, err
	}

	records := mockdata.Billing()
	c.Log.Debug("billingMockClient.FindAll succeeded",
		zap.Int(constvars.LoggingCountKey, len(records)),
	)
	return records, nil
}

func (c *billingMockClient) Create(ctx context.Context, request *requests.CreateBillingRequest) (*models.Billing, error) {
	if err := utils.WaitWithContext(ctx, c.CreateDelay); err != nil {
		return nil, err
	}

	items := make([]models.BillingItem, len(request.Items))
	copy(items, request.Items)
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = utils.GenerateRecordID()
		}
	}

	record := &models.Billing{
		ID:            utils.GenerateRecordID(),
		PatientID:     request.PatientID,
		PatientName:   request.PatientName,
		AppointmentID: request.AppointmentID,
		Items:         items,
		TotalAmount:   request.TotalAmount,
		PaidAmount:    request.PaidAmount,
		Status:        request.Status,
		CreatedAt:     time.Now().UTC(),
	}
	if record.Status == models.BillingStatusPaid {
		now := time.Now().UTC()
		record.PaidAt = &now
	}

	c.Log.Debug("billingMockClient.Create succeeded",
		zap.String(constvars.LoggingBillingIDKey, record.ID),
	)
	return record, nil
}

func (c *billingMockClient) UpdateStatus(ctx context.Context, billingID string, status models.BillingStatus, paidAmount float64) error {
	if err := utils.WaitWithContext(ctx, c.UpdateDelay); err != nil {
		return err
	}

	c.Log.Debug("billingMockClient.UpdateStatus succeeded",
		zap.String(constvars.LoggingBillingIDKey, billingID),
		zap.String(constvars.LoggingStatusKey, string(status)),
		zap.Float64("paid_amount", paidAmount),
	)
	return nil
}
