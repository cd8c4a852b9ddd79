package prescriptions

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

type prescriptionMockClient struct {
	FetchDelay  time.Duration
	CreateDelay time.Duration
	UpdateDelay time.Duration
	Log         *zap.Logger
}

func NewPrescriptionMockClient(fetchDelay, createDelay, updateDelay time.Duration, logger *zap.Logger) contracts.PrescriptionClient {
	return &prescriptionMockClient{
		FetchDelay:  fetchDelay,
		CreateDelay: createDelay,
		UpdateDelay: updateDelay,
		Log:         logger,
	}
}

func (c *prescriptionMockClient) FindAll(ctx context.Context) ([]models.Prescription, error) {
	if err := utils.WaitWithContext(ctx, c.FetchDelay); err != nil {
		return nil, err
	}

	prescriptions := mockdata.Prescriptions()
	c.Log.Debug("prescriptionMockClient.FindAll succeeded",
		zap.Int(constvars.LoggingCountKey, len(prescriptions)),
	)
	return prescriptions, nil
}

func (c *prescriptionMockClient) Create(ctx context.Context, request *requests.CreatePrescriptionRequest) (*models.Prescription, error) {
	if err := utils.WaitWithContext(ctx, c.CreateDelay); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	medicines := make([]models.Medicine, len(request.Medicines))
	copy(medicines, request.Medicines)
	for i := range medicines {
		if medicines[i].ID == "" {
			medicines[i].ID = utils.GenerateRecordID()
		}
	}
	tests := make([]models.Test, len(request.Tests))
	copy(tests, request.Tests)
	for i := range tests {
		if tests[i].ID == "" {
			tests[i].ID = utils.GenerateRecordID()
		}
		if tests[i].Status == "" {
			tests[i].Status = models.TestStatusPending
		}
		tests[i].PrescribedBy = request.PrescribedBy
		tests[i].PrescribedAt = now
	}

	prescription := &models.Prescription{
		ID:            utils.GenerateRecordID(),
		AppointmentID: request.AppointmentID,
		Medicines:     medicines,
		Tests:         tests,
		Notes:         request.Notes,
		PrescribedBy:  request.PrescribedBy,
		PrescribedAt:  now,
	}

	c.Log.Debug("prescriptionMockClient.Create succeeded",
		zap.String(constvars.LoggingPrescriptionIDKey, prescription.ID),
	)
	return prescription, nil
}

func (c *prescriptionMockClient) UpdateTestStatus(ctx context.Context, prescriptionID, testID string, status models.TestStatus) error {
	if err := utils.WaitWithContext(ctx, c.UpdateDelay); err != nil {
		return err
	}

	c.Log.Debug("prescriptionMockClient.UpdateTestStatus succeeded",
		zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
		zap.String(constvars.LoggingTestIDKey, testID),
		zap.String(constvars.LoggingStatusKey, string(status)),
	)
	return nil
}
