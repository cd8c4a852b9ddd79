package billing

import (
	"context"
	"sync"
	"time"

	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/models"
	"hospital-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type billingUsecase struct {
	BillingRepository BillingRepository
	Log               *zap.Logger
}

var (
	billingUsecaseInstance BillingUsecase
	onceBillingUsecase     sync.Once
)

func NewBillingUsecase(billingRepository BillingRepository, logger *zap.Logger) BillingUsecase {
	onceBillingUsecase.Do(func() {
		billingUsecaseInstance = &billingUsecase{
			BillingRepository: billingRepository,
			Log:               logger,
		}
	})
	return billingUsecaseInstance
}

func (uc *billingUsecase) FindAll(ctx context.Context) ([]models.Billing, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("billingUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	records, err := uc.BillingRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("billingUsecase.FindAll error retrieving billing records",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return records, nil
}

func (uc *billingUsecase) Create(ctx context.Context, request *requests.CreateBillingRequest) (*models.Billing, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("billingUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if !request.Status.Valid() {
		return nil, exceptions.ErrInvalidStatusTransition(nil, constvars.ResourceBilling)
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

	created, err := uc.BillingRepository.Insert(ctx, record)
	if err != nil {
		uc.Log.Error("billingUsecase.Create error inserting billing record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("billingUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBillingIDKey, created.ID),
	)
	return created, nil
}

func (uc *billingUsecase) UpdateStatus(ctx context.Context, billingID string, request *requests.UpdateBillingStatusRequest) (*models.Billing, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("billingUsecase.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBillingIDKey, billingID),
		zap.String(constvars.LoggingStatusKey, string(request.Status)),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if !request.Status.Valid() {
		return nil, exceptions.ErrInvalidStatusTransition(nil, constvars.ResourceBilling)
	}

	record, err := uc.BillingRepository.FindByID(ctx, billingID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrRecordNotFound(nil, constvars.ResourceBilling)
	}

	record.Status = request.Status
	record.PaidAmount = request.PaidAmount
	// PaidAt is only ever stamped on the transition to paid.
	if request.Status == models.BillingStatusPaid {
		now := time.Now().UTC()
		record.PaidAt = &now
	}

	updated, err := uc.BillingRepository.Update(ctx, record)
	if err != nil {
		uc.Log.Error("billingUsecase.UpdateStatus error updating billing record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return updated, nil
}
