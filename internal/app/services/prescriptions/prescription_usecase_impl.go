package prescriptions

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

type prescriptionUsecase struct {
	PrescriptionRepository PrescriptionRepository
	Log                    *zap.Logger
}

var (
	prescriptionUsecaseInstance PrescriptionUsecase
	oncePrescriptionUsecase     sync.Once
)

func NewPrescriptionUsecase(prescriptionRepository PrescriptionRepository, logger *zap.Logger) PrescriptionUsecase {
	oncePrescriptionUsecase.Do(func() {
		prescriptionUsecaseInstance = &prescriptionUsecase{
			PrescriptionRepository: prescriptionRepository,
			Log:                    logger,
		}
	})
	return prescriptionUsecaseInstance
}

func (uc *prescriptionUsecase) FindAll(ctx context.Context) ([]models.Prescription, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("prescriptionUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	prescriptions, err := uc.PrescriptionRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("prescriptionUsecase.FindAll error retrieving prescriptions",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return prescriptions, nil
}

func (uc *prescriptionUsecase) Create(ctx context.Context, request *requests.CreatePrescriptionRequest) (*models.Prescription, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("prescriptionUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
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

	created, err := uc.PrescriptionRepository.Insert(ctx, prescription)
	if err != nil {
		uc.Log.Error("prescriptionUsecase.Create error inserting prescription",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("prescriptionUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, created.ID),
	)
	return created, nil
}

func (uc *prescriptionUsecase) UpdateTestStatus(ctx context.Context, prescriptionID, testID string, request *requests.UpdateTestStatusRequest) (*models.Prescription, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("prescriptionUsecase.UpdateTestStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
		zap.String(constvars.LoggingTestIDKey, testID),
		zap.String(constvars.LoggingStatusKey, string(request.Status)),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if !request.Status.Valid() {
		return nil, exceptions.ErrInvalidStatusTransition(nil, constvars.ResourceTest)
	}

	prescription, err := uc.PrescriptionRepository.FindByID(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, exceptions.ErrRecordNotFound(nil, constvars.ResourcePrescription)
	}

	var target *models.Test
	for i := range prescription.Tests {
		if prescription.Tests[i].ID == testID {
			target = &prescription.Tests[i]
			break
		}
	}
	if target == nil {
		return nil, exceptions.ErrRecordNotFound(nil, constvars.ResourceTest)
	}

	target.Status = request.Status
	if request.Result != "" {
		target.Result = request.Result
	}
	if request.Status == models.TestStatusCompleted {
		now := time.Now().UTC()
		target.CompletedAt = &now
	}

	updated, err := uc.PrescriptionRepository.UpdateTest(ctx, prescriptionID, target)
	if err != nil {
		uc.Log.Error("prescriptionUsecase.UpdateTestStatus error updating test",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return updated, nil
}
