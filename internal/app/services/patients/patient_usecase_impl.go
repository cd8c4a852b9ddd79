package patients

import (
	"context"
	"strings"
	"sync"
	"time"

	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/models"
	"hospital-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository PatientRepository
	Log               *zap.Logger
}

var (
	patientUsecaseInstance PatientUsecase
	oncePatientUsecase     sync.Once
)

func NewPatientUsecase(patientRepository PatientRepository, logger *zap.Logger) PatientUsecase {
	oncePatientUsecase.Do(func() {
		patientUsecaseInstance = &patientUsecase{
			PatientRepository: patientRepository,
			Log:               logger,
		}
	})
	return patientUsecaseInstance
}

func (uc *patientUsecase) FindAll(ctx context.Context) ([]models.Patient, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("patientUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patients, err := uc.PatientRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("patientUsecase.FindAll error retrieving patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return patients, nil
}

func (uc *patientUsecase) Create(ctx context.Context, request *requests.CreatePatientRequest) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("patientUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserEmailKey, request.Email),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	// The intake form has no emergency contact section; the record falls
	// back to the patient's own number.
	patient := &models.Patient{
		ID:         utils.GenerateRecordID(),
		Name:       request.Name,
		Email:      request.Email,
		Phone:      request.MobileNo,
		Age:        request.Age,
		Gender:     strings.ToLower(request.Gender),
		BloodGroup: request.BloodGroup,
		Address:    request.Address,
		EmergencyContact: models.EmergencyContact{
			Name:         "Emergency Contact",
			Phone:        request.MobileNo,
			Relationship: "Emergency",
		},
		MedicalHistory: []string{},
		Allergies:      []string{},
		CreatedAt:      time.Now().UTC(),
	}

	created, err := uc.PatientRepository.Insert(ctx, patient)
	if err != nil {
		uc.Log.Error("patientUsecase.Create error inserting patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("patientUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, created.ID),
	)
	return created, nil
}
