package doctors

import (
	"context"
	"fmt"
	"sync"

	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/models"
	"hospital-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorRepository DoctorRepository
	Log              *zap.Logger
}

var (
	doctorUsecaseInstance DoctorUsecase
	onceDoctorUsecase     sync.Once
)

func NewDoctorUsecase(doctorRepository DoctorRepository, logger *zap.Logger) DoctorUsecase {
	onceDoctorUsecase.Do(func() {
		doctorUsecaseInstance = &doctorUsecase{
			DoctorRepository: doctorRepository,
			Log:              logger,
		}
	})
	return doctorUsecaseInstance
}

func (uc *doctorUsecase) FindAll(ctx context.Context) ([]models.Doctor, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("doctorUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctors, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("doctorUsecase.FindAll error retrieving doctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return doctors, nil
}

func (uc *doctorUsecase) Create(ctx context.Context, request *requests.CreateDoctorRequest) (*models.Doctor, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("doctorUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserEmailKey, request.Email),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	image := request.ImageURL
	if image == "" {
		image = constvars.DefaultDoctorImageURL
	}
	availableDays := make([]string, len(request.Availability))
	for i, a := range request.Availability {
		availableDays[i] = a.DayOfWeek
	}

	doctor := &models.Doctor{
		ID:              utils.GenerateRecordID(),
		Name:            request.Name,
		Specialization:  request.Specialization,
		Experience:      request.Experience,
		Education:       fmt.Sprintf("%s Specialist", request.Specialization),
		Image:           image,
		AvailableDays:   availableDays,
		AvailableTime:   models.TimeRange{Start: request.InTiming, End: request.OutTiming},
		ConsultationFee: constvars.DefaultConsultationFee,
		Status:          models.DoctorStatusActive,
	}

	created, err := uc.DoctorRepository.Insert(ctx, doctor)
	if err != nil {
		uc.Log.Error("doctorUsecase.Create error inserting doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("doctorUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, created.ID),
	)
	return created, nil
}
