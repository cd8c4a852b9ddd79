package appointments

import (
	"context"
	"sync"
	"time"

	"hospital-service/internal/app/services/doctors"
	"hospital-service/internal/app/services/patients"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/models"
	"hospital-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository AppointmentRepository
	DoctorRepository      doctors.DoctorRepository
	PatientRepository     patients.PatientRepository
	Log                   *zap.Logger
}

var (
	appointmentUsecaseInstance AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository AppointmentRepository,
	doctorRepository doctors.DoctorRepository,
	patientRepository patients.PatientRepository,
	logger *zap.Logger,
) AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository: appointmentRepository,
			DoctorRepository:      doctorRepository,
			PatientRepository:     patientRepository,
			Log:                   logger,
		}
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) FindAll(ctx context.Context) ([]models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("appointmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	appointments, err := uc.AppointmentRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindAll error retrieving appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return appointments, nil
}

func (uc *appointmentUsecase) Create(ctx context.Context, request *requests.CreateAppointmentRequest) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("appointmentUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	// Display names are snapshotted at creation time from the current
	// directory; unknown references get a generic placeholder.
	patientName := "Patient Name"
	if patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID); err == nil && patient != nil {
		patientName = patient.Name
	}
	doctorName := "Doctor Name"
	if doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID); err == nil && doctor != nil {
		doctorName = doctor.Name
	}

	appointment := &models.Appointment{
		ID:          utils.GenerateRecordID(),
		PatientID:   request.PatientID,
		DoctorID:    request.DoctorID,
		PatientName: patientName,
		DoctorName:  doctorName,
		Date:        request.Date,
		Time:        request.Time,
		Status:      models.AppointmentStatusScheduled,
		Symptoms:    request.Description,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := uc.AppointmentRepository.Insert(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Create error inserting appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, created.ID),
	)
	return created, nil
}

func (uc *appointmentUsecase) UpdateStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatusRequest) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("appointmentUsecase.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingStatusKey, string(request.Status)),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if !request.Status.Valid() {
		return nil, exceptions.ErrInvalidStatusTransition(nil, constvars.ResourceAppointment)
	}

	existing, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrRecordNotFound(nil, constvars.ResourceAppointment)
	}

	updated, err := uc.AppointmentRepository.UpdateStatus(ctx, appointmentID, request.Status)
	if err != nil {
		uc.Log.Error("appointmentUsecase.UpdateStatus error updating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return updated, nil
}
