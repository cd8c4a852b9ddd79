package appointments

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

type appointmentMockClient struct {
	FetchDelay  time.Duration
	CreateDelay time.Duration
	UpdateDelay time.Duration
	Log         *zap.Logger
}

func NewAppointmentMockClient(fetchDelay, createDelay, updateDelay time.Duration, logger *zap.Logger) contracts.AppointmentClient {
	return &appointmentMockClient{
		FetchDelay:  fetchDelay,
		CreateDelay: createDelay,
		UpdateDelay: updateDelay,
		Log:         logger,
	}
}

func (c *appointmentMockClient) FindAll(ctx context.Context) ([]models.Appointment, error) {
	if err := utils.WaitWithContext(ctx, c.FetchDelay); err != nil {
		return nil, err
	}

	appointments := mockdata.Appointments()
	c.Log.Debug("appointmentMockClient.FindAll succeeded",
		zap.Int(constvars.LoggingCountKey, len(appointments)),
	)
	return appointments, nil
}

func (c *appointmentMockClient) Create(ctx context.Context, request *requests.CreateAppointmentRequest) (*models.Appointment, error) {
	if err := utils.WaitWithContext(ctx, c.CreateDelay); err != nil {
		return nil, err
	}

	// Display names are snapshotted at creation time from the canned
	// directory; they are not kept in sync afterwards.
	patientName := "Patient Name"
	for _, p := range mockdata.Patients() {
		if p.ID == request.PatientID {
			patientName = p.Name
			break
		}
	}
	doctorName := "Doctor Name"
	for _, d := range mockdata.Doctors() {
		if d.ID == request.DoctorID {
			doctorName = d.Name
			break
		}
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

	c.Log.Debug("appointmentMockClient.Create succeeded",
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return appointment, nil
}

func (c *appointmentMockClient) UpdateStatus(ctx context.Context, appointmentID string, status models.AppointmentStatus) error {
	if err := utils.WaitWithContext(ctx, c.UpdateDelay); err != nil {
		return err
	}

	c.Log.Debug("appointmentMockClient.UpdateStatus succeeded",
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingStatusKey, string(status)),
	)
	return nil
}
