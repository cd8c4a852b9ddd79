package appointments

import (
	"context"
	"testing"

	"hospital-service/internal/app/clients/mockdata"
	"hospital-service/internal/app/services/doctors"
	"hospital-service/internal/app/services/patients"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestAppointmentUsecase(t *testing.T) {
	usecase := NewAppointmentUsecase(
		NewAppointmentInMemoryRepository(mockdata.Appointments()),
		doctors.NewDoctorInMemoryRepository(mockdata.Doctors()),
		patients.NewPatientInMemoryRepository(mockdata.Patients()),
		zap.NewNop(),
	)
	ctx := context.Background()

	t.Run("Create Snapshots Display Names", func(t *testing.T) {
		created, err := usecase.Create(ctx, &requests.CreateAppointmentRequest{
			Date:        "2030-06-01",
			Time:        "10:00",
			Description: "Follow-up consultation",
			DoctorID:    "2",
			PatientID:   "1",
		})

		assert.NoError(t, err)
		assert.Equal(t, "John Doe", created.PatientName)
		assert.Equal(t, "Dr. Michael Chen", created.DoctorName)
		assert.Equal(t, models.AppointmentStatusScheduled, created.Status)
		assert.Equal(t, "Follow-up consultation", created.Symptoms)
	})

	t.Run("Unknown References Get Placeholder Names", func(t *testing.T) {
		created, err := usecase.Create(ctx, &requests.CreateAppointmentRequest{
			Date:        "2030-06-02",
			Time:        "11:00",
			Description: "Walk-in",
			DoctorID:    "999",
			PatientID:   "999",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Patient Name", created.PatientName)
		assert.Equal(t, "Doctor Name", created.DoctorName)
	})

	t.Run("Create Rejects Malformed Date", func(t *testing.T) {
		created, err := usecase.Create(ctx, &requests.CreateAppointmentRequest{
			Date:        "01/06/2030",
			Time:        "10:00",
			Description: "Follow-up",
			DoctorID:    "1",
			PatientID:   "1",
		})

		assert.Nil(t, created)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("UpdateStatus Confirms A Scheduled Appointment", func(t *testing.T) {
		updated, err := usecase.UpdateStatus(ctx, "2", &requests.UpdateAppointmentStatusRequest{
			Status: models.AppointmentStatusConfirmed,
		})

		assert.NoError(t, err)
		assert.Equal(t, models.AppointmentStatusConfirmed, updated.Status)
	})

	t.Run("UpdateStatus Rejects Unknown Appointment", func(t *testing.T) {
		updated, err := usecase.UpdateStatus(ctx, "missing", &requests.UpdateAppointmentStatusRequest{
			Status: models.AppointmentStatusConfirmed,
		})

		assert.Nil(t, updated)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("UpdateStatus Rejects Unknown Status", func(t *testing.T) {
		updated, err := usecase.UpdateStatus(ctx, "1", &requests.UpdateAppointmentStatusRequest{
			Status: models.AppointmentStatus("archived"),
		})

		assert.Nil(t, updated)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}
