package doctors

import (
	"context"
	"testing"

	"hospital-service/internal/app/clients/mockdata"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestDoctorUsecase(t *testing.T) {
	repository := NewDoctorInMemoryRepository(mockdata.Doctors())
	usecase := NewDoctorUsecase(repository, zap.NewNop())
	ctx := context.Background()

	t.Run("FindAll Returns Seeded Doctors", func(t *testing.T) {
		doctors, err := usecase.FindAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, doctors, 5)
		assert.Equal(t, "Dr. Sarah Johnson", doctors[0].Name)
	})

	t.Run("Create Rejects Missing Name", func(t *testing.T) {
		created, err := usecase.Create(ctx, &requests.CreateDoctorRequest{
			Age:            40,
			Specialization: "Cardiology",
			ContactNo:      "9876543210",
			Availability:   []requests.DayAvailability{{DayOfWeek: "Monday"}},
			InTiming:       "09:00",
			OutTiming:      "17:00",
			Email:          "someone@hospital.com",
			Description:    "Cardiologist",
		})

		assert.Nil(t, created)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("Create Fills Defaults", func(t *testing.T) {
		created, err := usecase.Create(ctx, &requests.CreateDoctorRequest{
			Name:           "Dr. Arjun Rao",
			Age:            45,
			Specialization: "Neurology",
			Experience:     14,
			ContactNo:      "9876501234",
			Availability:   []requests.DayAvailability{{DayOfWeek: "Tuesday"}, {DayOfWeek: "Thursday"}},
			InTiming:       "10:00",
			OutTiming:      "18:00",
			Email:          "arjun.rao@hospital.com",
			Description:    "Senior neurologist",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "Neurology Specialist", created.Education)
		assert.Equal(t, constvars.DefaultDoctorImageURL, created.Image)
		assert.Equal(t, constvars.DefaultConsultationFee, created.ConsultationFee)
		assert.Equal(t, models.DoctorStatusActive, created.Status)
		assert.Equal(t, []string{"Tuesday", "Thursday"}, created.AvailableDays)
		assert.Equal(t, models.TimeRange{Start: "10:00", End: "18:00"}, created.AvailableTime)

		doctors, err := usecase.FindAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, doctors, 6, "created doctor should be appended to the collection")
	})
}
