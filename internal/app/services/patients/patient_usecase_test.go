package patients

import (
	"context"
	"testing"

	"hospital-service/internal/app/clients/mockdata"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestPatientUsecase(t *testing.T) {
	usecase := NewPatientUsecase(NewPatientInMemoryRepository(mockdata.Patients()), zap.NewNop())
	ctx := context.Background()

	t.Run("FindAll Returns Seeded Patients", func(t *testing.T) {
		patients, err := usecase.FindAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, patients, 3)
		assert.Equal(t, "John Doe", patients[0].Name)
	})

	t.Run("Create Normalizes Gender And Fills Contact", func(t *testing.T) {
		created, err := usecase.Create(ctx, &requests.CreatePatientRequest{
			Name:        "Rahul Verma",
			Email:       "rahul.verma@email.com",
			Age:         29,
			MobileNo:    "9876543210",
			AdharNo:     "1234-5678-9012",
			Gender:      "Male",
			BloodGroup:  "B+",
			PinCode:     560001,
			Description: "Routine check-up",
			Address:     "42 MG Road, Bengaluru",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "male", created.Gender)
		assert.Equal(t, "9876543210", created.EmergencyContact.Phone, "emergency contact falls back to the patient's number")
		assert.NotNil(t, created.MedicalHistory)
		assert.NotNil(t, created.Allergies)
		assert.False(t, created.CreatedAt.IsZero())
	})

	t.Run("Create Rejects Malformed Aadhaar", func(t *testing.T) {
		created, err := usecase.Create(ctx, &requests.CreatePatientRequest{
			Name:        "Rahul Verma",
			Email:       "rahul.verma@email.com",
			Age:         29,
			MobileNo:    "9876543210",
			AdharNo:     "123456789012",
			Gender:      "Male",
			BloodGroup:  "B+",
			PinCode:     560001,
			Description: "Routine check-up",
			Address:     "42 MG Road, Bengaluru",
		})

		assert.Nil(t, created)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("Create Rejects Unknown Gender Option", func(t *testing.T) {
		created, err := usecase.Create(ctx, &requests.CreatePatientRequest{
			Name:        "Rahul Verma",
			Email:       "rahul.verma@email.com",
			Age:         29,
			MobileNo:    "9876543210",
			AdharNo:     "1234-5678-9012",
			Gender:      "unknown",
			BloodGroup:  "B+",
			PinCode:     560001,
			Description: "Routine check-up",
			Address:     "42 MG Road, Bengaluru",
		})

		assert.Nil(t, created)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}
