package store

import (
	"context"
	"testing"

	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAppointmentClient struct {
	mock.Mock
}

func (m *MockAppointmentClient) FindAll(ctx context.Context) ([]models.Appointment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentClient) Create(ctx context.Context, request *requests.CreateAppointmentRequest) (*models.Appointment, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentClient) UpdateStatus(ctx context.Context, appointmentID string, status models.AppointmentStatus) error {
	args := m.Called(ctx, appointmentID, status)
	return args.Error(0)
}

func fetchedAppointmentSlice(t *testing.T, mockClient *MockAppointmentClient) *AppointmentSlice {
	t.Helper()
	slice := NewAppointmentSlice(mockClient, zap.NewNop())
	assert.NoError(t, slice.FetchAll(context.Background()))
	return slice
}

func TestAppointmentSlice_UpdateStatus(t *testing.T) {
	t.Run("Touches Only The Target Record", func(t *testing.T) {
		mockClient := new(MockAppointmentClient)
		mockClient.On("FindAll", mock.Anything).Return([]models.Appointment{
			{ID: "1", Status: models.AppointmentStatusScheduled},
			{ID: "2", Status: models.AppointmentStatusScheduled},
		}, nil)
		mockClient.On("UpdateStatus", mock.Anything, "2", models.AppointmentStatusConfirmed).Return(nil)

		slice := fetchedAppointmentSlice(t, mockClient)

		err := slice.UpdateStatus(context.Background(), "2", models.AppointmentStatusConfirmed)

		assert.NoError(t, err)
		items := slice.Items()
		assert.Equal(t, models.AppointmentStatusScheduled, items[0].Status, "other records must keep their status")
		assert.Equal(t, models.AppointmentStatusConfirmed, items[1].Status)
	})

	t.Run("Failure Records Error Without Mutating", func(t *testing.T) {
		mockClient := new(MockAppointmentClient)
		mockClient.On("FindAll", mock.Anything).Return([]models.Appointment{
			{ID: "1", Status: models.AppointmentStatusScheduled},
		}, nil)
		mockClient.On("UpdateStatus", mock.Anything, "1", models.AppointmentStatusCancelled).
			Return(exceptions.ErrUpdateResource(nil, "appointment", "appointments"))

		slice := fetchedAppointmentSlice(t, mockClient)

		err := slice.UpdateStatus(context.Background(), "1", models.AppointmentStatusCancelled)

		assert.Error(t, err)
		assert.Equal(t, models.AppointmentStatusScheduled, slice.Items()[0].Status)
		assert.NotEmpty(t, slice.Err())
	})

	t.Run("Unknown ID Is A No-Op", func(t *testing.T) {
		mockClient := new(MockAppointmentClient)
		mockClient.On("FindAll", mock.Anything).Return([]models.Appointment{
			{ID: "1", Status: models.AppointmentStatusScheduled},
		}, nil)
		mockClient.On("UpdateStatus", mock.Anything, "missing", models.AppointmentStatusConfirmed).Return(nil)

		slice := fetchedAppointmentSlice(t, mockClient)

		err := slice.UpdateStatus(context.Background(), "missing", models.AppointmentStatusConfirmed)

		assert.NoError(t, err)
		assert.Equal(t, models.AppointmentStatusScheduled, slice.Items()[0].Status)
	})
}

func TestAppointmentSlice_Create(t *testing.T) {
	mockClient := new(MockAppointmentClient)
	mockClient.On("Create", mock.Anything, mock.AnythingOfType("*requests.CreateAppointmentRequest")).
		Return(&models.Appointment{ID: "10", Status: models.AppointmentStatusScheduled}, nil)

	slice := NewAppointmentSlice(mockClient, zap.NewNop())

	created, err := slice.Create(context.Background(), &requests.CreateAppointmentRequest{
		Date:      "2024-06-01",
		Time:      "10:00",
		DoctorID:  "1",
		PatientID: "1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "10", created.ID)
	assert.Len(t, slice.Items(), 1)
}
