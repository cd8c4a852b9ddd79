package routers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-service/internal/app/services/appointments"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/models"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) FindAll(ctx context.Context) ([]models.Appointment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) Create(ctx context.Context, request *requests.CreateAppointmentRequest) (*models.Appointment, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) UpdateStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatusRequest) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func TestAppointmentRoutes(t *testing.T) {
	logger := zap.NewNop()
	mockAppointmentUsecase := new(MockAppointmentUsecase)

	appointmentController := &appointments.AppointmentController{
		Log:                logger,
		AppointmentUsecase: mockAppointmentUsecase,
	}

	router := chi.NewRouter()
	router.Route("/appointments", func(r chi.Router) {
		attachAppointmentRoutes(r, appointmentController)
	})

	t.Run("Status Patch Routes The Path Parameter", func(t *testing.T) {
		mockAppointmentUsecase.On("UpdateStatus", mock.Anything, "42", mock.MatchedBy(func(request *requests.UpdateAppointmentStatusRequest) bool {
			return request.Status == models.AppointmentStatusConfirmed
		})).Return(&models.Appointment{ID: "42", Status: models.AppointmentStatusConfirmed}, nil).Once()

		body, _ := json.Marshal(requests.UpdateAppointmentStatusRequest{Status: models.AppointmentStatusConfirmed})
		req := httptest.NewRequest("PATCH", "/appointments/42/status", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockAppointmentUsecase.AssertExpectations(t)
	})

	t.Run("Unknown Appointment Returns 404", func(t *testing.T) {
		mockAppointmentUsecase.On("UpdateStatus", mock.Anything, "missing", mock.Anything).
			Return(nil, exceptions.ErrRecordNotFound(nil, "appointment")).Once()

		body, _ := json.Marshal(requests.UpdateAppointmentStatusRequest{Status: models.AppointmentStatusConfirmed})
		req := httptest.NewRequest("PATCH", "/appointments/missing/status", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
