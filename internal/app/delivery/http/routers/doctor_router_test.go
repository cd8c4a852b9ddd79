package routers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-service/internal/app/services/doctors"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/models"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockDoctorUsecase struct {
	mock.Mock
}

func (m *MockDoctorUsecase) FindAll(ctx context.Context) ([]models.Doctor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorUsecase) Create(ctx context.Context, request *requests.CreateDoctorRequest) (*models.Doctor, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func TestDoctorRoutes(t *testing.T) {
	logger := zap.NewNop()
	mockDoctorUsecase := new(MockDoctorUsecase)

	doctorController := &doctors.DoctorController{
		Log:           logger,
		DoctorUsecase: mockDoctorUsecase,
	}

	router := chi.NewRouter()
	router.Route("/doctors", func(r chi.Router) {
		attachDoctorRoutes(r, doctorController)
	})

	t.Run("List Doctors", func(t *testing.T) {
		mockDoctorUsecase.On("FindAll", mock.Anything).Return([]models.Doctor{
			{ID: "1", Name: "Dr. Sarah Johnson"},
		}, nil).Once()

		req := httptest.NewRequest("GET", "/doctors", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var response responses.ResponseDTO
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.True(t, response.Success)
		assert.NotNil(t, response.Data)
	})

	t.Run("Create Doctor", func(t *testing.T) {
		mockDoctorUsecase.On("Create", mock.Anything, mock.AnythingOfType("*requests.CreateDoctorRequest")).
			Return(&models.Doctor{ID: "9", Name: "Dr. Arjun Rao"}, nil).Once()

		body, _ := json.Marshal(requests.CreateDoctorRequest{Name: "Dr. Arjun Rao"})
		req := httptest.NewRequest("POST", "/doctors", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code, "should return 201 Created")
		mockDoctorUsecase.AssertExpectations(t)
	})

	t.Run("Create With Invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/doctors", bytes.NewBufferString("not json"))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "should return 400 Bad Request for invalid JSON")
	})

	t.Run("Usecase Error Maps To Status Code", func(t *testing.T) {
		mockDoctorUsecase.On("FindAll", mock.Anything).
			Return(nil, exceptions.ErrServerProcess(nil)).Once()

		req := httptest.NewRequest("GET", "/doctors", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		var response exceptions.CustomError
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.False(t, response.Success)
		assert.NotEmpty(t, response.ClientMessage)
	})
}
