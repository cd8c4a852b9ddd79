package forms

import (
	"context"
	"testing"

	"hospital-service/internal/app/store"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockDoctorClient struct {
	mock.Mock
}

func (m *MockDoctorClient) FindAll(ctx context.Context) ([]models.Doctor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorClient) Create(ctx context.Context, request *requests.CreateDoctorRequest) (*models.Doctor, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func validAddDoctorForm() AddDoctorForm {
	return AddDoctorForm{
		Name:           "Dr. Priya Sharma",
		Age:            38,
		Specialization: "Cardiology",
		Experience:     10,
		ContactNo:      "9876543210",
		Availability:   []string{"Monday", "Wednesday"},
		InTiming:       "09:00",
		OutTiming:      "17:00",
		Email:          "priya.sharma@hospital.com",
		Description:    "Senior cardiologist",
	}
}

func TestAddDoctorForm_Validate(t *testing.T) {
	t.Run("Valid Form Has No Errors", func(t *testing.T) {
		form := validAddDoctorForm()

		assert.True(t, form.Validate())
		assert.Empty(t, form.Errors)
	})

	t.Run("Zero Age Is Rejected", func(t *testing.T) {
		form := validAddDoctorForm()
		form.Age = 0

		assert.False(t, form.Validate())
		assert.Equal(t, "Age must be greater than 0", form.Errors["age"])
	})

	t.Run("Negative Experience Is Rejected", func(t *testing.T) {
		form := validAddDoctorForm()
		form.Experience = -1

		assert.False(t, form.Validate())
		assert.Equal(t, "Experience cannot be negative", form.Errors["experience"])
	})

	t.Run("Malformed Email Is Rejected", func(t *testing.T) {
		form := validAddDoctorForm()
		form.Email = "not-an-email"

		assert.False(t, form.Validate())
		assert.Equal(t, "Please enter a valid email", form.Errors["email"])
	})

	t.Run("Empty Availability Is Rejected", func(t *testing.T) {
		form := validAddDoctorForm()
		form.Availability = nil

		assert.False(t, form.Validate())
		assert.Equal(t, "Please select at least one available day", form.Errors["availability"])
	})

	t.Run("Blank Name Is Rejected", func(t *testing.T) {
		form := validAddDoctorForm()
		form.Name = "   "

		assert.False(t, form.Validate())
		assert.Equal(t, "Name is required", form.Errors["name"])
	})
}

func TestAddDoctorForm_Submit(t *testing.T) {
	t.Run("Valid Form Dispatches And Resets", func(t *testing.T) {
		mockClient := new(MockDoctorClient)
		mockClient.On("Create", mock.Anything, mock.MatchedBy(func(request *requests.CreateDoctorRequest) bool {
			return request.Name == "Dr. Priya Sharma" && len(request.Availability) == 2
		})).Return(&models.Doctor{ID: "10", Name: "Dr. Priya Sharma"}, nil)

		slice := store.NewDoctorSlice(mockClient, zap.NewNop())
		form := validAddDoctorForm()

		created, err := form.Submit(context.Background(), slice)

		assert.NoError(t, err)
		assert.Equal(t, "10", created.ID)
		assert.Empty(t, form.Name, "submit should reset the form on success")
		mockClient.AssertExpectations(t)
	})

	t.Run("Invalid Form Never Dispatches", func(t *testing.T) {
		mockClient := new(MockDoctorClient)
		slice := store.NewDoctorSlice(mockClient, zap.NewNop())

		form := validAddDoctorForm()
		form.Age = 0

		created, err := form.Submit(context.Background(), slice)

		assert.NoError(t, err)
		assert.Nil(t, created)
		assert.NotEmpty(t, form.Errors)
		mockClient.AssertNotCalled(t, "Create")
	})
}
