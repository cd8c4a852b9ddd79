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

type MockAuthClient struct {
	mock.Mock
}

func (m *MockAuthClient) Login(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthClient) Register(ctx context.Context, request *requests.RegisterUserRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockAuthClient) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func validSignupForm(role models.Role) SignupForm {
	form := SignupForm{
		FirstName:       "Anita",
		LastName:        "Desai",
		Email:           "anita.desai@email.com",
		Phone:           "9876543210",
		DateOfBirth:     "1990-04-12",
		Address:         "12 Lake View",
		City:            "Mumbai",
		State:           "Maharashtra",
		ZipCode:         "400001",
		Password:        "password123",
		ConfirmPassword: "password123",
		Role:            role,
	}
	switch role {
	case models.RoleDoctor:
		form.Specialization = "Cardiology"
		form.Experience = "8"
		form.Education = "MBBS, MD"
		form.LicenseNumber = "MH-12345"
	case models.RolePatient:
		form.BloodGroup = "O+"
		form.EmergencyName = "Ravi Desai"
		form.EmergencyPhone = "9876543211"
	case models.RoleLabTechnician:
		form.Department = "Pathology"
	}
	return form
}

func TestSignupForm_Validate(t *testing.T) {
	t.Run("Valid Patient Form Has No Errors", func(t *testing.T) {
		form := validSignupForm(models.RolePatient)

		assert.True(t, form.Validate())
		assert.Empty(t, form.Errors)
	})

	t.Run("Short Password Is Rejected", func(t *testing.T) {
		form := validSignupForm(models.RolePatient)
		form.Password = "short"
		form.ConfirmPassword = "short"

		assert.False(t, form.Validate())
		assert.Equal(t, "Password must be at least 8 characters long", form.Errors["password"])
	})

	t.Run("Password Mismatch Is Rejected", func(t *testing.T) {
		form := validSignupForm(models.RolePatient)
		form.ConfirmPassword = "different-one"

		assert.False(t, form.Validate())
		assert.Equal(t, "Passwords do not match", form.Errors["confirmPassword"])
	})

	t.Run("Malformed Email Is Rejected", func(t *testing.T) {
		form := validSignupForm(models.RolePatient)
		form.Email = "anita.desai"

		assert.False(t, form.Validate())
		assert.Equal(t, "Please enter a valid email address", form.Errors["email"])
	})

	t.Run("Doctor Role Requires License Number", func(t *testing.T) {
		form := validSignupForm(models.RoleDoctor)
		form.LicenseNumber = ""

		assert.False(t, form.Validate())
		assert.Equal(t, "License number is required", form.Errors["licenseNumber"])
	})

	t.Run("Patient Role Requires Emergency Contact", func(t *testing.T) {
		form := validSignupForm(models.RolePatient)
		form.EmergencyName = ""

		assert.False(t, form.Validate())
		assert.Equal(t, "Emergency contact name is required", form.Errors["emergencyName"])
	})

	t.Run("Lab Technician Role Requires Department", func(t *testing.T) {
		form := validSignupForm(models.RoleLabTechnician)
		form.Department = ""

		assert.False(t, form.Validate())
		assert.Equal(t, "Department is required", form.Errors["department"])
	})

	t.Run("Role Fields Are Skipped For Other Roles", func(t *testing.T) {
		form := validSignupForm(models.RolePatient)
		form.LicenseNumber = ""
		form.Department = ""

		assert.True(t, form.Validate(), "doctor and lab fields must not bind on a patient signup")
	})
}

func TestSignupForm_Submit(t *testing.T) {
	t.Run("Dispatches Register With Combined Name", func(t *testing.T) {
		mockClient := new(MockAuthClient)
		mockClient.On("Register", mock.Anything, mock.MatchedBy(func(request *requests.RegisterUserRequest) bool {
			return request.Name == "Anita Desai" && request.Role == models.RolePatient
		})).Return(nil)

		slice := store.NewAuthSlice(mockClient, zap.NewNop())
		form := validSignupForm(models.RolePatient)

		err := form.Submit(context.Background(), slice)

		assert.NoError(t, err)
		assert.Empty(t, form.FirstName, "submit should reset the form on success")
		mockClient.AssertExpectations(t)
	})

	t.Run("Invalid Form Never Dispatches", func(t *testing.T) {
		mockClient := new(MockAuthClient)
		slice := store.NewAuthSlice(mockClient, zap.NewNop())

		form := validSignupForm(models.RolePatient)
		form.Password = "short"
		form.ConfirmPassword = "short"

		err := form.Submit(context.Background(), slice)

		assert.NoError(t, err)
		mockClient.AssertNotCalled(t, "Register")
	})
}
