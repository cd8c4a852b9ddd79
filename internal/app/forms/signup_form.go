package forms

import (
	"context"
	"fmt"

	"hospital-service/internal/app/store"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/models"
)

// SignupForm is the self-registration page state. Role-specific fields
// are only validated when the matching role is selected.
type SignupForm struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	DateOfBirth     string
	Address         string
	City            string
	State           string
	ZipCode         string
	Password        string
	ConfirmPassword string
	Role            models.Role

	// doctor
	Specialization string
	Experience     string
	Education      string
	LicenseNumber  string

	// patient
	BloodGroup     string
	EmergencyName  string
	EmergencyPhone string

	// lab technician
	Department string

	Errors map[string]string
}

func (f *SignupForm) Validate() bool {
	errs := make(map[string]string)

	if isBlank(f.FirstName) {
		errs["firstName"] = "First name is required"
	}
	if isBlank(f.LastName) {
		errs["lastName"] = "Last name is required"
	}
	if isBlank(f.Email) {
		errs["email"] = "Email is required"
	} else if !emailRegex.MatchString(f.Email) {
		errs["email"] = "Please enter a valid email address"
	}
	if isBlank(f.Phone) {
		errs["phone"] = "Phone number is required"
	}
	if f.DateOfBirth == "" {
		errs["dateOfBirth"] = "Date of birth is required"
	}
	if isBlank(f.Address) {
		errs["address"] = "Address is required"
	}
	if isBlank(f.City) {
		errs["city"] = "City is required"
	}
	if isBlank(f.State) {
		errs["state"] = "State is required"
	}
	if isBlank(f.ZipCode) {
		errs["zipCode"] = "ZIP code is required"
	}
	if len(f.Password) < 8 {
		errs["password"] = "Password must be at least 8 characters long"
	}
	if f.Password != f.ConfirmPassword {
		errs["confirmPassword"] = "Passwords do not match"
	}

	switch f.Role {
	case models.RoleDoctor:
		if f.Specialization == "" {
			errs["specialization"] = "Specialization is required"
		}
		if f.Experience == "" {
			errs["experience"] = "Experience is required"
		}
		if f.Education == "" {
			errs["education"] = "Education is required"
		}
		if f.LicenseNumber == "" {
			errs["licenseNumber"] = "License number is required"
		}
	case models.RolePatient:
		if f.BloodGroup == "" {
			errs["bloodGroup"] = "Blood group is required"
		}
		if f.EmergencyName == "" {
			errs["emergencyName"] = "Emergency contact name is required"
		}
		if f.EmergencyPhone == "" {
			errs["emergencyPhone"] = "Emergency contact phone is required"
		}
	case models.RoleLabTechnician:
		if f.Department == "" {
			errs["department"] = "Department is required"
		}
	}

	f.Errors = errs
	return len(errs) == 0
}

func (f *SignupForm) Submit(ctx context.Context, slice *store.AuthSlice) error {
	if !f.Validate() {
		return nil
	}

	err := slice.Register(ctx, &requests.RegisterUserRequest{
		Name:     fmt.Sprintf("%s %s", f.FirstName, f.LastName),
		Email:    f.Email,
		Password: f.Password,
		Role:     f.Role,
	})
	if err != nil {
		return err
	}

	*f = SignupForm{}
	return nil
}
