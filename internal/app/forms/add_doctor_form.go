package forms

import (
	"context"

	"hospital-service/internal/app/store"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/models"
)

// AddDoctorForm is the add-doctor modal state.
type AddDoctorForm struct {
	Name           string
	Age            int
	Specialization string
	Experience     int
	ContactNo      string
	Availability   []string
	InTiming       string
	OutTiming      string
	Email          string
	Description    string

	Errors map[string]string
}

// Validate fills Errors and reports whether the form may be submitted.
func (f *AddDoctorForm) Validate() bool {
	errs := make(map[string]string)

	if isBlank(f.Name) {
		errs["name"] = "Name is required"
	}
	if f.Age <= 0 {
		errs["age"] = "Age must be greater than 0"
	}
	if f.Specialization == "" {
		errs["specialization"] = "Specialization is required"
	}
	if f.Experience < 0 {
		errs["experience"] = "Experience cannot be negative"
	}
	if isBlank(f.ContactNo) {
		errs["contactNo"] = "Contact number is required"
	}
	if isBlank(f.Email) {
		errs["email"] = "Email is required"
	} else if !emailRegex.MatchString(f.Email) {
		errs["email"] = "Please enter a valid email"
	}
	if f.InTiming == "" {
		errs["inTiming"] = "In timing is required"
	}
	if f.OutTiming == "" {
		errs["outTiming"] = "Out timing is required"
	}
	if len(f.Availability) == 0 {
		errs["availability"] = "Please select at least one available day"
	}
	if isBlank(f.Description) {
		errs["description"] = "Description is required"
	}

	f.Errors = errs
	return len(errs) == 0
}

// Submit validates and, only on success, dispatches the create to the
// doctor slice and resets the form.
func (f *AddDoctorForm) Submit(ctx context.Context, slice *store.DoctorSlice) (*models.Doctor, error) {
	if !f.Validate() {
		return nil, nil
	}

	availability := make([]requests.DayAvailability, 0, len(f.Availability))
	for _, day := range f.Availability {
		availability = append(availability, requests.DayAvailability{DayOfWeek: day})
	}

	created, err := slice.Create(ctx, &requests.CreateDoctorRequest{
		Name:           f.Name,
		Age:            f.Age,
		Specialization: f.Specialization,
		Experience:     f.Experience,
		ContactNo:      f.ContactNo,
		Availability:   availability,
		InTiming:       f.InTiming,
		OutTiming:      f.OutTiming,
		Email:          f.Email,
		Description:    f.Description,
	})
	if err != nil {
		return nil, err
	}

	*f = AddDoctorForm{}
	return created, nil
}
