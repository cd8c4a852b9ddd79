package forms

import (
	"context"
	"time"

	"hospital-service/internal/app/store"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/models"
)

// BookAppointmentForm is the booking modal state on the patient dashboard.
type BookAppointmentForm struct {
	DoctorID    string
	PatientID   string
	Date        string
	Time        string
	Description string

	Errors map[string]string
}

func (f *BookAppointmentForm) Validate() bool {
	errs := make(map[string]string)

	if f.DoctorID == "" {
		errs["doctorId"] = "Please select a doctor"
	}
	if f.PatientID == "" {
		errs["patientId"] = "Patient is required"
	}
	if f.Date == "" {
		errs["date"] = "Date is required"
	} else if f.Date < time.Now().Format("2006-01-02") {
		// ISO dates compare lexicographically.
		errs["date"] = "Date cannot be in the past"
	}
	if f.Time == "" {
		errs["time"] = "Time is required"
	}
	if isBlank(f.Description) {
		errs["description"] = "Description is required"
	}

	f.Errors = errs
	return len(errs) == 0
}

func (f *BookAppointmentForm) Submit(ctx context.Context, slice *store.AppointmentSlice) (*models.Appointment, error) {
	if !f.Validate() {
		return nil, nil
	}

	created, err := slice.Create(ctx, &requests.CreateAppointmentRequest{
		Date:        f.Date,
		Time:        f.Time,
		Description: f.Description,
		DoctorID:    f.DoctorID,
		PatientID:   f.PatientID,
	})
	if err != nil {
		return nil, err
	}

	*f = BookAppointmentForm{}
	return created, nil
}
