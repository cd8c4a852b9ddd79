// Package contracts declares the client interfaces the state layer depends
// on. Every entity has one HTTP implementation talking to the upstream
// services and one mock implementation returning canned datasets.
package contracts

import (
	"context"

	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/models"
)

type DoctorClient interface {
	FindAll(ctx context.Context) ([]models.Doctor, error)
	Create(ctx context.Context, request *requests.CreateDoctorRequest) (*models.Doctor, error)
}

type PatientClient interface {
	FindAll(ctx context.Context) ([]models.Patient, error)
	Create(ctx context.Context, request *requests.CreatePatientRequest) (*models.Patient, error)
}

type AppointmentClient interface {
	FindAll(ctx context.Context) ([]models.Appointment, error)
	Create(ctx context.Context, request *requests.CreateAppointmentRequest) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID string, status models.AppointmentStatus) error
}

type PrescriptionClient interface {
	FindAll(ctx context.Context) ([]models.Prescription, error)
	Create(ctx context.Context, request *requests.CreatePrescriptionRequest) (*models.Prescription, error)
	UpdateTestStatus(ctx context.Context, prescriptionID, testID string, status models.TestStatus) error
}

type BillingClient interface {
	FindAll(ctx context.Context) ([]models.Billing, error)
	Create(ctx context.Context, request *requests.CreateBillingRequest) (*models.Billing, error)
	UpdateStatus(ctx context.Context, billingID string, status models.BillingStatus, paidAmount float64) error
}

type AuthClient interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, request *requests.RegisterUserRequest) error
	Logout(ctx context.Context) error
}
