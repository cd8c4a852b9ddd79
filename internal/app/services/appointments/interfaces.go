package appointments

import (
	"context"

	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/models"
)

type AppointmentUsecase interface {
	FindAll(ctx context.Context) ([]models.Appointment, error)
	Create(ctx context.Context, request *requests.CreateAppointmentRequest) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatusRequest) (*models.Appointment, error)
}

type AppointmentRepository interface {
	FindAll(ctx context.Context) ([]models.Appointment, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	Insert(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID string, status models.AppointmentStatus) (*models.Appointment, error)
}
