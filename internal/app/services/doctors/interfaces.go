package doctors

import (
	"context"

	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/models"
)

type DoctorUsecase interface {
	FindAll(ctx context.Context) ([]models.Doctor, error)
	Create(ctx context.Context, request *requests.CreateDoctorRequest) (*models.Doctor, error)
}

type DoctorRepository interface {
	FindAll(ctx context.Context) ([]models.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	Insert(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error)
}
