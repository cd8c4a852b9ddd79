package patients

import (
	"context"

	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/models"
)

type PatientUsecase interface {
	FindAll(ctx context.Context) ([]models.Patient, error)
	Create(ctx context.Context, request *requests.CreatePatientRequest) (*models.Patient, error)
}

type PatientRepository interface {
	FindAll(ctx context.Context) ([]models.Patient, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	Insert(ctx context.Context, patient *models.Patient) (*models.Patient, error)
}
