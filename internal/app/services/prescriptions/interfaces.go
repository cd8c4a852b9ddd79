package prescriptions

import (
	"context"

	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/models"
)

type PrescriptionUsecase interface {
	FindAll(ctx context.Context) ([]models.Prescription, error)
	Create(ctx context.Context, request *requests.CreatePrescriptionRequest) (*models.Prescription, error)
	UpdateTestStatus(ctx context.Context, prescriptionID, testID string, request *requests.UpdateTestStatusRequest) (*models.Prescription, error)
}

type PrescriptionRepository interface {
	FindAll(ctx context.Context) ([]models.Prescription, error)
	FindByID(ctx context.Context, prescriptionID string) (*models.Prescription, error)
	Insert(ctx context.Context, prescription *models.Prescription) (*models.Prescription, error)
	UpdateTest(ctx context.Context, prescriptionID string, test *models.Test) (*models.Prescription, error)
}
