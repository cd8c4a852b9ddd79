package tests

import (
	"context"

	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/models"
)

type TestUsecase interface {
	FindAll(ctx context.Context) ([]models.Test, error)
	Create(ctx context.Context, request *requests.CreateTestRequest) (*models.Test, error)
	UpdateStatus(ctx context.Context, testID string, request *requests.UpdateTestStatusRequest) (*models.Test, error)
}

type TestRepository interface {
	FindAll(ctx context.Context) ([]models.Test, error)
	FindByID(ctx context.Context, testID string) (*models.Test, error)
	Insert(ctx context.Context, test *models.Test) (*models.Test, error)
	Update(ctx context.Context, test *models.Test) (*models.Test, error)
}
