package billing

import (
	"context"

	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/models"
)

type BillingUsecase interface {
	FindAll(ctx context.Context) ([]models.Billing, error)
	Create(ctx context.Context, request *requests.CreateBillingRequest) (*models.Billing, error)
	UpdateStatus(ctx context.Context, billingID string, request *requests.UpdateBillingStatusRequest) (*models.Billing, error)
}

type BillingRepository interface {
	FindAll(ctx context.Context) ([]models.Billing, error)
	FindByID(ctx context.Context, billingID string) (*models.Billing, error)
	Insert(ctx context.Context, record *models.Billing) (*models.Billing, error)
	Update(ctx context.Context, record *models.Billing) (*models.Billing, error)
}
