package billing

import (
	"context"
	"testing"

	"hospital-service/internal/app/clients/mockdata"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestBillingUsecase(t *testing.T) {
	usecase := NewBillingUsecase(NewBillingInMemoryRepository(mockdata.Billing()), zap.NewNop())
	ctx := context.Background()

	t.Run("Create Assigns Item IDs", func(t *testing.T) {
		created, err := usecase.Create(ctx, &requests.CreateBillingRequest{
			PatientID:   "3",
			PatientName: "Mike Johnson",
			Items: []models.BillingItem{
				{Name: "Consultation - Dr. Emily Rodriguez", Type: models.BillingItemConsultation, Quantity: 1, UnitPrice: 120, TotalPrice: 120},
			},
			TotalAmount: 120,
			PaidAmount:  0,
			Status:      models.BillingStatusPending,
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.NotEmpty(t, created.Items[0].ID, "items without an ID get one assigned")
		assert.Nil(t, created.PaidAt)
	})

	t.Run("Create Stamps PaidAt For Paid Records", func(t *testing.T) {
		created, err := usecase.Create(ctx, &requests.CreateBillingRequest{
			PatientID:   "1",
			PatientName: "John Doe",
			Items: []models.BillingItem{
				{Name: "Blood Test", Type: models.BillingItemTest, Quantity: 1, UnitPrice: 45, TotalPrice: 45},
			},
			TotalAmount: 45,
			PaidAmount:  45,
			Status:      models.BillingStatusPaid,
		})

		assert.NoError(t, err)
		assert.NotNil(t, created.PaidAt)
	})

	t.Run("Create Rejects Empty Item List", func(t *testing.T) {
		created, err := usecase.Create(ctx, &requests.CreateBillingRequest{
			PatientID:   "1",
			PatientName: "John Doe",
			TotalAmount: 100,
			Status:      models.BillingStatusPending,
		})

		assert.Nil(t, created)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("UpdateStatus Stamps PaidAt On Transition To Paid", func(t *testing.T) {
		updated, err := usecase.UpdateStatus(ctx, "2", &requests.UpdateBillingStatusRequest{
			Status:     models.BillingStatusPaid,
			PaidAmount: 200,
		})

		assert.NoError(t, err)
		assert.Equal(t, models.BillingStatusPaid, updated.Status)
		assert.Equal(t, 200.0, updated.PaidAmount)
		assert.NotNil(t, updated.PaidAt)
	})

	t.Run("UpdateStatus Rejects Unknown Record", func(t *testing.T) {
		updated, err := usecase.UpdateStatus(ctx, "missing", &requests.UpdateBillingStatusRequest{
			Status:     models.BillingStatusPaid,
			PaidAmount: 10,
		})

		assert.Nil(t, updated)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("UpdateStatus Rejects Unknown Status", func(t *testing.T) {
		updated, err := usecase.UpdateStatus(ctx, "1", &requests.UpdateBillingStatusRequest{
			Status:     models.BillingStatus("refunded"),
			PaidAmount: 0,
		})

		assert.Nil(t, updated)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}
