package tests

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

func seedTestsFromPrescriptions() []models.Test {
	var seed []models.Test
	for _, p := range mockdata.Prescriptions() {
		seed = append(seed, p.Tests...)
	}
	return seed
}

func TestTestUsecase(t *testing.T) {
	usecase := NewTestUsecase(NewTestInMemoryRepository(seedTestsFromPrescriptions()), zap.NewNop())
	ctx := context.Background()

	t.Run("FindAll Returns The Catalog", func(t *testing.T) {
		catalog, err := usecase.FindAll(ctx)

		assert.NoError(t, err)
		assert.NotEmpty(t, catalog)
		assert.Equal(t, "Blood Test", catalog[0].Name)
		assert.Equal(t, models.TestStatusPending, catalog[0].Status)
	})

	t.Run("Create Defaults To Pending", func(t *testing.T) {
		created, err := usecase.Create(ctx, &requests.CreateTestRequest{
			Name:         "Lipid Profile",
			Description:  "Cholesterol panel",
			Price:        60,
			Preparation:  "Fasting required for 12 hours",
			PrescribedBy: "Dr. Sarah Johnson",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, models.TestStatusPending, created.Status)
		assert.False(t, created.PrescribedAt.IsZero())
	})

	t.Run("UpdateStatus Completes A Test", func(t *testing.T) {
		updated, err := usecase.UpdateStatus(ctx, "1", &requests.UpdateTestStatusRequest{
			Status: models.TestStatusCompleted,
			Result: "Normal",
		})

		assert.NoError(t, err)
		assert.Equal(t, models.TestStatusCompleted, updated.Status)
		assert.Equal(t, "Normal", updated.Result)
		assert.NotNil(t, updated.CompletedAt)
	})

	t.Run("UpdateStatus Rejects Unknown Status", func(t *testing.T) {
		updated, err := usecase.UpdateStatus(ctx, "1", &requests.UpdateTestStatusRequest{
			Status: models.TestStatus("archived"),
		})

		assert.Nil(t, updated)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("UpdateStatus Rejects Unknown Test", func(t *testing.T) {
		updated, err := usecase.UpdateStatus(ctx, "missing", &requests.UpdateTestStatusRequest{
			Status: models.TestStatusCancelled,
		})

		assert.Nil(t, updated)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
