package store

import (
	"context"
	"testing"
	"time"

	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockBillingClient struct {
	mock.Mock
}

func (m *MockBillingClient) FindAll(ctx context.Context) ([]models.Billing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Billing), args.Error(1)
}

func (m *MockBillingClient) Create(ctx context.Context, request *requests.CreateBillingRequest) (*models.Billing, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Billing), args.Error(1)
}

func (m *MockBillingClient) UpdateStatus(ctx context.Context, billingID string, status models.BillingStatus, paidAmount float64) error {
	args := m.Called(ctx, billingID, status, paidAmount)
	return args.Error(0)
}

func TestBillingSlice_UpdateStatus(t *testing.T) {
	newSlice := func(t *testing.T) *BillingSlice {
		t.Helper()
		mockClient := new(MockBillingClient)
		mockClient.On("FindAll", mock.Anything).Return([]models.Billing{
			{ID: "1", Status: models.BillingStatusPending, TotalAmount: 200},
			{ID: "2", Status: models.BillingStatusPending, TotalAmount: 150},
		}, nil)
		mockClient.On("UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		slice := NewBillingSlice(mockClient, zap.NewNop())
		assert.NoError(t, slice.FetchAll(context.Background()))
		return slice
	}

	t.Run("Transition To Paid Stamps PaidAt", func(t *testing.T) {
		slice := newSlice(t)
		before := time.Now().UTC()

		err := slice.UpdateStatus(context.Background(), "1", models.BillingStatusPaid, 200)

		assert.NoError(t, err)
		record := slice.Items()[0]
		assert.Equal(t, models.BillingStatusPaid, record.Status)
		assert.Equal(t, 200.0, record.PaidAmount)
		assert.NotNil(t, record.PaidAt, "paid records must carry a payment timestamp")
		assert.False(t, record.PaidAt.Before(before))
	})

	t.Run("Partial Payment Leaves PaidAt Nil", func(t *testing.T) {
		slice := newSlice(t)

		err := slice.UpdateStatus(context.Background(), "1", models.BillingStatusPartial, 100)

		assert.NoError(t, err)
		record := slice.Items()[0]
		assert.Equal(t, models.BillingStatusPartial, record.Status)
		assert.Equal(t, 100.0, record.PaidAmount)
		assert.Nil(t, record.PaidAt, "only the transition to paid stamps PaidAt")
	})

	t.Run("Other Records Are Untouched", func(t *testing.T) {
		slice := newSlice(t)

		err := slice.UpdateStatus(context.Background(), "1", models.BillingStatusPaid, 200)

		assert.NoError(t, err)
		other := slice.Items()[1]
		assert.Equal(t, models.BillingStatusPending, other.Status)
		assert.Zero(t, other.PaidAmount)
		assert.Nil(t, other.PaidAt)
	})
}
