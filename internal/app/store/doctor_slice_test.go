package store

import (
	"context"
	"testing"
	"time"

	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockDoctorClient struct {
	mock.Mock
}

func (m *MockDoctorClient) FindAll(ctx context.Context) ([]models.Doctor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorClient) Create(ctx context.Context, request *requests.CreateDoctorRequest) (*models.Doctor, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Doctor), args.Error(1)
}

func TestDoctorSlice_FetchAll(t *testing.T) {
	t.Run("Replaces Collection On Success", func(t *testing.T) {
		mockClient := new(MockDoctorClient)
		mockClient.On("FindAll", mock.Anything).Return([]models.Doctor{
			{ID: "1", Name: "Dr. Sarah Johnson"},
			{ID: "2", Name: "Dr. Michael Chen"},
		}, nil)

		slice := NewDoctorSlice(mockClient, zap.NewNop())

		err := slice.FetchAll(context.Background())

		assert.NoError(t, err)
		assert.Len(t, slice.Items(), 2, "collection should hold the fetched records")
		assert.False(t, slice.Loading(), "loading should be cleared after the fetch completes")
		assert.Empty(t, slice.Err())
	})

	t.Run("Retry Clears Previous Error At Dispatch", func(t *testing.T) {
		release := make(chan struct{})
		mockClient := new(MockDoctorClient)
		mockClient.On("FindAll", mock.Anything).Return(nil, exceptions.ErrServerProcess(nil)).Once()
		mockClient.On("FindAll", mock.Anything).
			Run(func(mock.Arguments) { <-release }).
			Return([]models.Doctor{{ID: "1"}}, nil).Once()

		slice := NewDoctorSlice(mockClient, zap.NewNop())
		assert.Error(t, slice.FetchAll(context.Background()))
		assert.NotEmpty(t, slice.Err())

		done := make(chan error, 1)
		go func() { done <- slice.FetchAll(context.Background()) }()
		assert.Eventually(t, slice.Loading, time.Second, time.Millisecond)
		assert.Empty(t, slice.Err(), "starting a retry should reset the previous error")

		close(release)
		assert.NoError(t, <-done)
		assert.Empty(t, slice.Err())
	})

	t.Run("Records Error And Leaves Collection Untouched", func(t *testing.T) {
		mockClient := new(MockDoctorClient)
		mockClient.On("FindAll", mock.Anything).Return([]models.Doctor{{ID: "1"}}, nil).Once()
		mockClient.On("FindAll", mock.Anything).Return(nil, exceptions.ErrServerProcess(nil)).Once()

		slice := NewDoctorSlice(mockClient, zap.NewNop())

		assert.NoError(t, slice.FetchAll(context.Background()))
		err := slice.FetchAll(context.Background())

		assert.Error(t, err)
		assert.Len(t, slice.Items(), 1, "failed fetch must not touch the collection")
		assert.False(t, slice.Loading())
		assert.NotEmpty(t, slice.Err(), "failed fetch should record a user-facing message")
	})
}

func TestDoctorSlice_Create(t *testing.T) {
	t.Run("Appends Created Record", func(t *testing.T) {
		mockClient := new(MockDoctorClient)
		mockClient.On("FindAll", mock.Anything).Return([]models.Doctor{{ID: "1"}}, nil)
		mockClient.On("Create", mock.Anything, mock.AnythingOfType("*requests.CreateDoctorRequest")).
			Return(&models.Doctor{ID: "2", Name: "Dr. Lisa Wang"}, nil)

		slice := NewDoctorSlice(mockClient, zap.NewNop())
		assert.NoError(t, slice.FetchAll(context.Background()))

		created, err := slice.Create(context.Background(), &requests.CreateDoctorRequest{Name: "Dr. Lisa Wang"})

		assert.NoError(t, err)
		assert.NotNil(t, created)
		items := slice.Items()
		assert.Len(t, items, 2, "create should append exactly one record")
		assert.Equal(t, "Dr. Lisa Wang", items[1].Name)
	})

	t.Run("Failure Leaves Collection Untouched", func(t *testing.T) {
		mockClient := new(MockDoctorClient)
		mockClient.On("Create", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrServerProcess(nil))

		slice := NewDoctorSlice(mockClient, zap.NewNop())

		created, err := slice.Create(context.Background(), &requests.CreateDoctorRequest{})

		assert.Error(t, err)
		assert.Nil(t, created)
		assert.Empty(t, slice.Items())
		assert.NotEmpty(t, slice.Err())
	})
}

func TestDoctorSlice_Selected(t *testing.T) {
	slice := NewDoctorSlice(new(MockDoctorClient), zap.NewNop())

	assert.Nil(t, slice.Selected())

	slice.SetSelected(&models.Doctor{ID: "1", Name: "Dr. Sarah Johnson"})
	selected := slice.Selected()
	assert.NotNil(t, selected)
	assert.Equal(t, "1", selected.ID)

	slice.SetSelected(nil)
	assert.Nil(t, slice.Selected())
}

func TestDoctorSlice_ClearError(t *testing.T) {
	mockClient := new(MockDoctorClient)
	mockClient.On("FindAll", mock.Anything).Return(nil, exceptions.ErrServerProcess(nil))

	slice := NewDoctorSlice(mockClient, zap.NewNop())
	assert.Error(t, slice.FetchAll(context.Background()))
	assert.NotEmpty(t, slice.Err())

	slice.ClearError()
	assert.Empty(t, slice.Err())
}
