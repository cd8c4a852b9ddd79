package tests

import (
	"context"
	"sync"
	"time"

	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/models"
	"hospital-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type testUsecase struct {
	TestRepository TestRepository
	Log            *zap.Logger
}

var (
	testUsecaseInstance TestUsecase
	onceTestUsecase     sync.Once
)

func NewTestUsecase(testRepository TestRepository, logger *zap.Logger) TestUsecase {
	onceTestUsecase.Do(func() {
		testUsecaseInstance = &testUsecase{
			TestRepository: testRepository,
			Log:            logger,
		}
	})
	return testUsecaseInstance
}

func (uc *testUsecase) FindAll(ctx context.Context) ([]models.Test, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("testUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	tests, err := uc.TestRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("testUsecase.FindAll error retrieving tests",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return tests, nil
}

func (uc *testUsecase) Create(ctx context.Context, request *requests.CreateTestRequest) (*models.Test, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("testUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	test := &models.Test{
		ID:           utils.GenerateRecordID(),
		Name:         request.Name,
		Description:  request.Description,
		Price:        request.Price,
		Preparation:  request.Preparation,
		Status:       models.TestStatusPending,
		PrescribedBy: request.PrescribedBy,
		PrescribedAt: time.Now().UTC(),
	}

	created, err := uc.TestRepository.Insert(ctx, test)
	if err != nil {
		uc.Log.Error("testUsecase.Create error inserting test",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("testUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTestIDKey, created.ID),
	)
	return created, nil
}

func (uc *testUsecase) UpdateStatus(ctx context.Context, testID string, request *requests.UpdateTestStatusRequest) (*models.Test, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("testUsecase.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTestIDKey, testID),
		zap.String(constvars.LoggingStatusKey, string(request.Status)),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if !request.Status.Valid() {
		return nil, exceptions.ErrInvalidStatusTransition(nil, constvars.ResourceTest)
	}

	test, err := uc.TestRepository.FindByID(ctx, testID)
	if err != nil {
		return nil, err
	}
	if test == nil {
		return nil, exceptions.ErrRecordNotFound(nil, constvars.ResourceTest)
	}

	test.Status = request.Status
	if request.Result != "" {
		test.Result = request.Result
	}
	if request.Status == models.TestStatusCompleted {
		now := time.Now().UTC()
		test.CompletedAt = &now
	}

	updated, err := uc.TestRepository.Update(ctx, test)
	if err != nil {
		uc.Log.Error("testUsecase.UpdateStatus error updating test",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return updated, nil
}
