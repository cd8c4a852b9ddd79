package users

import (
	"context"
	"sync"

	"hospital-service/internal/app/config"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/models"
	"hospital-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository UserRepository
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

var (
	userUsecaseInstance UserUsecase
	onceUserUsecase     sync.Once
)

func NewUserUsecase(userRepository UserRepository, internalConfig *config.InternalConfig, logger *zap.Logger) UserUsecase {
	onceUserUsecase.Do(func() {
		userUsecaseInstance = &userUsecase{
			UserRepository: userRepository,
			InternalConfig: internalConfig,
			Log:            logger,
		}
	})
	return userUsecaseInstance
}

func (uc *userUsecase) Login(ctx context.Context, request *requests.LoginRequest) (*responses.LoginResponse, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("userUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserEmailKey, request.Email),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	account, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if account == nil || !utils.CheckPasswordHash(request.Password, account.PasswordHash) {
		uc.Log.Warn("userUsecase.Login rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserEmailKey, request.Email),
		)
		return nil, exceptions.ErrInvalidCredentials(nil)
	}

	token, err := utils.GenerateSessionJWT(account.ID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("userUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserEmailKey, account.Email),
		zap.String(constvars.LoggingRoleKey, string(account.Role)),
	)
	return &responses.LoginResponse{User: account.User, Token: token}, nil
}

func (uc *userUsecase) Register(ctx context.Context, request *requests.RegisterUserRequest) (*models.User, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("userUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserEmailKey, request.Email),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	existing, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hash, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	account := &UserAccount{
		User: models.User{
			ID:     utils.GenerateRecordID(),
			Name:   request.Name,
			Email:  request.Email,
			Role:   request.Role,
			Avatar: request.Avatar,
		},
		PasswordHash: hash,
	}

	created, err := uc.UserRepository.Insert(ctx, account)
	if err != nil {
		uc.Log.Error("userUsecase.Register error inserting user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("userUsecase.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserEmailKey, created.Email),
	)
	user := created.User
	return &user, nil
}
