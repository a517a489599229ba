package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"dentassist-service/internal/app/config"
	"dentassist-service/internal/app/contracts"
	"dentassist-service/internal/app/models"
	"dentassist-service/internal/pkg/constvars"
	"dentassist-service/internal/pkg/dto/requests"
	"dentassist-service/internal/pkg/dto/responses"
	"dentassist-service/internal/pkg/exceptions"
	"dentassist-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository    contracts.UserRepository
	ProfileRepository contracts.ProfileRepository
	SessionService    contracts.SessionService
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	profileRepository contracts.ProfileRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			UserRepository:    userRepository,
			ProfileRepository: profileRepository,
			SessionService:    sessionService,
			InternalConfig:    internalConfig,
			Log:               logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) RegisterPatient(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.RegisterPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	if request.Password != request.RetypePassword {
		return nil, exceptions.ErrPasswordDoNotMatch(errors.New("password and retype_password differ"))
	}

	existing, err := uc.UserRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(fmt.Errorf("email %s", request.Email))
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	profile := &models.Profile{
		Email:     request.Email,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Phone:     request.Phone,
		Role:      constvars.RolePatient,
	}
	profileID, err := uc.ProfileRepository.CreateProfile(ctx, profile)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:     request.Email,
		Password:  hashed,
		Role:      constvars.RolePatient,
		ProfileID: profileID,
	}
	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "patient_registered", requestID,
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	return &responses.RegisterUser{
		UserID:    userID,
		ProfileID: profileID,
		Email:     request.Email,
		Role:      constvars.RolePatient,
	}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	user, err := uc.UserRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(errors.New("credentials do not match"))
	}

	expiryHours := uc.InternalConfig.App.LoginSessionExpiredTimeInHours
	session := &models.Session{
		SessionID: uuid.NewString(),
		UserID:    user.ID,
		ProfileID: user.ProfileID,
		Email:     user.Email,
		Role:      user.Role,
		ExpiresAt: time.Now().Add(time.Duration(expiryHours) * time.Hour),
	}
	if err := uc.SessionService.StoreSession(ctx, session, time.Duration(expiryHours)*time.Hour); err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, expiryHours)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	utils.LogBusinessEvent(uc.Log, "user_logged_in", requestID,
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)

	return &responses.LoginUser{
		Token:     token,
		ProfileID: user.ProfileID,
		Role:      user.Role,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, session *models.Session) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := uc.SessionService.DeleteSession(ctx, session.SessionID); err != nil {
		return err
	}

	utils.LogBusinessEvent(uc.Log, "user_logged_out", requestID,
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)
	return nil
}
