package contracts

import (
	"context"

	"dentassist-service/internal/app/models"
	"dentassist-service/internal/pkg/dto/requests"
	"dentassist-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	RegisterPatient(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error)
	Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error)
	Logout(ctx context.Context, session *models.Session) error
}
