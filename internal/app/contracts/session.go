package contracts

import (
	"context"
	"time"

	"dentassist-service/internal/app/models"
)

type SessionService interface {
	StoreSession(ctx context.Context, session *models.Session, exp time.Duration) error
	ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error)
	GetSessionData(ctx context.Context, sessionID string) (sessionData string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
}
