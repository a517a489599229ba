package contracts

import (
	"context"

	"dentassist-service/internal/app/models"
	"dentassist-service/internal/pkg/dto/requests"
	"dentassist-service/internal/pkg/dto/responses"
)

type PaymentUsecase interface {
	ListPayments(ctx context.Context, session *models.Session, patientID string) ([]models.Payment, error)
	CreatePayment(ctx context.Context, session *models.Session, patientID string, request *requests.CreatePayment) (*models.Payment, error)
	GetPaymentStats(ctx context.Context, session *models.Session, patientID string) (*responses.PaymentStats, error)
	GetDailyStats(ctx context.Context, session *models.Session, date string) (*responses.DailyPaymentStats, error)
}
