package contracts

import (
	"context"

	"dentassist-service/internal/app/models"
	"dentassist-service/internal/pkg/dto/requests"
)

type HealthPlanUsecase interface {
	GetHealthPlan(ctx context.Context, session *models.Session, patientID string) (*models.HealthPlan, error)
	UpsertHealthPlan(ctx context.Context, session *models.Session, patientID string, request *requests.UpsertHealthPlan) (*models.HealthPlan, error)
	ToggleProgress(ctx context.Context, session *models.Session, patientID string, request *requests.ToggleProgress) (*models.HealthPlan, error)
}
