package contracts

import (
	"context"

	"dentassist-service/internal/app/models"
)

type TreatmentRepository interface {
	FindAllTreatments(ctx context.Context) ([]models.Treatment, error)
	FindTreatmentByCode(ctx context.Context, code string) (*models.Treatment, error)
	UpsertTreatment(ctx context.Context, treatment *models.Treatment) error
}
