package contracts

import (
	"context"
	"mime/multipart"

	"dentassist-service/internal/app/models"
	"dentassist-service/internal/pkg/dto/requests"
	"dentassist-service/internal/pkg/dto/responses"
)

type EducationFilter struct {
	Search   string
	Category string
	Level    string
	Status   string
}

type EducationRepository interface {
	CreateContent(ctx context.Context, content *models.EducationalContent) (string, error)
	FindContentByID(ctx context.Context, contentID string) (*models.EducationalContent, error)
	ListContent(ctx context.Context, filter EducationFilter, pagination *requests.Pagination) ([]models.EducationalContent, int, error)
	UpdateContent(ctx context.Context, content *models.EducationalContent) error
	DeleteContent(ctx context.Context, contentID string) error
}

type EducationUsecase interface {
	ListContent(ctx context.Context, session *models.Session, filter EducationFilter, pagination *requests.Pagination) ([]models.EducationalContent, int, error)
	GetContent(ctx context.Context, session *models.Session, contentID string) (*models.EducationalContent, error)
	CreateContent(ctx context.Context, session *models.Session, request *requests.CreateEducationalContent) (*models.EducationalContent, error)
	UpdateContent(ctx context.Context, session *models.Session, contentID string, request *requests.UpdateEducationalContent) (*models.EducationalContent, error)
	DeleteContent(ctx context.Context, session *models.Session, contentID string) error
	UploadMaterial(ctx context.Context, session *models.Session, contentID string, file multipart.File, fileHeader *multipart.FileHeader) (*responses.MaterialUpload, error)
	GetMaterialURL(ctx context.Context, session *models.Session, contentID string) (*responses.MaterialUpload, error)
}
