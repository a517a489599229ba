package education

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
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

	"go.uber.org/zap"
)

type educationUsecase struct {
	EducationRepository contracts.EducationRepository
	Storage             contracts.Storage
	InternalConfig      *config.InternalConfig
	Log                 *zap.Logger
}

var (
	educationUsecaseInstance contracts.EducationUsecase
	onceEducationUsecase     sync.Once
)

func NewEducationUsecase(
	educationRepository contracts.EducationRepository,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.EducationUsecase {
	onceEducationUsecase.Do(func() {
		educationUsecaseInstance = &educationUsecase{
			EducationRepository: educationRepository,
			Storage:             storage,
			InternalConfig:      internalConfig,
			Log:                 logger,
		}
	})
	return educationUsecaseInstance
}

func (uc *educationUsecase) ListContent(ctx context.Context, session *models.Session, filter contracts.EducationFilter, pagination *requests.Pagination) ([]models.EducationalContent, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("educationUsecase.ListContent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("search", filter.Search),
	)

	// Patients only ever see published material.
	if session.Role != constvars.RoleDoctor {
		filter.Status = constvars.ContentStatusPublished
	}
	return uc.EducationRepository.ListContent(ctx, filter, pagination)
}

func (uc *educationUsecase) GetContent(ctx context.Context, session *models.Session, contentID string) (*models.EducationalContent, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("educationUsecase.GetContent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingContentIDKey, contentID),
	)

	content, err := uc.findContent(ctx, contentID)
	if err != nil {
		return nil, err
	}
	if session.Role != constvars.RoleDoctor && content.Status != constvars.ContentStatusPublished {
		return nil, exceptions.ErrContentNotFound(fmt.Errorf("content %s is not published", contentID))
	}
	return content, nil
}

func (uc *educationUsecase) CreateContent(ctx context.Context, session *models.Session, request *requests.CreateEducationalContent) (*models.EducationalContent, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("educationUsecase.CreateContent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if session.Role != constvars.RoleDoctor {
		return nil, exceptions.ErrRoleTypeDoesntMatch(errors.New("only doctors may author content"))
	}

	status := request.Status
	if status == "" {
		status = constvars.ContentStatusDraft
	}

	content := &models.EducationalContent{
		Title:    request.Title,
		Summary:  request.Summary,
		Body:     request.Body,
		Category: request.Category,
		Level:    request.Level,
		Status:   status,
		Tags:     request.Tags,
		AuthorID: session.ProfileID,
	}
	contentID, err := uc.EducationRepository.CreateContent(ctx, content)
	if err != nil {
		return nil, err
	}
	content.ID = contentID

	utils.LogBusinessEvent(uc.Log, "content_created", requestID,
		zap.String(constvars.LoggingContentIDKey, contentID),
	)
	return content, nil
}

func (uc *educationUsecase) UpdateContent(ctx context.Context, session *models.Session, contentID string, request *requests.UpdateEducationalContent) (*models.EducationalContent, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("educationUsecase.UpdateContent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingContentIDKey, contentID),
	)

	if session.Role != constvars.RoleDoctor {
		return nil, exceptions.ErrRoleTypeDoesntMatch(errors.New("only doctors may edit content"))
	}

	content, err := uc.findContent(ctx, contentID)
	if err != nil {
		return nil, err
	}

	if request.Title != "" {
		content.Title = request.Title
	}
	if request.Summary != "" {
		content.Summary = request.Summary
	}
	if request.Body != "" {
		content.Body = request.Body
	}
	if request.Category != "" {
		content.Category = request.Category
	}
	if request.Level != "" {
		content.Level = request.Level
	}
	if request.Status != "" {
		content.Status = request.Status
	}
	if request.Tags != nil {
		content.Tags = request.Tags
	}
	content.SetUpdatedAt()

	if err := uc.EducationRepository.UpdateContent(ctx, content); err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "content_updated", requestID,
		zap.String(constvars.LoggingContentIDKey, contentID),
	)
	return content, nil
}

func (uc *educationUsecase) DeleteContent(ctx context.Context, session *models.Session, contentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("educationUsecase.DeleteContent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingContentIDKey, contentID),
	)

	if session.Role != constvars.RoleDoctor {
		return exceptions.ErrRoleTypeDoesntMatch(errors.New("only doctors may delete content"))
	}
	return uc.EducationRepository.DeleteContent(ctx, contentID)
}

func (uc *educationUsecase) UploadMaterial(ctx context.Context, session *models.Session, contentID string, file multipart.File, fileHeader *multipart.FileHeader) (*responses.MaterialUpload, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("educationUsecase.UploadMaterial called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingContentIDKey, contentID),
		zap.Int64("file_size", fileHeader.Size),
	)

	if session.Role != constvars.RoleDoctor {
		return nil, exceptions.ErrRoleTypeDoesntMatch(errors.New("only doctors may upload material"))
	}

	maxBytes := int64(uc.InternalConfig.Minio.MaterialMaxUploadSizeInMB) * 1024 * 1024
	if fileHeader.Size > maxBytes {
		return nil, exceptions.ErrFileTooLarge(fmt.Errorf("file is %d bytes, limit is %d", fileHeader.Size, maxBytes))
	}

	content, err := uc.findContent(ctx, contentID)
	if err != nil {
		return nil, err
	}

	ext := filepath.Ext(fileHeader.Filename)
	objectName := utils.GenerateFileName("material", contentID, ext)
	objectKey, err := uc.Storage.UploadFile(ctx, file, fileHeader, uc.InternalConfig.Minio.BucketName, objectName)
	if err != nil {
		return nil, err
	}

	content.MaterialKey = objectKey
	content.SetUpdatedAt()
	if err := uc.EducationRepository.UpdateContent(ctx, content); err != nil {
		return nil, err
	}

	url, err := uc.presignMaterial(ctx, objectKey)
	if err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "material_uploaded", requestID,
		zap.String(constvars.LoggingContentIDKey, contentID),
	)
	return &responses.MaterialUpload{ObjectKey: objectKey, URL: url}, nil
}

func (uc *educationUsecase) GetMaterialURL(ctx context.Context, session *models.Session, contentID string) (*responses.MaterialUpload, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("educationUsecase.GetMaterialURL called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingContentIDKey, contentID),
	)

	content, err := uc.GetContent(ctx, session, contentID)
	if err != nil {
		return nil, err
	}
	if content.MaterialKey == "" {
		return nil, exceptions.ErrContentNotFound(fmt.Errorf("content %s has no material attached", contentID))
	}

	url, err := uc.presignMaterial(ctx, content.MaterialKey)
	if err != nil {
		return nil, err
	}
	return &responses.MaterialUpload{ObjectKey: content.MaterialKey, URL: url}, nil
}

func (uc *educationUsecase) presignMaterial(ctx context.Context, objectKey string) (string, error) {
	expiry := time.Duration(uc.InternalConfig.Minio.PreSignedUrlExpiryTimeInHours) * time.Hour
	return uc.Storage.GetObjectUrlWithExpiryTime(ctx, uc.InternalConfig.Minio.BucketName, objectKey, expiry)
}

func (uc *educationUsecase) findContent(ctx context.Context, contentID string) (*models.EducationalContent, error) {
	content, err := uc.EducationRepository.FindContentByID(ctx, contentID)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, exceptions.ErrContentNotFound(fmt.Errorf("content %s", contentID))
	}
	return content, nil
}
