package education

import (
	"context"
	"io"
	"mime/multipart"
	"strconv"
	"testing"
	"time"

	"dentassist-service/internal/app/config"
	"dentassist-service/internal/app/contracts"
	"dentassist-service/internal/app/models"
	"dentassist-service/internal/pkg/constvars"
	"dentassist-service/internal/pkg/dto/requests"
	"dentassist-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEducationRepository struct {
	contents map[string]*models.EducationalContent
	next     int
}

func (f *fakeEducationRepository) CreateContent(_ context.Context, content *models.EducationalContent) (string, error) {
	f.next++
	id := "content-" + strconv.Itoa(f.next)
	clone := *content
	clone.ID = id
	f.contents[id] = &clone
	return id, nil
}

func (f *fakeEducationRepository) FindContentByID(_ context.Context, contentID string) (*models.EducationalContent, error) {
	c, ok := f.contents[contentID]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (f *fakeEducationRepository) ListContent(_ context.Context, filter contracts.EducationFilter, _ *requests.Pagination) ([]models.EducationalContent, int, error) {
	var out []models.EducationalContent
	for _, c := range f.contents {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		out = append(out, *c)
	}
	return out, len(out), nil
}

func (f *fakeEducationRepository) UpdateContent(_ context.Context, content *models.EducationalContent) error {
	if _, ok := f.contents[content.ID]; !ok {
		return exceptions.ErrContentNotFound(nil)
	}
	clone := *content
	f.contents[content.ID] = &clone
	return nil
}

func (f *fakeEducationRepository) DeleteContent(_ context.Context, contentID string) error {
	if _, ok := f.contents[contentID]; !ok {
		return exceptions.ErrContentNotFound(nil)
	}
	delete(f.contents, contentID)
	return nil
}

type fakeStorage struct {
	uploaded map[string][]byte
}

func (f *fakeStorage) UploadFile(_ context.Context, file io.Reader, _ *multipart.FileHeader, _, objectName string) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	f.uploaded[objectName] = data
	return objectName, nil
}

func (f *fakeStorage) GetObjectUrlWithExpiryTime(_ context.Context, bucketName, objectName string, _ time.Duration) (string, error) {
	return "https://storage.local/" + bucketName + "/" + objectName, nil
}

func newTestUsecase() (*educationUsecase, *fakeEducationRepository, *fakeStorage) {
	repo := &fakeEducationRepository{contents: map[string]*models.EducationalContent{}}
	storage := &fakeStorage{uploaded: map[string][]byte{}}
	uc := &educationUsecase{
		EducationRepository: repo,
		Storage:             storage,
		InternalConfig: &config.InternalConfig{
			Minio: config.AppMinio{
				BucketName:                    "dentassist-materials",
				MaterialMaxUploadSizeInMB:     5,
				PreSignedUrlExpiryTimeInHours: 1,
			},
		},
		Log: zap.NewNop(),
	}
	return uc, repo, storage
}

func patientSession() *models.Session {
	return &models.Session{SessionID: "s1", ProfileID: "patient-1", Role: constvars.RolePatient}
}

func doctorSession() *models.Session {
	return &models.Session{SessionID: "s2", ProfileID: "doctor-1", Role: constvars.RoleDoctor}
}

func createRequest() *requests.CreateEducationalContent {
	return &requests.CreateEducationalContent{
		Title:    "Brushing basics",
		Summary:  "How to brush properly",
		Body:     "Hold the brush at 45 degrees...",
		Category: "hygiene",
		Level:    "beginner",
	}
}

func TestCreateContent(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to draft", func(t *testing.T) {
		uc, _, _ := newTestUsecase()

		content, err := uc.CreateContent(ctx, doctorSession(), createRequest())
		require.NoError(t, err)
		assert.Equal(t, constvars.ContentStatusDraft, content.Status)
		assert.Equal(t, "doctor-1", content.AuthorID)
		assert.NotEmpty(t, content.ID)
	})

	t.Run("patients cannot author", func(t *testing.T) {
		uc, _, _ := newTestUsecase()

		_, err := uc.CreateContent(ctx, patientSession(), createRequest())
		require.Error(t, err)
		assert.Equal(t, constvars.StatusForbidden, err.(*exceptions.CustomError).StatusCode)
	})
}

func TestListContent(t *testing.T) {
	ctx := context.Background()

	t.Run("patients only see published content", func(t *testing.T) {
		uc, _, _ := newTestUsecase()
		_, err := uc.CreateContent(ctx, doctorSession(), createRequest())
		require.NoError(t, err)
		published := createRequest()
		published.Status = constvars.ContentStatusPublished
		_, err = uc.CreateContent(ctx, doctorSession(), published)
		require.NoError(t, err)

		list, total, err := uc.ListContent(ctx, patientSession(), contracts.EducationFilter{}, &requests.Pagination{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, list, 1)
		assert.Equal(t, constvars.ContentStatusPublished, list[0].Status)
	})

	t.Run("doctors see drafts too", func(t *testing.T) {
		uc, _, _ := newTestUsecase()
		_, err := uc.CreateContent(ctx, doctorSession(), createRequest())
		require.NoError(t, err)

		_, total, err := uc.ListContent(ctx, doctorSession(), contracts.EducationFilter{}, &requests.Pagination{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
	})
}

func TestGetContent(t *testing.T) {
	ctx := context.Background()

	t.Run("draft is hidden from patients", func(t *testing.T) {
		uc, _, _ := newTestUsecase()
		created, err := uc.CreateContent(ctx, doctorSession(), createRequest())
		require.NoError(t, err)

		_, err = uc.GetContent(ctx, patientSession(), created.ID)
		require.Error(t, err)
		assert.Equal(t, constvars.ErrClientContentNotFound, err.(*exceptions.CustomError).ClientMessage)

		content, err := uc.GetContent(ctx, doctorSession(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, content.ID)
	})
}

func TestUpdateContent(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		uc, repo, _ := newTestUsecase()
		created, err := uc.CreateContent(ctx, doctorSession(), createRequest())
		require.NoError(t, err)

		updated, err := uc.UpdateContent(ctx, doctorSession(), created.ID, &requests.UpdateEducationalContent{
			Status: constvars.ContentStatusPublished,
		})
		require.NoError(t, err)
		assert.Equal(t, constvars.ContentStatusPublished, updated.Status)
		assert.Equal(t, "Brushing basics", updated.Title)
		assert.Equal(t, constvars.ContentStatusPublished, repo.contents[created.ID].Status)
	})

	t.Run("patients cannot edit", func(t *testing.T) {
		uc, _, _ := newTestUsecase()
		created, err := uc.CreateContent(ctx, doctorSession(), createRequest())
		require.NoError(t, err)

		_, err = uc.UpdateContent(ctx, patientSession(), created.ID, &requests.UpdateEducationalContent{Title: "Hacked"})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusForbidden, err.(*exceptions.CustomError).StatusCode)
	})
}

func TestDeleteContent(t *testing.T) {
	ctx := context.Background()

	t.Run("doctor removes content", func(t *testing.T) {
		uc, repo, _ := newTestUsecase()
		created, err := uc.CreateContent(ctx, doctorSession(), createRequest())
		require.NoError(t, err)

		require.NoError(t, uc.DeleteContent(ctx, doctorSession(), created.ID))
		assert.Empty(t, repo.contents)
	})
}

func TestUploadMaterial(t *testing.T) {
	ctx := context.Background()

	t.Run("oversized file is rejected", func(t *testing.T) {
		uc, _, _ := newTestUsecase()
		created, err := uc.CreateContent(ctx, doctorSession(), createRequest())
		require.NoError(t, err)

		header := &multipart.FileHeader{Filename: "big.pdf", Size: 6 * 1024 * 1024}
		_, err = uc.UploadMaterial(ctx, doctorSession(), created.ID, nil, header)
		require.Error(t, err)
		assert.Equal(t, constvars.ErrClientFileTooLarge, err.(*exceptions.CustomError).ClientMessage)
	})

	t.Run("patients cannot upload", func(t *testing.T) {
		uc, _, _ := newTestUsecase()
		created, err := uc.CreateContent(ctx, doctorSession(), createRequest())
		require.NoError(t, err)

		header := &multipart.FileHeader{Filename: "guide.pdf", Size: 1024}
		_, err = uc.UploadMaterial(ctx, patientSession(), created.ID, nil, header)
		require.Error(t, err)
		assert.Equal(t, constvars.StatusForbidden, err.(*exceptions.CustomError).StatusCode)
	})
}

func TestGetMaterialURL(t *testing.T) {
	ctx := context.Background()

	t.Run("content without material", func(t *testing.T) {
		uc, _, _ := newTestUsecase()
		request := createRequest()
		request.Status = constvars.ContentStatusPublished
		created, err := uc.CreateContent(ctx, doctorSession(), request)
		require.NoError(t, err)

		_, err = uc.GetMaterialURL(ctx, patientSession(), created.ID)
		require.Error(t, err)
		assert.Equal(t, constvars.ErrClientContentNotFound, err.(*exceptions.CustomError).ClientMessage)
	})

	t.Run("presigns the stored key", func(t *testing.T) {
		uc, repo, _ := newTestUsecase()
		request := createRequest()
		request.Status = constvars.ContentStatusPublished
		created, err := uc.CreateContent(ctx, doctorSession(), request)
		require.NoError(t, err)
		repo.contents[created.ID].MaterialKey = "material_key.pdf"

		upload, err := uc.GetMaterialURL(ctx, patientSession(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, "material_key.pdf", upload.ObjectKey)
		assert.Contains(t, upload.URL, "material_key.pdf")
	})
}
