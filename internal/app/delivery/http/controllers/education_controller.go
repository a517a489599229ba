package controllers

import (
	"context"
	"net/http"
	"sync"

	"dentassist-service/internal/app/contracts"
	"dentassist-service/internal/pkg/constvars"
	"dentassist-service/internal/pkg/dto/requests"
	"dentassist-service/internal/pkg/exceptions"
	"dentassist-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type EducationController struct {
	Log              *zap.Logger
	EducationUsecase contracts.EducationUsecase
	MaxUploadBytes   int64
}

var (
	educationControllerInstance *EducationController
	onceEducationController     sync.Once
)

func NewEducationController(logger *zap.Logger, educationUsecase contracts.EducationUsecase, maxUploadSizeInMB int) *EducationController {
	onceEducationController.Do(func() {
		educationControllerInstance = &EducationController{
			Log:              logger,
			EducationUsecase: educationUsecase,
			MaxUploadBytes:   int64(maxUploadSizeInMB) * 1024 * 1024,
		}
	})
	return educationControllerInstance
}

func (ctrl *EducationController) ListContent(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	filter := contracts.EducationFilter{
		Search:   r.URL.Query().Get(constvars.URLQueryParamSearch),
		Category: r.URL.Query().Get(constvars.URLQueryParamCategory),
		Level:    r.URL.Query().Get(constvars.URLQueryParamLevel),
		Status:   r.URL.Query().Get(constvars.URLQueryParamStatus),
	}
	pagination := utils.BuildPaginationRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	contents, total, err := ctrl.EducationUsecase.ListContent(ctx, session, filter, pagination)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	paginationResponse := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ContentListSuccess, paginationResponse, contents)
}

func (ctrl *EducationController) GetContent(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}
	contentID := chi.URLParam(r, constvars.URLParamContentID)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	content, err := ctrl.EducationUsecase.GetContent(ctx, session, contentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ContentListSuccess, content)
}

func (ctrl *EducationController) CreateContent(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	request := new(requests.CreateEducationalContent)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	content, err := ctrl.EducationUsecase.CreateContent(ctx, session, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ContentCreateSuccess, content)
}

func (ctrl *EducationController) UpdateContent(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}
	contentID := chi.URLParam(r, constvars.URLParamContentID)

	request := new(requests.UpdateEducationalContent)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	content, err := ctrl.EducationUsecase.UpdateContent(ctx, session, contentID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ContentUpdateSuccess, content)
}

func (ctrl *EducationController) DeleteContent(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}
	contentID := chi.URLParam(r, constvars.URLParamContentID)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := ctrl.EducationUsecase.DeleteContent(ctx, session, contentID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ContentDeleteSuccess, nil)
}

func (ctrl *EducationController) UploadMaterial(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}
	contentID := chi.URLParam(r, constvars.URLParamContentID)

	r.Body = http.MaxBytesReader(w, r.Body, ctrl.MaxUploadBytes)
	if err := r.ParseMultipartForm(ctrl.MaxUploadBytes); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, fileHeader, err := r.FormFile("material")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	upload, err := ctrl.EducationUsecase.UploadMaterial(ctx, session, contentID, file, fileHeader)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.MaterialUploadSuccess, upload)
}

func (ctrl *EducationController) GetMaterialURL(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}
	contentID := chi.URLParam(r, constvars.URLParamContentID)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	upload, err := ctrl.EducationUsecase.GetMaterialURL(ctx, session, contentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MaterialUploadSuccess, upload)
}
