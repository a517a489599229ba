package controllers

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"dentassist-service/internal/app/contracts"
	"dentassist-service/internal/pkg/constvars"
	"dentassist-service/internal/pkg/dto/requests"
	"dentassist-service/internal/pkg/dto/responses"
	"dentassist-service/internal/pkg/exceptions"
	"dentassist-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ProfileController struct {
	Log            *zap.Logger
	ProfileUsecase contracts.ProfileUsecase
}

var (
	profileControllerInstance *ProfileController
	onceProfileController     sync.Once
)

func NewProfileController(logger *zap.Logger, profileUsecase contracts.ProfileUsecase) *ProfileController {
	onceProfileController.Do(func() {
		profileControllerInstance = &ProfileController{
			Log:            logger,
			ProfileUsecase: profileUsecase,
		}
	})
	return profileControllerInstance
}

func (ctrl *ProfileController) GetOwnProfile(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	profile, err := ctrl.ProfileUsecase.GetOwnProfile(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileGetSuccess, profile)
}

func (ctrl *ProfileController) GetPatientProfile(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	profile, err := ctrl.ProfileUsecase.GetPatientProfile(ctx, session, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileGetSuccess, profile)
}

func (ctrl *ProfileController) ListPatients(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	search := r.URL.Query().Get(constvars.URLQueryParamSearch)
	pagination := utils.BuildPaginationRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	patients, total, err := ctrl.ProfileUsecase.ListPatients(ctx, session, search, pagination)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	summaries := make([]responses.PatientSummary, 0, len(patients))
	for i := range patients {
		p := &patients[i]
		summaries = append(summaries, responses.PatientSummary{
			ProfileID:        p.ID,
			FullName:         p.FullName(),
			Email:            p.Email,
			Phone:            p.Phone,
			AppointmentCount: len(p.Appointments),
			HasHealthPlan:    p.HealthPlan != nil,
		})
	}

	paginationResponse := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.PatientListSuccess, paginationResponse, summaries)
}

func (ctrl *ProfileController) AddMedicalRecord(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	request := new(requests.AddMedicalRecord)
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

	record, err := ctrl.ProfileUsecase.AddMedicalRecord(ctx, session, patientID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.MedicalRecordAddSuccess, record)
}

func (ctrl *ProfileController) GetMedicalHistory(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	history, err := ctrl.ProfileUsecase.GetMedicalHistory(ctx, session, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MedicalHistoryGetSuccess, history)
}

// Events streams the patient's profile document over server-sent events,
// one `data:` frame per change, until the client disconnects.
func (ctrl *ProfileController) Events(w http.ResponseWriter, r *http.Request) {
	requestID, _ := requestIDFromRequest(r)
	session, ok := sessionFromRequest(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	if patientID == "" {
		patientID = session.ProfileID
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerProcess(fmt.Errorf("response writer does not support streaming")))
		return
	}

	updates, stop, err := ctrl.ProfileUsecase.WatchProfile(r.Context(), session, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	defer stop()

	w.Header().Set(constvars.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(constvars.StatusOK)
	flusher.Flush()

	ctrl.Log.Info("profile event stream opened",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	for {
		select {
		case <-r.Context().Done():
			ctrl.Log.Info("profile event stream closed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingPatientIDKey, patientID),
			)
			return
		case profile, open := <-updates:
			if !open {
				return
			}
			payload, err := json.Marshal(profile)
			if err != nil {
				ctrl.Log.Error("failed to marshal profile event",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(err),
				)
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
