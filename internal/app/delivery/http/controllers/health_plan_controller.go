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

type HealthPlanController struct {
	Log               *zap.Logger
	HealthPlanUsecase contracts.HealthPlanUsecase
}

var (
	healthPlanControllerInstance *HealthPlanController
	onceHealthPlanController     sync.Once
)

func NewHealthPlanController(logger *zap.Logger, healthPlanUsecase contracts.HealthPlanUsecase) *HealthPlanController {
	onceHealthPlanController.Do(func() {
		healthPlanControllerInstance = &HealthPlanController{
			Log:               logger,
			HealthPlanUsecase: healthPlanUsecase,
		}
	})
	return healthPlanControllerInstance
}

func (ctrl *HealthPlanController) GetHealthPlan(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	plan, err := ctrl.HealthPlanUsecase.GetHealthPlan(ctx, session, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthPlanGetSuccess, plan)
}

func (ctrl *HealthPlanController) UpsertHealthPlan(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	request := new(requests.UpsertHealthPlan)
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

	plan, err := ctrl.HealthPlanUsecase.UpsertHealthPlan(ctx, session, patientID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthPlanUpsertSuccess, plan)
}

func (ctrl *HealthPlanController) ToggleProgress(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	request := new(requests.ToggleProgress)
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

	plan, err := ctrl.HealthPlanUsecase.ToggleProgress(ctx, session, patientID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthPlanProgressSuccess, plan)
}
