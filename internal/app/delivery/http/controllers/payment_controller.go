package controllers

import (
	"context"
	"errors"
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

type PaymentController struct {
	Log                 *zap.Logger
	PaymentUsecase      contracts.PaymentUsecase
	TreatmentRepository contracts.TreatmentRepository
}

var (
	paymentControllerInstance *PaymentController
	oncePaymentController     sync.Once
)

func NewPaymentController(
	logger *zap.Logger,
	paymentUsecase contracts.PaymentUsecase,
	treatmentRepository contracts.TreatmentRepository,
) *PaymentController {
	oncePaymentController.Do(func() {
		paymentControllerInstance = &PaymentController{
			Log:                 logger,
			PaymentUsecase:      paymentUsecase,
			TreatmentRepository: treatmentRepository,
		}
	})
	return paymentControllerInstance
}

func (ctrl *PaymentController) ListPayments(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	payments, err := ctrl.PaymentUsecase.ListPayments(ctx, session, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PaymentListSuccess, payments)
}

func (ctrl *PaymentController) CreatePayment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromRequest(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	session, ok := sessionFromRequest(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	request := new(requests.CreatePayment)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Debug("payment creation started",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	payment, err := ctrl.PaymentUsecase.CreatePayment(ctx, session, patientID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.PaymentCreateSuccess, payment)
}

func (ctrl *PaymentController) GetPaymentStats(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	stats, err := ctrl.PaymentUsecase.GetPaymentStats(ctx, session, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PaymentStatsSuccess, stats)
}

func (ctrl *PaymentController) GetDailyStats(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromRequest(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	date := r.URL.Query().Get(constvars.URLQueryParamDate)
	if date == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(errors.New("date query parameter is required")))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	stats, err := ctrl.PaymentUsecase.GetDailyStats(ctx, session, date)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DailyStatsSuccess, stats)
}

func (ctrl *PaymentController) ListTreatments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	treatments, err := ctrl.TreatmentRepository.FindAllTreatments(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TreatmentListSuccess, treatments)
}
