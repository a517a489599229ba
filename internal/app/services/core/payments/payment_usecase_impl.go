package payments

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"dentassist-service/internal/app/contracts"
	"dentassist-service/internal/app/models"
	"dentassist-service/internal/pkg/constvars"
	"dentassist-service/internal/pkg/dto/requests"
	"dentassist-service/internal/pkg/dto/responses"
	"dentassist-service/internal/pkg/exceptions"
	"dentassist-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type paymentUsecase struct {
	ProfileRepository   contracts.ProfileRepository
	TreatmentRepository contracts.TreatmentRepository
	Log                 *zap.Logger
}

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

func NewPaymentUsecase(
	profileRepository contracts.ProfileRepository,
	treatmentRepository contracts.TreatmentRepository,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		paymentUsecaseInstance = &paymentUsecase{
			ProfileRepository:   profileRepository,
			TreatmentRepository: treatmentRepository,
			Log:                 logger,
		}
	})
	return paymentUsecaseInstance
}

func (uc *paymentUsecase) ListPayments(ctx context.Context, session *models.Session, patientID string) ([]models.Payment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.ListPayments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if err := guardPatientAccess(session, patientID); err != nil {
		return nil, err
	}

	profile, err := uc.findPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return profile.Payments, nil
}

func (uc *paymentUsecase) CreatePayment(ctx context.Context, session *models.Session, patientID string, request *requests.CreatePayment) (*models.Payment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.CreatePayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.Int("item_count", len(request.Items)),
	)

	if session.Role != constvars.RoleDoctor {
		return nil, exceptions.ErrRoleTypeDoesntMatch(errors.New("only doctors may record payments"))
	}

	profile, err := uc.findPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	items, err := uc.resolveItems(ctx, request.Items)
	if err != nil {
		return nil, err
	}

	status := request.Status
	if status == "" {
		status = constvars.PaymentStatusCompleted
	}

	payment := models.Payment{
		ID:        utils.GenerateAppointmentID(),
		Date:      request.Date,
		Items:     items,
		Method:    request.Method,
		Status:    status,
		CreatedAt: time.Now(),
	}
	if request.Insurance != nil {
		payment.Insurance = &models.InsuranceClaim{
			Provider:    request.Insurance.Provider,
			CoveragePct: request.Insurance.CoveragePct,
			ClaimStatus: constvars.InsuranceClaimStatusPending,
		}
	}
	payment.ComputeTotals()

	payments := append(profile.Payments, payment)
	if err := uc.ProfileRepository.ReplacePayments(ctx, patientID, payments); err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "payment_recorded", requestID,
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.Float64("total", payment.Total),
	)
	return &payment, nil
}

func (uc *paymentUsecase) GetPaymentStats(ctx context.Context, session *models.Session, patientID string) (*responses.PaymentStats, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.GetPaymentStats called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if err := guardPatientAccess(session, patientID); err != nil {
		return nil, err
	}

	profile, err := uc.findPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	stats := &responses.PaymentStats{PaymentsByStatus: map[string]int{}}
	for _, p := range profile.Payments {
		stats.TotalBilled += p.Total
		stats.TotalInsurance += p.InsuranceCovered
		stats.TotalPatientDue += p.PatientDue
		stats.PaymentsByStatus[p.Status]++
	}
	return stats, nil
}

func (uc *paymentUsecase) GetDailyStats(ctx context.Context, session *models.Session, date string) (*responses.DailyPaymentStats, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.GetDailyStats called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, date),
	)

	if session.Role != constvars.RoleDoctor {
		return nil, exceptions.ErrRoleTypeDoesntMatch(errors.New("only doctors may view clinic stats"))
	}
	if _, err := utils.ParseClinicDate(date); err != nil {
		return nil, exceptions.ErrInputValidation(fmt.Errorf("invalid date %q", date))
	}

	profiles, err := uc.ProfileRepository.FindPatientsWithPaymentsOn(ctx, date)
	if err != nil {
		return nil, err
	}

	stats := &responses.DailyPaymentStats{
		Date:             date,
		PaymentsByMethod: map[string]int{},
		TreatmentCounts:  map[string]int{},
	}
	for _, p := range profiles {
		counted := false
		for _, payment := range p.Payments {
			if payment.Date != date {
				continue
			}
			counted = true
			stats.TotalRevenue += payment.Total
			stats.PaymentsByMethod[payment.Method]++
			for _, item := range payment.Items {
				stats.TreatmentCounts[item.TreatmentCode] += item.Quantity
			}
		}
		if counted {
			stats.PatientCount++
		}
	}
	return stats, nil
}

// resolveItems validates every line against the treatment catalogue; the
// catalogue price and name fill in whatever the request left blank.
func (uc *paymentUsecase) resolveItems(ctx context.Context, input []requests.PaymentItem) ([]models.PaymentItem, error) {
	items := make([]models.PaymentItem, 0, len(input))
	for _, in := range input {
		treatment, err := uc.TreatmentRepository.FindTreatmentByCode(ctx, in.TreatmentCode)
		if err != nil {
			return nil, err
		}
		if treatment == nil {
			return nil, exceptions.ErrTreatmentCodeUnknown(fmt.Errorf("code %s", in.TreatmentCode))
		}

		item := models.PaymentItem{
			TreatmentCode: treatment.Code,
			Description:   in.Description,
			UnitPrice:     in.UnitPrice,
			Quantity:      in.Quantity,
		}
		if item.Description == "" {
			item.Description = treatment.Name
		}
		if item.UnitPrice == 0 {
			item.UnitPrice = treatment.Price
		}
		items = append(items, item)
	}
	return items, nil
}

func (uc *paymentUsecase) findPatient(ctx context.Context, patientID string) (*models.Profile, error) {
	profile, err := uc.ProfileRepository.FindProfileByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if profile == nil || profile.Role != constvars.RolePatient {
		return nil, exceptions.ErrProfileNotFound(fmt.Errorf("patient %s", patientID))
	}
	return profile, nil
}

func guardPatientAccess(session *models.Session, patientID string) error {
	if session.Role == constvars.RoleDoctor {
		return nil
	}
	if session.ProfileID != patientID {
		return exceptions.ErrRoleTypeDoesntMatch(errors.New("patients may only access their own records"))
	}
	return nil
}
