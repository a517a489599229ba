package healthplans

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"dentassist-service/internal/app/contracts"
	"dentassist-service/internal/app/models"
	"dentassist-service/internal/pkg/constvars"
	"dentassist-service/internal/pkg/dto/requests"
	"dentassist-service/internal/pkg/exceptions"
	"dentassist-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type healthPlanUsecase struct {
	ProfileRepository contracts.ProfileRepository
	Log               *zap.Logger
}

var (
	healthPlanUsecaseInstance contracts.HealthPlanUsecase
	onceHealthPlanUsecase     sync.Once
)

func NewHealthPlanUsecase(profileRepository contracts.ProfileRepository, logger *zap.Logger) contracts.HealthPlanUsecase {
	onceHealthPlanUsecase.Do(func() {
		healthPlanUsecaseInstance = &healthPlanUsecase{
			ProfileRepository: profileRepository,
			Log:               logger,
		}
	})
	return healthPlanUsecaseInstance
}

func (uc *healthPlanUsecase) GetHealthPlan(ctx context.Context, session *models.Session, patientID string) (*models.HealthPlan, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("healthPlanUsecase.GetHealthPlan called",
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
	if profile.HealthPlan == nil {
		return nil, exceptions.ErrHealthPlanMissing(fmt.Errorf("patient %s", patientID))
	}
	return profile.HealthPlan, nil
}

func (uc *healthPlanUsecase) UpsertHealthPlan(ctx context.Context, session *models.Session, patientID string, request *requests.UpsertHealthPlan) (*models.HealthPlan, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("healthPlanUsecase.UpsertHealthPlan called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if session.Role != constvars.RoleDoctor {
		return nil, exceptions.ErrRoleTypeDoesntMatch(errors.New("only doctors may edit a health plan"))
	}

	morning := utils.TrimNonEmpty(request.Routine.Morning)
	evening := utils.TrimNonEmpty(request.Routine.Evening)
	if len(morning) == 0 || len(evening) == 0 {
		return nil, exceptions.ErrInputValidation(errors.New("routine steps must contain non-blank entries"))
	}
	recommendations := strings.TrimSpace(request.Recommendations)

	profile, err := uc.findPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	plan := profile.HealthPlan
	if plan == nil {
		plan = &models.HealthPlan{Progress: map[string]models.DailyProgress{}}
	}
	if plan.Progress == nil {
		plan.Progress = map[string]models.DailyProgress{}
	}

	// Editing the routine never discards the progress already recorded.
	plan.Routine = models.DailyRoutine{Morning: morning, Evening: evening}
	plan.Recommendations = recommendations
	plan.LastUpdated = time.Now()

	if err := uc.ProfileRepository.ReplaceHealthPlan(ctx, patientID, plan); err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "health_plan_upserted", requestID,
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return plan, nil
}

func (uc *healthPlanUsecase) ToggleProgress(ctx context.Context, session *models.Session, patientID string, request *requests.ToggleProgress) (*models.HealthPlan, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("healthPlanUsecase.ToggleProgress called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	if session.Role != constvars.RolePatient || session.ProfileID != patientID {
		return nil, exceptions.ErrRoleTypeDoesntMatch(errors.New("patients may only record their own progress"))
	}

	future, err := utils.IsFutureClinicDate(request.Date, time.Now())
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	if future {
		return nil, exceptions.ErrProgressDateInFuture(fmt.Errorf("date %s", request.Date))
	}

	profile, err := uc.findPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	plan := profile.HealthPlan
	if plan == nil {
		return nil, exceptions.ErrHealthPlanMissing(fmt.Errorf("patient %s", patientID))
	}
	if plan.Progress == nil {
		plan.Progress = map[string]models.DailyProgress{}
	}

	entry := plan.Progress[request.Date]
	switch request.Period {
	case constvars.RoutinePeriodMorning:
		entry.Morning = request.Done
	case constvars.RoutinePeriodEvening:
		entry.Evening = request.Done
	}
	plan.Progress[request.Date] = entry
	plan.LastUpdated = time.Now()

	if err := uc.ProfileRepository.ReplaceHealthPlan(ctx, patientID, plan); err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "health_plan_progress_toggled", requestID,
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)
	return plan, nil
}

func (uc *healthPlanUsecase) findPatient(ctx context.Context, patientID string) (*models.Profile, error) {
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
