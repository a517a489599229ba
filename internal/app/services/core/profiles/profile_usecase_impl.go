package profiles

import (
	"context"
	"errors"
	"fmt"
	"sort"
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

type profileUsecase struct {
	ProfileRepository contracts.ProfileRepository
	Log               *zap.Logger
}

var (
	profileUsecaseInstance contracts.ProfileUsecase
	onceProfileUsecase     sync.Once
)

func NewProfileUsecase(profileRepository contracts.ProfileRepository, logger *zap.Logger) contracts.ProfileUsecase {
	onceProfileUsecase.Do(func() {
		profileUsecaseInstance = &profileUsecase{
			ProfileRepository: profileRepository,
			Log:               logger,
		}
	})
	return profileUsecaseInstance
}

func (uc *profileUsecase) GetOwnProfile(ctx context.Context, session *models.Session) (*models.Profile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.GetOwnProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	profile, err := uc.ProfileRepository.FindProfileByID(ctx, session.ProfileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrProfileNotFound(fmt.Errorf("profile %s", session.ProfileID))
	}
	return profile, nil
}

func (uc *profileUsecase) GetPatientProfile(ctx context.Context, session *models.Session, patientID string) (*models.Profile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.GetPatientProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if err := guardPatientAccess(session, patientID); err != nil {
		return nil, err
	}
	return uc.findPatient(ctx, patientID)
}

func (uc *profileUsecase) ListPatients(ctx context.Context, session *models.Session, search string, pagination *requests.Pagination) ([]models.Profile, int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.ListPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("search", search),
	)

	if session.Role != constvars.RoleDoctor {
		return nil, 0, exceptions.ErrRoleTypeDoesntMatch(errors.New("only doctors may browse the patient list"))
	}
	return uc.ProfileRepository.ListPatients(ctx, search, pagination)
}

func (uc *profileUsecase) AddMedicalRecord(ctx context.Context, session *models.Session, patientID string, request *requests.AddMedicalRecord) (*models.MedicalRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.AddMedicalRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if session.Role != constvars.RoleDoctor {
		return nil, exceptions.ErrRoleTypeDoesntMatch(errors.New("only doctors may write medical records"))
	}

	profile, err := uc.findPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	doctor, err := uc.ProfileRepository.FindProfileByID(ctx, session.ProfileID)
	if err != nil {
		return nil, err
	}
	doctorName := "Unknown"
	if doctor != nil {
		doctorName = doctor.FullName()
	}

	record := models.MedicalRecord{
		ID:          utils.GenerateAppointmentID(),
		Date:        request.Date,
		Treatment:   request.Treatment,
		Description: request.Description,
		DoctorName:  doctorName,
		Notes:       request.Notes,
		CreatedAt:   time.Now(),
	}

	history := append(profile.MedicalHistory, record)
	if err := uc.ProfileRepository.ReplaceMedicalHistory(ctx, patientID, history); err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "medical_record_added", requestID,
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return &record, nil
}

func (uc *profileUsecase) GetMedicalHistory(ctx context.Context, session *models.Session, patientID string) ([]models.MedicalRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.GetMedicalHistory called",
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

	// Most recent visit first. Zero-padded dates sort lexicographically.
	history := make([]models.MedicalRecord, len(profile.MedicalHistory))
	copy(history, profile.MedicalHistory)
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date > history[j].Date
	})
	return history, nil
}

func (uc *profileUsecase) WatchProfile(ctx context.Context, session *models.Session, patientID string) (<-chan *models.Profile, func(), error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.WatchProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if err := guardPatientAccess(session, patientID); err != nil {
		return nil, nil, err
	}
	return uc.ProfileRepository.WatchProfile(ctx, patientID)
}

func (uc *profileUsecase) findPatient(ctx context.Context, patientID string) (*models.Profile, error) {
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
