package contracts

import (
	"context"

	"dentassist-service/internal/app/models"
	"dentassist-service/internal/pkg/dto/requests"
)

type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile *models.Profile) (string, error)
	FindProfileByID(ctx context.Context, profileID string) (*models.Profile, error)
	FindProfileByEmail(ctx context.Context, email string) (*models.Profile, error)
	ListPatients(ctx context.Context, search string, pagination *requests.Pagination) ([]models.Profile, int, error)
	FindPatientsWithAppointmentsOn(ctx context.Context, date string) ([]models.Profile, error)
	FindPatientsWithPaymentsOn(ctx context.Context, date string) ([]models.Profile, error)

	// The embedded lists are always replaced wholesale in one write so a
	// reader never observes a half-applied mutation.
	ReplaceAppointments(ctx context.Context, profileID string, appointments []models.Appointment) error
	ReplaceHealthPlan(ctx context.Context, profileID string, plan *models.HealthPlan) error
	ReplaceMedicalHistory(ctx context.Context, profileID string, history []models.MedicalRecord) error
	ReplacePayments(ctx context.Context, profileID string, payments []models.Payment) error

	// WatchProfile streams the full document after every change until ctx is
	// cancelled or the returned stop function is called.
	WatchProfile(ctx context.Context, profileID string) (<-chan *models.Profile, func(), error)
}

type ProfileUsecase interface {
	GetOwnProfile(ctx context.Context, session *models.Session) (*models.Profile, error)
	GetPatientProfile(ctx context.Context, session *models.Session, patientID string) (*models.Profile, error)
	ListPatients(ctx context.Context, session *models.Session, search string, pagination *requests.Pagination) ([]models.Profile, int, error)
	AddMedicalRecord(ctx context.Context, session *models.Session, patientID string, request *requests.AddMedicalRecord) (*models.MedicalRecord, error)
	GetMedicalHistory(ctx context.Context, session *models.Session, patientID string) ([]models.MedicalRecord, error)
	WatchProfile(ctx context.Context, session *models.Session, patientID string) (<-chan *models.Profile, func(), error)
}
