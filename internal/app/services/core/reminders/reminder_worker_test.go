package reminders

import (
	"context"
	"testing"
	"time"

	"dentassist-service/internal/app/config"
	"dentassist-service/internal/app/models"
	"dentassist-service/internal/pkg/constvars"
	"dentassist-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeProfileRepository struct {
	byDate map[string][]models.Profile
}

func (f *fakeProfileRepository) CreateProfile(_ context.Context, profile *models.Profile) (string, error) {
	return profile.ID, nil
}

func (f *fakeProfileRepository) FindProfileByID(_ context.Context, _ string) (*models.Profile, error) {
	return nil, nil
}

func (f *fakeProfileRepository) FindProfileByEmail(_ context.Context, _ string) (*models.Profile, error) {
	return nil, nil
}

func (f *fakeProfileRepository) ListPatients(_ context.Context, _ string, _ *requests.Pagination) ([]models.Profile, int, error) {
	return nil, 0, nil
}

func (f *fakeProfileRepository) FindPatientsWithAppointmentsOn(_ context.Context, date string) ([]models.Profile, error) {
	return f.byDate[date], nil
}

func (f *fakeProfileRepository) FindPatientsWithPaymentsOn(_ context.Context, _ string) ([]models.Profile, error) {
	return nil, nil
}

func (f *fakeProfileRepository) ReplaceAppointments(_ context.Context, _ string, _ []models.Appointment) error {
	return nil
}

func (f *fakeProfileRepository) ReplaceHealthPlan(_ context.Context, _ string, _ *models.HealthPlan) error {
	return nil
}

func (f *fakeProfileRepository) ReplaceMedicalHistory(_ context.Context, _ string, _ []models.MedicalRecord) error {
	return nil
}

func (f *fakeProfileRepository) ReplacePayments(_ context.Context, _ string, _ []models.Payment) error {
	return nil
}

func (f *fakeProfileRepository) WatchProfile(_ context.Context, _ string) (<-chan *models.Profile, func(), error) {
	ch := make(chan *models.Profile)
	close(ch)
	return ch, func() {}, nil
}

type fakeLockerService struct {
	acquire bool
}

func (f *fakeLockerService) TryLock(_ context.Context, _ string, _ time.Duration) (bool, string, error) {
	return f.acquire, "lock-value", nil
}

func (f *fakeLockerService) Unlock(_ context.Context, _, _ string) error { return nil }

func (f *fakeLockerService) Refresh(_ context.Context, _, _ string, _ time.Duration) error {
	return nil
}

type fakeMailerQueue struct {
	published []*requests.EmailPayload
}

func (f *fakeMailerQueue) PublishEmail(_ context.Context, payload *requests.EmailPayload) error {
	f.published = append(f.published, payload)
	return nil
}

func newTestWorker(lookAheadDays int, acquire bool) (*Worker, *fakeProfileRepository, *fakeMailerQueue) {
	repo := &fakeProfileRepository{byDate: map[string][]models.Profile{}}
	queue := &fakeMailerQueue{}
	worker := NewWorker(repo, &fakeLockerService{acquire: acquire}, queue, &config.InternalConfig{
		Clinic: config.AppClinic{ReminderCronSpec: "0 7 * * *", ReminderLookAheadDays: lookAheadDays},
		Mailer: config.AppMailer{EmailSender: "clinic@example.com"},
	}, zap.NewNop())
	return worker, repo, queue
}

func TestReminderWorkerRunOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("sends one reminder per upcoming appointment", func(t *testing.T) {
		worker, repo, queue := newTestWorker(1, true)
		tomorrow := time.Now().AddDate(0, 0, 1).Format(constvars.ClinicDateLayout)
		repo.byDate[tomorrow] = []models.Profile{
			{
				ID: "patient-1", Email: "alice@example.com", FirstName: "Alice", LastName: "Martin",
				Role: constvars.RolePatient,
				Appointments: []models.Appointment{
					{ID: "a1", Date: tomorrow, Time: "09:00", Reason: "cleaning", Status: constvars.AppointmentStatusConfirmed},
					{ID: "a2", Date: tomorrow, Time: "15:00", Reason: "filling", Status: constvars.AppointmentStatusPending},
				},
			},
		}

		worker.RunOnce(ctx)

		require.Len(t, queue.published, 2)
		assert.Equal(t, constvars.EmailAppointmentReminderSubject, queue.published[0].Subject)
		assert.Equal(t, []string{"alice@example.com"}, queue.published[0].To)
		assert.Contains(t, queue.published[0].Body, "09:00")
	})

	t.Run("skips cancelled and completed appointments", func(t *testing.T) {
		worker, repo, queue := newTestWorker(1, true)
		tomorrow := time.Now().AddDate(0, 0, 1).Format(constvars.ClinicDateLayout)
		repo.byDate[tomorrow] = []models.Profile{
			{
				ID: "patient-1", Email: "alice@example.com", Role: constvars.RolePatient,
				Appointments: []models.Appointment{
					{ID: "a1", Date: tomorrow, Time: "09:00", Status: constvars.AppointmentStatusCancelled},
					{ID: "a2", Date: tomorrow, Time: "10:00", Status: constvars.AppointmentStatusCompleted},
				},
			},
		}

		worker.RunOnce(ctx)
		assert.Empty(t, queue.published)
	})

	t.Run("does nothing when another instance holds the lock", func(t *testing.T) {
		worker, repo, queue := newTestWorker(1, false)
		tomorrow := time.Now().AddDate(0, 0, 1).Format(constvars.ClinicDateLayout)
		repo.byDate[tomorrow] = []models.Profile{
			{
				ID: "patient-1", Email: "alice@example.com", Role: constvars.RolePatient,
				Appointments: []models.Appointment{
					{ID: "a1", Date: tomorrow, Time: "09:00", Status: constvars.AppointmentStatusConfirmed},
				},
			},
		}

		worker.RunOnce(ctx)
		assert.Empty(t, queue.published)
	})
}
