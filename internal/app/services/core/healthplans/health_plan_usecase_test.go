package healthplans

import (
	"context"
	"testing"
	"time"

	"dentassist-service/internal/app/models"
	"dentassist-service/internal/pkg/constvars"
	"dentassist-service/internal/pkg/dto/requests"
	"dentassist-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeProfileRepository struct {
	profiles map[string]*models.Profile
}

func (f *fakeProfileRepository) CreateProfile(_ context.Context, profile *models.Profile) (string, error) {
	f.profiles[profile.ID] = profile
	return profile.ID, nil
}

func (f *fakeProfileRepository) FindProfileByID(_ context.Context, profileID string) (*models.Profile, error) {
	p, ok := f.profiles[profileID]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (f *fakeProfileRepository) FindProfileByEmail(_ context.Context, _ string) (*models.Profile, error) {
	return nil, nil
}

func (f *fakeProfileRepository) ListPatients(_ context.Context, _ string, _ *requests.Pagination) ([]models.Profile, int, error) {
	return nil, 0, nil
}

func (f *fakeProfileRepository) FindPatientsWithAppointmentsOn(_ context.Context, _ string) ([]models.Profile, error) {
	return nil, nil
}

func (f *fakeProfileRepository) FindPatientsWithPaymentsOn(_ context.Context, _ string) ([]models.Profile, error) {
	return nil, nil
}

func (f *fakeProfileRepository) ReplaceAppointments(_ context.Context, _ string, _ []models.Appointment) error {
	return nil
}

func (f *fakeProfileRepository) ReplaceHealthPlan(_ context.Context, profileID string, plan *models.HealthPlan) error {
	p, ok := f.profiles[profileID]
	if !ok {
		return exceptions.ErrProfileNotFound(nil)
	}
	p.HealthPlan = plan
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

func newTestUsecase() (*healthPlanUsecase, *fakeProfileRepository) {
	repo := &fakeProfileRepository{profiles: map[string]*models.Profile{
		"patient-1": {ID: "patient-1", Role: constvars.RolePatient},
	}}
	return &healthPlanUsecase{ProfileRepository: repo, Log: zap.NewNop()}, repo
}

func patientSession() *models.Session {
	return &models.Session{SessionID: "s1", ProfileID: "patient-1", Role: constvars.RolePatient}
}

func doctorSession() *models.Session {
	return &models.Session{SessionID: "s2", ProfileID: "doctor-1", Role: constvars.RoleDoctor}
}

func routineRequest() *requests.UpsertHealthPlan {
	return &requests.UpsertHealthPlan{
		Routine: requests.UpsertHealthPlanRoutine{
			Morning: []string{"brush teeth", "floss"},
			Evening: []string{"brush teeth"},
		},
		Recommendations: "  avoid sugary drinks  ",
	}
}

func TestUpsertHealthPlan(t *testing.T) {
	ctx := context.Background()

	t.Run("doctor creates a plan", func(t *testing.T) {
		uc, repo := newTestUsecase()

		plan, err := uc.UpsertHealthPlan(ctx, doctorSession(), "patient-1", routineRequest())
		require.NoError(t, err)
		assert.Equal(t, []string{"brush teeth", "floss"}, plan.Routine.Morning)
		assert.Equal(t, "avoid sugary drinks", plan.Recommendations)
		assert.False(t, plan.LastUpdated.IsZero())
		assert.Same(t, plan, repo.profiles["patient-1"].HealthPlan)
	})

	t.Run("patient cannot edit the plan", func(t *testing.T) {
		uc, _ := newTestUsecase()

		_, err := uc.UpsertHealthPlan(ctx, patientSession(), "patient-1", routineRequest())
		require.Error(t, err)
		assert.Equal(t, constvars.StatusForbidden, err.(*exceptions.CustomError).StatusCode)
	})

	t.Run("blank steps are trimmed away", func(t *testing.T) {
		uc, _ := newTestUsecase()

		request := routineRequest()
		request.Routine.Morning = []string{"  brush teeth  ", "", "   "}
		plan, err := uc.UpsertHealthPlan(ctx, doctorSession(), "patient-1", request)
		require.NoError(t, err)
		assert.Equal(t, []string{"brush teeth"}, plan.Routine.Morning)
	})

	t.Run("routine of only blanks is rejected", func(t *testing.T) {
		uc, _ := newTestUsecase()

		request := routineRequest()
		request.Routine.Evening = []string{"", "   "}
		_, err := uc.UpsertHealthPlan(ctx, doctorSession(), "patient-1", request)
		require.Error(t, err)
		assert.Equal(t, constvars.StatusBadRequest, err.(*exceptions.CustomError).StatusCode)
	})

	t.Run("editing the routine keeps recorded progress", func(t *testing.T) {
		uc, repo := newTestUsecase()

		_, err := uc.UpsertHealthPlan(ctx, doctorSession(), "patient-1", routineRequest())
		require.NoError(t, err)

		today := time.Now().Format(constvars.ClinicDateLayout)
		_, err = uc.ToggleProgress(ctx, patientSession(), "patient-1", &requests.ToggleProgress{
			Date: today, Period: constvars.RoutinePeriodMorning, Done: true,
		})
		require.NoError(t, err)

		updated := routineRequest()
		updated.Routine.Morning = []string{"brush teeth", "floss", "rinse"}
		plan, err := uc.UpsertHealthPlan(ctx, doctorSession(), "patient-1", updated)
		require.NoError(t, err)
		assert.True(t, plan.Progress[today].Morning)
		assert.Same(t, plan, repo.profiles["patient-1"].HealthPlan)
	})
}

func TestGetHealthPlan(t *testing.T) {
	ctx := context.Background()

	t.Run("missing plan returns not found", func(t *testing.T) {
		uc, _ := newTestUsecase()

		_, err := uc.GetHealthPlan(ctx, patientSession(), "patient-1")
		require.Error(t, err)
		assert.Equal(t, constvars.ErrClientHealthPlanNotFound, err.(*exceptions.CustomError).ClientMessage)
	})

	t.Run("patient reads own plan", func(t *testing.T) {
		uc, _ := newTestUsecase()
		_, err := uc.UpsertHealthPlan(ctx, doctorSession(), "patient-1", routineRequest())
		require.NoError(t, err)

		plan, err := uc.GetHealthPlan(ctx, patientSession(), "patient-1")
		require.NoError(t, err)
		assert.Equal(t, []string{"brush teeth"}, plan.Routine.Evening)
	})

	t.Run("patient cannot read another patient's plan", func(t *testing.T) {
		uc, _ := newTestUsecase()

		_, err := uc.GetHealthPlan(ctx, patientSession(), "patient-2")
		require.Error(t, err)
		assert.Equal(t, constvars.StatusForbidden, err.(*exceptions.CustomError).StatusCode)
	})
}

func TestToggleProgress(t *testing.T) {
	ctx := context.Background()
	today := time.Now().Format(constvars.ClinicDateLayout)

	t.Run("records sparse per-day progress", func(t *testing.T) {
		uc, _ := newTestUsecase()
		_, err := uc.UpsertHealthPlan(ctx, doctorSession(), "patient-1", routineRequest())
		require.NoError(t, err)

		plan, err := uc.ToggleProgress(ctx, patientSession(), "patient-1", &requests.ToggleProgress{
			Date: today, Period: constvars.RoutinePeriodEvening, Done: true,
		})
		require.NoError(t, err)
		require.Len(t, plan.Progress, 1)
		assert.True(t, plan.Progress[today].Evening)
		assert.False(t, plan.Progress[today].Morning)
	})

	t.Run("toggle back to not done", func(t *testing.T) {
		uc, _ := newTestUsecase()
		_, err := uc.UpsertHealthPlan(ctx, doctorSession(), "patient-1", routineRequest())
		require.NoError(t, err)

		_, err = uc.ToggleProgress(ctx, patientSession(), "patient-1", &requests.ToggleProgress{
			Date: today, Period: constvars.RoutinePeriodMorning, Done: true,
		})
		require.NoError(t, err)
		plan, err := uc.ToggleProgress(ctx, patientSession(), "patient-1", &requests.ToggleProgress{
			Date: today, Period: constvars.RoutinePeriodMorning, Done: false,
		})
		require.NoError(t, err)
		assert.False(t, plan.Progress[today].Morning)
	})

	t.Run("future dates are rejected", func(t *testing.T) {
		uc, _ := newTestUsecase()
		_, err := uc.UpsertHealthPlan(ctx, doctorSession(), "patient-1", routineRequest())
		require.NoError(t, err)

		tomorrow := time.Now().AddDate(0, 0, 1).Format(constvars.ClinicDateLayout)
		_, err = uc.ToggleProgress(ctx, patientSession(), "patient-1", &requests.ToggleProgress{
			Date: tomorrow, Period: constvars.RoutinePeriodMorning, Done: true,
		})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrClientProgressDateInFuture, err.(*exceptions.CustomError).ClientMessage)
	})

	t.Run("doctor cannot toggle progress", func(t *testing.T) {
		uc, _ := newTestUsecase()
		_, err := uc.UpsertHealthPlan(ctx, doctorSession(), "patient-1", routineRequest())
		require.NoError(t, err)

		_, err = uc.ToggleProgress(ctx, doctorSession(), "patient-1", &requests.ToggleProgress{
			Date: today, Period: constvars.RoutinePeriodMorning, Done: true,
		})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusForbidden, err.(*exceptions.CustomError).StatusCode)
	})

	t.Run("toggling without a plan fails", func(t *testing.T) {
		uc, _ := newTestUsecase()

		_, err := uc.ToggleProgress(ctx, patientSession(), "patient-1", &requests.ToggleProgress{
			Date: today, Period: constvars.RoutinePeriodMorning, Done: true,
		})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrClientHealthPlanNotFound, err.(*exceptions.CustomError).ClientMessage)
	})

	t.Run("updates lastUpdated", func(t *testing.T) {
		uc, _ := newTestUsecase()
		created, err := uc.UpsertHealthPlan(ctx, doctorSession(), "patient-1", routineRequest())
		require.NoError(t, err)
		before := created.LastUpdated

		plan, err := uc.ToggleProgress(ctx, patientSession(), "patient-1", &requests.ToggleProgress{
			Date: today, Period: constvars.RoutinePeriodMorning, Done: true,
		})
		require.NoError(t, err)
		assert.False(t, plan.LastUpdated.Before(before))
	})
}
