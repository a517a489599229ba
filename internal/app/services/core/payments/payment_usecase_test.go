package payments

import (
	"context"
	"testing"

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

func (f *fakeProfileRepository) FindPatientsWithPaymentsOn(_ context.Context, date string) ([]models.Profile, error) {
	var matched []models.Profile
	for _, p := range f.profiles {
		for _, payment := range p.Payments {
			if payment.Date == date {
				matched = append(matched, *p)
				break
			}
		}
	}
	return matched, nil
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

func (f *fakeProfileRepository) ReplacePayments(_ context.Context, profileID string, payments []models.Payment) error {
	p, ok := f.profiles[profileID]
	if !ok {
		return exceptions.ErrProfileNotFound(nil)
	}
	p.Payments = payments
	return nil
}

func (f *fakeProfileRepository) WatchProfile(_ context.Context, _ string) (<-chan *models.Profile, func(), error) {
	ch := make(chan *models.Profile)
	close(ch)
	return ch, func() {}, nil
}

type fakeTreatmentRepository struct {
	catalogue map[string]models.Treatment
}

func (f *fakeTreatmentRepository) FindAllTreatments(_ context.Context) ([]models.Treatment, error) {
	var all []models.Treatment
	for _, t := range f.catalogue {
		all = append(all, t)
	}
	return all, nil
}

func (f *fakeTreatmentRepository) FindTreatmentByCode(_ context.Context, code string) (*models.Treatment, error) {
	t, ok := f.catalogue[code]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (f *fakeTreatmentRepository) UpsertTreatment(_ context.Context, treatment *models.Treatment) error {
	f.catalogue[treatment.Code] = *treatment
	return nil
}

func newTestUsecase() (*paymentUsecase, *fakeProfileRepository) {
	repo := &fakeProfileRepository{profiles: map[string]*models.Profile{
		"patient-1": {ID: "patient-1", Role: constvars.RolePatient},
	}}
	treatments := &fakeTreatmentRepository{catalogue: map[string]models.Treatment{
		"CONS01":  {Code: "CONS01", Name: "Consultation", Price: 50},
		"CLEAN01": {Code: "CLEAN01", Name: "Cleaning", Price: 80},
		"FILL01":  {Code: "FILL01", Name: "Composite filling", Price: 120},
	}}
	return &paymentUsecase{
		ProfileRepository:   repo,
		TreatmentRepository: treatments,
		Log:                 zap.NewNop(),
	}, repo
}

func patientSession() *models.Session {
	return &models.Session{SessionID: "s1", ProfileID: "patient-1", Role: constvars.RolePatient}
}

func doctorSession() *models.Session {
	return &models.Session{SessionID: "s2", ProfileID: "doctor-1", Role: constvars.RoleDoctor}
}

func TestCreatePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("totals derive from line items", func(t *testing.T) {
		uc, repo := newTestUsecase()

		payment, err := uc.CreatePayment(ctx, doctorSession(), "patient-1", &requests.CreatePayment{
			Date:   "2026-09-01",
			Method: constvars.PaymentMethodCard,
			Items: []requests.PaymentItem{
				{TreatmentCode: "CONS01", Quantity: 1},
				{TreatmentCode: "FILL01", Quantity: 2},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 290.0, payment.Total)
		assert.Equal(t, 0.0, payment.InsuranceCovered)
		assert.Equal(t, 290.0, payment.PatientDue)
		assert.Equal(t, constvars.PaymentStatusCompleted, payment.Status)
		require.Len(t, repo.profiles["patient-1"].Payments, 1)
	})

	t.Run("catalogue fills description and price", func(t *testing.T) {
		uc, _ := newTestUsecase()

		payment, err := uc.CreatePayment(ctx, doctorSession(), "patient-1", &requests.CreatePayment{
			Date:   "2026-09-01",
			Method: constvars.PaymentMethodCash,
			Items: []requests.PaymentItem{
				{TreatmentCode: "CLEAN01", Quantity: 1},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "Cleaning", payment.Items[0].Description)
		assert.Equal(t, 80.0, payment.Items[0].UnitPrice)
	})

	t.Run("request overrides keep precedence", func(t *testing.T) {
		uc, _ := newTestUsecase()

		payment, err := uc.CreatePayment(ctx, doctorSession(), "patient-1", &requests.CreatePayment{
			Date:   "2026-09-01",
			Method: constvars.PaymentMethodCash,
			Items: []requests.PaymentItem{
				{TreatmentCode: "CLEAN01", Quantity: 1, UnitPrice: 70, Description: "Discounted cleaning"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "Discounted cleaning", payment.Items[0].Description)
		assert.Equal(t, 70.0, payment.Total)
	})

	t.Run("insurance coverage splits the bill", func(t *testing.T) {
		uc, _ := newTestUsecase()

		payment, err := uc.CreatePayment(ctx, doctorSession(), "patient-1", &requests.CreatePayment{
			Date:   "2026-09-01",
			Method: constvars.PaymentMethodInsurance,
			Items: []requests.PaymentItem{
				{TreatmentCode: "FILL01", Quantity: 1},
			},
			Insurance: &requests.InsuranceClaim{Provider: "MutuelleX", CoveragePct: 75},
		})
		require.NoError(t, err)
		assert.Equal(t, 120.0, payment.Total)
		assert.Equal(t, 90.0, payment.InsuranceCovered)
		assert.Equal(t, 30.0, payment.PatientDue)
		require.NotNil(t, payment.Insurance)
		assert.Equal(t, constvars.InsuranceClaimStatusPending, payment.Insurance.ClaimStatus)
	})

	t.Run("unknown treatment code is rejected", func(t *testing.T) {
		uc, _ := newTestUsecase()

		_, err := uc.CreatePayment(ctx, doctorSession(), "patient-1", &requests.CreatePayment{
			Date:   "2026-09-01",
			Method: constvars.PaymentMethodCash,
			Items: []requests.PaymentItem{
				{TreatmentCode: "NOPE99", Quantity: 1},
			},
		})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrClientUnknownTreatmentCode, err.(*exceptions.CustomError).ClientMessage)
	})

	t.Run("patients cannot record payments", func(t *testing.T) {
		uc, _ := newTestUsecase()

		_, err := uc.CreatePayment(ctx, patientSession(), "patient-1", &requests.CreatePayment{
			Date:   "2026-09-01",
			Method: constvars.PaymentMethodCash,
			Items: []requests.PaymentItem{
				{TreatmentCode: "CONS01", Quantity: 1},
			},
		})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusForbidden, err.(*exceptions.CustomError).StatusCode)
	})
}

func TestGetPaymentStats(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates across payments", func(t *testing.T) {
		uc, _ := newTestUsecase()

		_, err := uc.CreatePayment(ctx, doctorSession(), "patient-1", &requests.CreatePayment{
			Date:   "2026-09-01",
			Method: constvars.PaymentMethodCard,
			Items:  []requests.PaymentItem{{TreatmentCode: "CONS01", Quantity: 1}},
		})
		require.NoError(t, err)
		_, err = uc.CreatePayment(ctx, doctorSession(), "patient-1", &requests.CreatePayment{
			Date:   "2026-09-08",
			Method: constvars.PaymentMethodInsurance,
			Status: constvars.PaymentStatusPending,
			Items:  []requests.PaymentItem{{TreatmentCode: "FILL01", Quantity: 1}},
			Insurance: &requests.InsuranceClaim{
				Provider: "MutuelleX", CoveragePct: 50,
			},
		})
		require.NoError(t, err)

		stats, err := uc.GetPaymentStats(ctx, patientSession(), "patient-1")
		require.NoError(t, err)
		assert.Equal(t, 170.0, stats.TotalBilled)
		assert.Equal(t, 60.0, stats.TotalInsurance)
		assert.Equal(t, 110.0, stats.TotalPatientDue)
		assert.Equal(t, 1, stats.PaymentsByStatus[constvars.PaymentStatusCompleted])
		assert.Equal(t, 1, stats.PaymentsByStatus[constvars.PaymentStatusPending])
	})

	t.Run("empty history yields zeroes", func(t *testing.T) {
		uc, _ := newTestUsecase()

		stats, err := uc.GetPaymentStats(ctx, patientSession(), "patient-1")
		require.NoError(t, err)
		assert.Zero(t, stats.TotalBilled)
		assert.Empty(t, stats.PaymentsByStatus)
	})

	t.Run("patient cannot read another patient's stats", func(t *testing.T) {
		uc, _ := newTestUsecase()

		_, err := uc.GetPaymentStats(ctx, patientSession(), "patient-2")
		require.Error(t, err)
		assert.Equal(t, constvars.StatusForbidden, err.(*exceptions.CustomError).StatusCode)
	})
}

func TestGetDailyStats(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates one day across patients", func(t *testing.T) {
		uc, repo := newTestUsecase()
		repo.profiles["patient-2"] = &models.Profile{ID: "patient-2", Role: constvars.RolePatient}

		_, err := uc.CreatePayment(ctx, doctorSession(), "patient-1", &requests.CreatePayment{
			Date:   "2026-09-01",
			Method: constvars.PaymentMethodCard,
			Items:  []requests.PaymentItem{{TreatmentCode: "CONS01", Quantity: 1}},
		})
		require.NoError(t, err)
		_, err = uc.CreatePayment(ctx, doctorSession(), "patient-2", &requests.CreatePayment{
			Date:   "2026-09-01",
			Method: constvars.PaymentMethodCash,
			Items:  []requests.PaymentItem{{TreatmentCode: "FILL01", Quantity: 2}},
		})
		require.NoError(t, err)

		// A payment on another day never leaks into the requested one.
		_, err = uc.CreatePayment(ctx, doctorSession(), "patient-1", &requests.CreatePayment{
			Date:   "2026-09-08",
			Method: constvars.PaymentMethodCash,
			Items:  []requests.PaymentItem{{TreatmentCode: "CLEAN01", Quantity: 1}},
		})
		require.NoError(t, err)

		stats, err := uc.GetDailyStats(ctx, doctorSession(), "2026-09-01")
		require.NoError(t, err)
		assert.Equal(t, "2026-09-01", stats.Date)
		assert.Equal(t, 290.0, stats.TotalRevenue)
		assert.Equal(t, 2, stats.PatientCount)
		assert.Equal(t, 1, stats.PaymentsByMethod[constvars.PaymentMethodCard])
		assert.Equal(t, 1, stats.PaymentsByMethod[constvars.PaymentMethodCash])
		assert.Equal(t, 1, stats.TreatmentCounts["CONS01"])
		assert.Equal(t, 2, stats.TreatmentCounts["FILL01"])
	})

	t.Run("a day without payments yields zeroes", func(t *testing.T) {
		uc, _ := newTestUsecase()

		stats, err := uc.GetDailyStats(ctx, doctorSession(), "2026-09-01")
		require.NoError(t, err)
		assert.Zero(t, stats.TotalRevenue)
		assert.Zero(t, stats.PatientCount)
		assert.Empty(t, stats.PaymentsByMethod)
	})

	t.Run("patients cannot view clinic stats", func(t *testing.T) {
		uc, _ := newTestUsecase()

		_, err := uc.GetDailyStats(ctx, patientSession(), "2026-09-01")
		require.Error(t, err)
		assert.Equal(t, constvars.StatusForbidden, err.(*exceptions.CustomError).StatusCode)
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		uc, _ := newTestUsecase()

		_, err := uc.GetDailyStats(ctx, doctorSession(), "01-09-2026")
		require.Error(t, err)
		assert.Equal(t, constvars.StatusBadRequest, err.(*exceptions.CustomError).StatusCode)
	})
}
