package auth

import (
	"context"
	"testing"
	"time"

	"dentassist-service/internal/app/config"
	"dentassist-service/internal/app/models"
	"dentassist-service/internal/pkg/constvars"
	"dentassist-service/internal/pkg/dto/requests"
	"dentassist-service/internal/pkg/exceptions"
	"dentassist-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUserRepository struct {
	users map[string]*models.User
	next  int
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user *models.User) (string, error) {
	f.next++
	user.ID = "user-" + string(rune('0'+f.next))
	f.users[user.Email] = user
	return user.ID, nil
}

func (f *fakeUserRepository) FindUserByID(_ context.Context, userID string) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepository) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	return u, nil
}

type fakeProfileRepository struct {
	created []*models.Profile
}

func (f *fakeProfileRepository) CreateProfile(_ context.Context, profile *models.Profile) (string, error) {
	profile.ID = "profile-1"
	f.created = append(f.created, profile)
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

func (f *fakeProfileRepository) FindPatientsWithAppointmentsOn(_ context.Context, _ string) ([]models.Profile, error) {
	return nil, nil
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

type fakeSessionService struct {
	sessions map[string]*models.Session
	deleted  []string
}

func (f *fakeSessionService) StoreSession(_ context.Context, session *models.Session, _ time.Duration) error {
	f.sessions[session.SessionID] = session
	return nil
}

func (f *fakeSessionService) ParseSessionData(_ context.Context, _ string) (*models.Session, error) {
	return nil, nil
}

func (f *fakeSessionService) GetSessionData(_ context.Context, _ string) (string, error) {
	return "", nil
}

func (f *fakeSessionService) DeleteSession(_ context.Context, sessionID string) error {
	f.deleted = append(f.deleted, sessionID)
	delete(f.sessions, sessionID)
	return nil
}

func newTestUsecase() (*authUsecase, *fakeUserRepository, *fakeProfileRepository, *fakeSessionService) {
	users := &fakeUserRepository{users: map[string]*models.User{}}
	profiles := &fakeProfileRepository{}
	sessions := &fakeSessionService{sessions: map[string]*models.Session{}}
	uc := &authUsecase{
		UserRepository:    users,
		ProfileRepository: profiles,
		SessionService:    sessions,
		InternalConfig: &config.InternalConfig{
			App: config.App{LoginSessionExpiredTimeInHours: 24},
			JWT: config.AppJWT{Secret: "test-secret"},
		},
		Log: zap.NewNop(),
	}
	return uc, users, profiles, sessions
}

func registerRequest() *requests.RegisterUser {
	return &requests.RegisterUser{
		Email:          "alice@example.com",
		Password:       "Str0ngPass!",
		RetypePassword: "Str0ngPass!",
		FirstName:      "Alice",
		LastName:       "Martin",
	}
}

func TestRegisterPatient(t *testing.T) {
	ctx := context.Background()

	t.Run("creates profile then user", func(t *testing.T) {
		uc, users, profiles, _ := newTestUsecase()

		resp, err := uc.RegisterPatient(ctx, registerRequest())
		require.NoError(t, err)
		assert.Equal(t, constvars.RolePatient, resp.Role)
		assert.Equal(t, "profile-1", resp.ProfileID)
		require.Len(t, profiles.created, 1)
		assert.Equal(t, constvars.RolePatient, profiles.created[0].Role)

		stored := users.users["alice@example.com"]
		require.NotNil(t, stored)
		assert.NotEqual(t, "Str0ngPass!", stored.Password)
		assert.True(t, utils.CheckPasswordHash("Str0ngPass!", stored.Password))
	})

	t.Run("mismatched passwords", func(t *testing.T) {
		uc, _, _, _ := newTestUsecase()

		request := registerRequest()
		request.RetypePassword = "different"
		_, err := uc.RegisterPatient(ctx, request)
		require.Error(t, err)
		assert.Equal(t, constvars.StatusBadRequest, err.(*exceptions.CustomError).StatusCode)
	})

	t.Run("duplicate email", func(t *testing.T) {
		uc, _, _, _ := newTestUsecase()

		_, err := uc.RegisterPatient(ctx, registerRequest())
		require.NoError(t, err)
		_, err = uc.RegisterPatient(ctx, registerRequest())
		require.Error(t, err)
		assert.Equal(t, constvars.ErrClientEmailAlreadyExists, err.(*exceptions.CustomError).ClientMessage)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials produce a token and session", func(t *testing.T) {
		uc, _, _, sessions := newTestUsecase()
		_, err := uc.RegisterPatient(ctx, registerRequest())
		require.NoError(t, err)

		resp, err := uc.Login(ctx, &requests.LoginUser{Email: "alice@example.com", Password: "Str0ngPass!"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "profile-1", resp.ProfileID)
		assert.Equal(t, constvars.RolePatient, resp.Role)
		require.Len(t, sessions.sessions, 1)

		sessionID, err := utils.ParseSessionJWT(resp.Token, "test-secret")
		require.NoError(t, err)
		_, ok := sessions.sessions[sessionID]
		assert.True(t, ok)
	})

	t.Run("wrong password", func(t *testing.T) {
		uc, _, _, _ := newTestUsecase()
		_, err := uc.RegisterPatient(ctx, registerRequest())
		require.NoError(t, err)

		_, err = uc.Login(ctx, &requests.LoginUser{Email: "alice@example.com", Password: "wrongpass1"})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrClientInvalidEmailOrPassword, err.(*exceptions.CustomError).ClientMessage)
	})

	t.Run("unknown email", func(t *testing.T) {
		uc, _, _, _ := newTestUsecase()

		_, err := uc.Login(ctx, &requests.LoginUser{Email: "ghost@example.com", Password: "whatever1"})
		require.Error(t, err)
		assert.Equal(t, constvars.ErrClientInvalidEmailOrPassword, err.(*exceptions.CustomError).ClientMessage)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the stored session", func(t *testing.T) {
		uc, _, _, sessions := newTestUsecase()
		_, err := uc.RegisterPatient(ctx, registerRequest())
		require.NoError(t, err)
		resp, err := uc.Login(ctx, &requests.LoginUser{Email: "alice@example.com", Password: "Str0ngPass!"})
		require.NoError(t, err)

		sessionID, err := utils.ParseSessionJWT(resp.Token, "test-secret")
		require.NoError(t, err)

		err = uc.Logout(ctx, &models.Session{SessionID: sessionID})
		require.NoError(t, err)
		assert.Empty(t, sessions.sessions)
		assert.Equal(t, []string{sessionID}, sessions.deleted)
	})
}
