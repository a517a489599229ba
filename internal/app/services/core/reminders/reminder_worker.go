package reminders

import (
	"context"
	"fmt"
	"time"

	"dentassist-service/internal/app/config"
	"dentassist-service/internal/app/contracts"
	"dentassist-service/internal/pkg/constvars"
	"dentassist-service/internal/pkg/dto/requests"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	leaderLockKey = "lock:reminder-worker"
	leaderLockTTL = 5 * time.Minute
)

// Worker sends reminder emails ahead of upcoming appointments. Several
// instances of the service may run the same schedule; a redis lock elects
// one of them per tick.
type Worker struct {
	ProfileRepository contracts.ProfileRepository
	LockerService     contracts.LockerService
	MailerQueue       contracts.MailerQueue
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger

	cron *cron.Cron
}

func NewWorker(
	profileRepository contracts.ProfileRepository,
	lockerService contracts.LockerService,
	mailerQueue contracts.MailerQueue,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *Worker {
	return &Worker{
		ProfileRepository: profileRepository,
		LockerService:     lockerService,
		MailerQueue:       mailerQueue,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

// Start schedules the worker and returns a stop function.
func (w *Worker) Start() (func(), error) {
	w.cron = cron.New()
	_, err := w.cron.AddFunc(w.InternalConfig.Clinic.ReminderCronSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		w.RunOnce(ctx)
	})
	if err != nil {
		return nil, err
	}

	w.cron.Start()
	w.Log.Info("reminder worker started",
		zap.String("cron_spec", w.InternalConfig.Clinic.ReminderCronSpec),
		zap.Int("look_ahead_days", w.InternalConfig.Clinic.ReminderLookAheadDays),
	)

	return func() {
		stopCtx := w.cron.Stop()
		<-stopCtx.Done()
		w.Log.Info("reminder worker stopped")
	}, nil
}

// RunOnce sends reminders for every pending or confirmed appointment that
// falls on today plus the configured look-ahead.
func (w *Worker) RunOnce(ctx context.Context) {
	acquired, lockValue, err := w.LockerService.TryLock(ctx, leaderLockKey, leaderLockTTL)
	if err != nil {
		w.Log.Error("reminder worker could not reach the lock store", zap.Error(err))
		return
	}
	if !acquired {
		w.Log.Debug("reminder worker skipped tick, another instance holds the lock")
		return
	}
	defer func() {
		if err := w.LockerService.Unlock(ctx, leaderLockKey, lockValue); err != nil {
			w.Log.Warn("reminder worker failed to release the lock", zap.Error(err))
		}
	}()

	target := time.Now().
		AddDate(0, 0, w.InternalConfig.Clinic.ReminderLookAheadDays).
		Format(constvars.ClinicDateLayout)

	profiles, err := w.ProfileRepository.FindPatientsWithAppointmentsOn(ctx, target)
	if err != nil {
		w.Log.Error("reminder worker failed to load appointments",
			zap.String(constvars.LoggingDateKey, target),
			zap.Error(err),
		)
		return
	}

	sent := 0
	for i := range profiles {
		profile := &profiles[i]
		for _, appointment := range profile.Appointments {
			if appointment.Date != target {
				continue
			}
			if appointment.Status != constvars.AppointmentStatusPending &&
				appointment.Status != constvars.AppointmentStatusConfirmed {
				continue
			}

			payload := &requests.EmailPayload{
				Subject: constvars.EmailAppointmentReminderSubject,
				From:    w.InternalConfig.Mailer.EmailSender,
				To:      []string{profile.Email},
				Body: fmt.Sprintf(constvars.EmailBodyAppointmentReminder,
					profile.FullName(), appointment.Date, appointment.Time, appointment.Reason),
			}
			if err := w.MailerQueue.PublishEmail(ctx, payload); err != nil {
				w.Log.Warn("reminder worker failed to enqueue email",
					zap.String(constvars.LoggingPatientIDKey, profile.ID),
					zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
					zap.Error(err),
				)
				continue
			}
			sent++
		}
	}

	w.Log.Info("reminder worker tick finished",
		zap.String(constvars.LoggingDateKey, target),
		zap.Int("reminders_sent", sent),
	)
}
