package appointments

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"dentassist-service/internal/app/config"
	"dentassist-service/internal/app/contracts"
	"dentassist-service/internal/app/models"
	"dentassist-service/internal/app/services/core/scheduling"
	"dentassist-service/internal/pkg/constvars"
	"dentassist-service/internal/pkg/dto/requests"
	"dentassist-service/internal/pkg/dto/responses"
	"dentassist-service/internal/pkg/exceptions"
	"dentassist-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const slotLockTTL = 5 * time.Second

type appointmentUsecase struct {
	ProfileRepository contracts.ProfileRepository
	LockerService     contracts.LockerService
	MailerQueue       contracts.MailerQueue
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	profileRepository contracts.ProfileRepository,
	lockerService contracts.LockerService,
	mailerQueue contracts.MailerQueue,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			ProfileRepository: profileRepository,
			LockerService:     lockerService,
			MailerQueue:       mailerQueue,
			InternalConfig:    internalConfig,
			Log:               logger,
		}
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) GetDaySchedule(ctx context.Context, date string) (*responses.DaySchedule, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.GetDaySchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, date),
	)

	day, err := utils.ParseClinicDate(date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	slots := scheduling.SlotsForDate(day)
	booked, err := uc.bookedSlots(ctx, date)
	if err != nil {
		uc.Log.Error("appointmentUsecase.GetDaySchedule error collecting booked slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	schedule := &responses.DaySchedule{
		Date:      date,
		Available: []string{},
		Booked:    []string{},
	}
	for _, s := range slots {
		if booked[s] {
			schedule.Booked = append(schedule.Booked, s)
		} else {
			schedule.Available = append(schedule.Available, s)
		}
	}
	return schedule, nil
}

func (uc *appointmentUsecase) ListAppointments(ctx context.Context, session *models.Session, patientID string) ([]models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.ListAppointments called",
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

	appointments := make([]models.Appointment, len(profile.Appointments))
	copy(appointments, profile.Appointments)
	sortAppointments(appointments)
	return appointments, nil
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, session *models.Session, patientID string, request *requests.CreateAppointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	if err := guardPatientAccess(session, patientID); err != nil {
		return nil, err
	}
	if err := uc.validateSlotRequest(request.Date, request.Time); err != nil {
		return nil, err
	}

	profile, err := uc.findPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	release, err := uc.lockDay(ctx, request.Date)
	if err != nil {
		return nil, err
	}
	defer release()

	booked, err := uc.bookedSlots(ctx, request.Date)
	if err != nil {
		return nil, err
	}
	if booked[request.Time] {
		return nil, exceptions.ErrSlotTaken(fmt.Errorf("slot %s %s already booked", request.Date, request.Time))
	}

	urgency := request.Urgency
	if urgency == "" {
		urgency = constvars.UrgencyNormal
	}

	appointment := models.Appointment{
		ID:        utils.GenerateAppointmentID(),
		Date:      request.Date,
		Time:      request.Time,
		Reason:    request.Reason,
		Symptoms:  request.Symptoms,
		Urgency:   urgency,
		Notes:     request.Notes,
		Status:    initialStatusFor(session.Role),
		CreatedBy: session.Role,
		CreatedAt: time.Now(),
	}

	appointments := append(profile.Appointments, appointment)
	sortAppointments(appointments)
	if err := uc.ProfileRepository.ReplaceAppointments(ctx, patientID, appointments); err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "appointment_created", requestID,
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)

	subject := constvars.EmailAppointmentRequestedSubject
	body := fmt.Sprintf(constvars.EmailBodyAppointmentRequested, profile.FullName(), appointment.Date, appointment.Time)
	if appointment.Status == constvars.AppointmentStatusConfirmed {
		subject = constvars.EmailAppointmentConfirmedSubject
		body = fmt.Sprintf(constvars.EmailBodyAppointmentConfirmed, profile.FullName(), appointment.Date, appointment.Time)
	}
	uc.notify(ctx, profile.Email, subject, body)

	return &appointment, nil
}

func (uc *appointmentUsecase) ConfirmAppointment(ctx context.Context, session *models.Session, patientID, appointmentID string) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.ConfirmAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	if session.Role != constvars.RoleDoctor {
		return nil, exceptions.ErrRoleTypeDoesntMatch(errors.New("only doctors may confirm appointments"))
	}

	return uc.transition(ctx, requestID, patientID, appointmentID, constvars.AppointmentStatusConfirmed,
		constvars.EmailAppointmentConfirmedSubject, constvars.EmailBodyAppointmentConfirmed)
}

func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, session *models.Session, patientID, appointmentID string) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	if err := guardPatientAccess(session, patientID); err != nil {
		return nil, err
	}

	profile, err := uc.findPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	idx := profile.FindAppointment(appointmentID)
	if idx < 0 {
		return nil, exceptions.ErrAppointmentNotFound(fmt.Errorf("appointment %s", appointmentID))
	}

	appointment := &profile.Appointments[idx]
	// Cancelling twice is accepted silently rather than treated as a conflict.
	if appointment.Status == constvars.AppointmentStatusCancelled {
		return appointment, nil
	}
	if !appointment.CanTransitionTo(constvars.AppointmentStatusCancelled) {
		return nil, exceptions.ErrAppointmentInvalidTransition(fmt.Errorf("cannot cancel a %s appointment", appointment.Status))
	}

	appointment.Status = constvars.AppointmentStatusCancelled
	if err := uc.ProfileRepository.ReplaceAppointments(ctx, patientID, profile.Appointments); err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "appointment_cancelled", requestID,
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	body := fmt.Sprintf(constvars.EmailBodyAppointmentCancelled, profile.FullName(), appointment.Date, appointment.Time)
	uc.notify(ctx, profile.Email, constvars.EmailAppointmentCancelledSubject, body)

	return appointment, nil
}

func (uc *appointmentUsecase) RescheduleAppointment(ctx context.Context, session *models.Session, patientID, appointmentID string, request *requests.RescheduleAppointment) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.RescheduleAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	if err := guardPatientAccess(session, patientID); err != nil {
		return nil, err
	}
	if err := uc.validateSlotRequest(request.Date, request.Time); err != nil {
		return nil, err
	}

	profile, err := uc.findPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	idx := profile.FindAppointment(appointmentID)
	if idx < 0 {
		return nil, exceptions.ErrAppointmentNotFound(fmt.Errorf("appointment %s", appointmentID))
	}

	appointment := &profile.Appointments[idx]
	if appointment.IsFinal() {
		return nil, exceptions.ErrAppointmentInvalidTransition(fmt.Errorf("cannot reschedule a %s appointment", appointment.Status))
	}

	release, err := uc.lockDay(ctx, request.Date)
	if err != nil {
		return nil, err
	}
	defer release()

	booked, err := uc.bookedSlots(ctx, request.Date)
	if err != nil {
		return nil, err
	}
	sameSlot := appointment.Date == request.Date && appointment.Time == request.Time
	if booked[request.Time] && !sameSlot {
		return nil, exceptions.ErrSlotTaken(fmt.Errorf("slot %s %s already booked", request.Date, request.Time))
	}

	// The record moves in place; one write replaces the whole list so the
	// old slot and the new slot never coexist. A reschedule re-enters the
	// booking flow: doctor moves stay confirmed, patient moves drop back
	// to pending.
	appointment.Date = request.Date
	appointment.Time = request.Time
	appointment.Status = initialStatusFor(session.Role)
	sortAppointments(profile.Appointments)

	idx = profile.FindAppointment(appointmentID)
	if err := uc.ProfileRepository.ReplaceAppointments(ctx, patientID, profile.Appointments); err != nil {
		return nil, err
	}
	appointment = &profile.Appointments[idx]

	utils.LogBusinessEvent(uc.Log, "appointment_rescheduled", requestID,
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	body := fmt.Sprintf(constvars.EmailBodyAppointmentRescheduled, profile.FullName(), appointment.Date, appointment.Time)
	uc.notify(ctx, profile.Email, constvars.EmailAppointmentRescheduledSubject, body)

	return appointment, nil
}

func (uc *appointmentUsecase) CompleteAppointment(ctx context.Context, session *models.Session, patientID, appointmentID string) (*models.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CompleteAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	if session.Role != constvars.RoleDoctor {
		return nil, exceptions.ErrRoleTypeDoesntMatch(errors.New("only doctors may complete appointments"))
	}

	return uc.transition(ctx, requestID, patientID, appointmentID, constvars.AppointmentStatusCompleted, "", "")
}

func (uc *appointmentUsecase) transition(ctx context.Context, requestID, patientID, appointmentID, target, emailSubject, emailBodyFormat string) (*models.Appointment, error) {
	profile, err := uc.findPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	idx := profile.FindAppointment(appointmentID)
	if idx < 0 {
		return nil, exceptions.ErrAppointmentNotFound(fmt.Errorf("appointment %s", appointmentID))
	}

	appointment := &profile.Appointments[idx]
	if !appointment.CanTransitionTo(target) {
		return nil, exceptions.ErrAppointmentInvalidTransition(fmt.Errorf("%s -> %s not allowed", appointment.Status, target))
	}

	appointment.Status = target
	if err := uc.ProfileRepository.ReplaceAppointments(ctx, patientID, profile.Appointments); err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "appointment_"+target, requestID,
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	if emailSubject != "" {
		body := fmt.Sprintf(emailBodyFormat, profile.FullName(), appointment.Date, appointment.Time)
		uc.notify(ctx, profile.Email, emailSubject, body)
	}

	return appointment, nil
}

// validateSlotRequest enforces the server-side booking preconditions: the
// date must not be in the past, the clinic must open that day, and the time
// must be one of the offered slot starts.
func (uc *appointmentUsecase) validateSlotRequest(date, clock string) error {
	day, err := utils.ParseClinicDate(date)
	if err != nil {
		return exceptions.ErrCannotParseDate(err)
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return exceptions.ErrAppointmentDateInPast(fmt.Errorf("date %s", date))
	}
	if !scheduling.IsWorkingDay(day) {
		return exceptions.ErrClinicClosed(fmt.Errorf("date %s is a %s", date, day.Weekday()))
	}
	if !scheduling.IsValidSlot(day, clock) {
		return exceptions.ErrSlotOutsideWorkingWindows(fmt.Errorf("time %s on %s", clock, date))
	}
	return nil
}

// bookedSlots collects every pending or confirmed appointment time on the
// given date across all patients.
func (uc *appointmentUsecase) bookedSlots(ctx context.Context, date string) (map[string]bool, error) {
	profiles, err := uc.ProfileRepository.FindPatientsWithAppointmentsOn(ctx, date)
	if err != nil {
		return nil, err
	}

	booked := make(map[string]bool)
	for _, p := range profiles {
		for _, a := range p.Appointments {
			if a.Date != date {
				continue
			}
			if a.Status == constvars.AppointmentStatusPending || a.Status == constvars.AppointmentStatusConfirmed {
				booked[a.Time] = true
			}
		}
	}
	return booked, nil
}

func (uc *appointmentUsecase) lockDay(ctx context.Context, date string) (func(), error) {
	key := "lock:slots:" + date
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, key, slotLockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrSlotTaken(fmt.Errorf("day %s is being booked by another request", date))
	}
	return func() {
		if err := uc.LockerService.Unlock(ctx, key, lockValue); err != nil {
			uc.Log.Warn("appointmentUsecase failed to release day lock", zap.Error(err))
		}
	}, nil
}

func (uc *appointmentUsecase) notify(ctx context.Context, email, subject, body string) {
	payload := &requests.EmailPayload{
		Subject: subject,
		From:    uc.InternalConfig.Mailer.EmailSender,
		To:      []string{email},
		Body:    body,
	}
	if err := uc.MailerQueue.PublishEmail(ctx, payload); err != nil {
		uc.Log.Warn("appointmentUsecase failed to enqueue notification email", zap.Error(err))
	}
}

func (uc *appointmentUsecase) findPatient(ctx context.Context, patientID string) (*models.Profile, error) {
	profile, err := uc.ProfileRepository.FindProfileByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if profile == nil || profile.Role != constvars.RolePatient {
		return nil, exceptions.ErrProfileNotFound(fmt.Errorf("patient %s", patientID))
	}
	return profile, nil
}

// initialStatusFor is the status a booking enters the calendar with:
// doctor-made bookings are confirmed on the spot, patient requests wait
// for confirmation.
func initialStatusFor(role string) string {
	if role == constvars.RoleDoctor {
		return constvars.AppointmentStatusConfirmed
	}
	return constvars.AppointmentStatusPending
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

// sortAppointments orders by calendar date, then start time. String
// comparison is correct because both fields use zero-padded layouts.
func sortAppointments(list []models.Appointment) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Date != list[j].Date {
			return list[i].Date < list[j].Date
		}
		return list[i].Time < list[j].Time
	})
}
