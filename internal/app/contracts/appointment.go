package contracts

import (
	"context"

	"dentassist-service/internal/app/models"
	"dentassist-service/internal/pkg/dto/requests"
	"dentassist-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	GetDaySchedule(ctx context.Context, date string) (*responses.DaySchedule, error)
	ListAppointments(ctx context.Context, session *models.Session, patientID string) ([]models.Appointment, error)
	CreateAppointment(ctx context.Context, session *models.Session, patientID string, request *requests.CreateAppointment) (*models.Appointment, error)
	ConfirmAppointment(ctx context.Context, session *models.Session, patientID, appointmentID string) (*models.Appointment, error)
	CancelAppointment(ctx context.Context, session *models.Session, patientID, appointmentID string) (*models.Appointment, error)
	RescheduleAppointment(ctx context.Context, session *models.Session, patientID, appointmentID string, request *requests.RescheduleAppointment) (*models.Appointment, error)
	CompleteAppointment(ctx context.Context, session *models.Session, patientID, appointmentID string) (*models.Appointment, error)
}
