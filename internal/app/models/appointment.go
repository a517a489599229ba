package models

import (
	"time"

	"dentassist-service/internal/pkg/constvars"
)

// Appointment is embedded in the owning patient's profile document, never
// stored in a collection of its own.
type Appointment struct {
	ID        string    `json:"id" bson:"id"`
	Date      string    `json:"date" bson:"date"`
	Time      string    `json:"time" bson:"time"`
	Reason    string    `json:"reason" bson:"reason"`
	Symptoms  string    `json:"symptoms,omitempty" bson:"symptoms,omitempty"`
	Urgency   string    `json:"urgency" bson:"urgency"`
	Notes     string    `json:"notes,omitempty" bson:"notes,omitempty"`
	Status    string    `json:"status" bson:"status"`
	CreatedBy string    `json:"createdBy" bson:"createdBy"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

func (a *Appointment) IsFinal() bool {
	return a.Status == constvars.AppointmentStatusCompleted || a.Status == constvars.AppointmentStatusCancelled
}

func (a *Appointment) CanTransitionTo(status string) bool {
	switch a.Status {
	case constvars.AppointmentStatusPending:
		return status == constvars.AppointmentStatusConfirmed || status == constvars.AppointmentStatusCancelled
	case constvars.AppointmentStatusConfirmed:
		return status == constvars.AppointmentStatusCompleted || status == constvars.AppointmentStatusCancelled
	default:
		return false
	}
}
