package models

import (
	"testing"

	"dentassist-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentCanTransitionTo(t *testing.T) {
	testCases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{constvars.AppointmentStatusPending, constvars.AppointmentStatusConfirmed, true},
		{constvars.AppointmentStatusPending, constvars.AppointmentStatusCancelled, true},
		{constvars.AppointmentStatusPending, constvars.AppointmentStatusCompleted, false},
		{constvars.AppointmentStatusConfirmed, constvars.AppointmentStatusCompleted, true},
		{constvars.AppointmentStatusConfirmed, constvars.AppointmentStatusCancelled, true},
		{constvars.AppointmentStatusConfirmed, constvars.AppointmentStatusPending, false},
		{constvars.AppointmentStatusCompleted, constvars.AppointmentStatusCancelled, false},
		{constvars.AppointmentStatusCompleted, constvars.AppointmentStatusConfirmed, false},
		{constvars.AppointmentStatusCancelled, constvars.AppointmentStatusConfirmed, false},
		{constvars.AppointmentStatusCancelled, constvars.AppointmentStatusPending, false},
	}

	for _, tc := range testCases {
		appointment := Appointment{Status: tc.from}
		assert.Equal(t, tc.allowed, appointment.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestAppointmentIsFinal(t *testing.T) {
	assert.False(t, (&Appointment{Status: constvars.AppointmentStatusPending}).IsFinal())
	assert.False(t, (&Appointment{Status: constvars.AppointmentStatusConfirmed}).IsFinal())
	assert.True(t, (&Appointment{Status: constvars.AppointmentStatusCompleted}).IsFinal())
	assert.True(t, (&Appointment{Status: constvars.AppointmentStatusCancelled}).IsFinal())
}
