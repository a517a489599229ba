package utils

import (
	"testing"

	"dentassist-service/internal/pkg/constvars"
	"dentassist-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func validCreateAppointment() *requests.CreateAppointment {
	return &requests.CreateAppointment{
		Date:    "2030-06-03",
		Time:    "09:30",
		Reason:  "checkup",
		Urgency: constvars.UrgencyNormal,
	}
}

func TestValidateCreateAppointment(t *testing.T) {
	assert.NoError(t, ValidateStruct(validCreateAppointment()))
}

func TestValidateClinicDateFormat(t *testing.T) {
	request := validCreateAppointment()
	request.Date = "03-06-2030"
	assert.Error(t, ValidateStruct(request))

	request.Date = "2030-02-30"
	assert.Error(t, ValidateStruct(request))
}

func TestValidateClinicTimeHalfHourOnly(t *testing.T) {
	request := validCreateAppointment()

	for _, clock := range []string{"09:00", "09:30", "17:30"} {
		request.Time = clock
		assert.NoError(t, ValidateStruct(request), clock)
	}

	for _, clock := range []string{"09:15", "9:00", "09:61", "morning"} {
		request.Time = clock
		assert.Error(t, ValidateStruct(request), clock)
	}
}

func TestValidateUrgency(t *testing.T) {
	request := validCreateAppointment()

	for _, urgency := range []string{constvars.UrgencyNormal, constvars.UrgencyUrgent, constvars.UrgencyEmergency} {
		request.Urgency = urgency
		assert.NoError(t, ValidateStruct(request), urgency)
	}

	request.Urgency = "whenever"
	assert.Error(t, ValidateStruct(request))

	// Urgency is optional on the wire; the default applies later.
	request.Urgency = ""
	assert.NoError(t, ValidateStruct(request))
}

func TestValidatePassword(t *testing.T) {
	register := &requests.RegisterUser{
		Email:     "ana@example.com",
		Password:  "Sup3r$ecret",
		FirstName: "Ana",
		LastName:  "Silva",
	}
	assert.NoError(t, ValidateStruct(register))

	register.Password = "short"
	assert.Error(t, ValidateStruct(register))

	register.Password = "alllowercase$but-long"
	assert.Error(t, ValidateStruct(register))

	register.Password = "NoSpecialChar123"
	assert.Error(t, ValidateStruct(register))
}
