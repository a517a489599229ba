package requests

type CreateAppointment struct {
	Date    string `json:"date" validate:"required,clinic_date"`
	Time    string `json:"time" validate:"required,clinic_time"`
	Reason   string `json:"reason" validate:"required,max=200"`
	Symptoms string `json:"symptoms,omitempty" validate:"max=500"`
	Urgency  string `json:"urgency,omitempty" validate:"omitempty,urgency"`
	Notes    string `json:"notes,omitempty" validate:"max=500"`
}

type RescheduleAppointment struct {
	Date string `json:"date" validate:"required,clinic_date"`
	Time string `json:"time" validate:"required,clinic_time"`
}
