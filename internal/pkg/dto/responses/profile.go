package responses

type PatientSummary struct {
	ProfileID        string `json:"profile_id"`
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone,omitempty"`
	AppointmentCount int    `json:"appointment_count"`
	HasHealthPlan    bool   `json:"has_health_plan"`
}
