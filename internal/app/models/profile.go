package models

// Profile is the root aggregate for a patient or doctor. Everything that
// belongs to one person, from appointments to billing history, lives inside
// this single document.
type Profile struct {
	ID             string          `json:"id" bson:"_id,omitempty"`
	Email          string          `json:"email" bson:"email"`
	FirstName      string          `json:"firstName" bson:"firstName"`
	LastName       string          `json:"lastName" bson:"lastName"`
	Phone          string          `json:"phone,omitempty" bson:"phone,omitempty"`
	Role           string          `json:"role" bson:"role"`
	Appointments   []Appointment   `json:"appointments" bson:"appointments"`
	HealthPlan     *HealthPlan     `json:"healthPlan,omitempty" bson:"healthPlan,omitempty"`
	MedicalHistory []MedicalRecord `json:"medicalHistory" bson:"medicalHistory"`
	Payments       []Payment       `json:"payments" bson:"payments"`
	TimeModel      `bson:",inline"`
}

func (p *Profile) FullName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// FindAppointment returns the index of the appointment with the given id,
// or -1 when it is not in the list.
func (p *Profile) FindAppointment(appointmentID string) int {
	for i := range p.Appointments {
		if p.Appointments[i].ID == appointmentID {
			return i
		}
	}
	return -1
}
