package requests

type AddMedicalRecord struct {
	Date        string `json:"date" validate:"required,clinic_date"`
	Treatment   string `json:"treatment" validate:"required"`
	Description string `json:"description" validate:"required"`
	Notes       string `json:"notes,omitempty" validate:"max=1000"`
}
