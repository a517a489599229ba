package responses

type PaymentStats struct {
	TotalBilled      float64        `json:"total_billed"`
	TotalInsurance   float64        `json:"total_insurance"`
	TotalPatientDue  float64        `json:"total_patient_due"`
	PaymentsByStatus map[string]int `json:"payments_by_status"`
}

// DailyPaymentStats summarizes one clinic day across every patient.
type DailyPaymentStats struct {
	Date             string         `json:"date"`
	TotalRevenue     float64        `json:"total_revenue"`
	PatientCount     int            `json:"patient_count"`
	PaymentsByMethod map[string]int `json:"payments_by_method"`
	TreatmentCounts  map[string]int `json:"treatment_counts"`
}
