package requests

type PaymentItem struct {
	TreatmentCode string  `json:"treatment_code" validate:"required"`
	Quantity      int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice     float64 `json:"unit_price" validate:"omitempty,gte=0"`
	Description   string  `json:"description,omitempty"`
}

type InsuranceClaim struct {
	Provider    string  `json:"provider" validate:"required"`
	CoveragePct float64 `json:"coverage_pct" validate:"gte=0,lte=100"`
}

type CreatePayment struct {
	Date      string          `json:"date" validate:"required,clinic_date"`
	Items     []PaymentItem   `json:"items" validate:"required,min=1,dive"`
	Method    string          `json:"method" validate:"required,oneof=cash card insurance"`
	Status    string          `json:"status" validate:"omitempty,oneof=completed pending refunded"`
	Insurance *InsuranceClaim `json:"insurance,omitempty"`
}
