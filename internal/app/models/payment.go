package models

import "time"

type PaymentItem struct {
	TreatmentCode string  `json:"treatmentCode" bson:"treatmentCode"`
	Description   string  `json:"description" bson:"description"`
	UnitPrice     float64 `json:"unitPrice" bson:"unitPrice"`
	Quantity      int     `json:"quantity" bson:"quantity"`
}

type InsuranceClaim struct {
	Provider    string  `json:"provider" bson:"provider"`
	CoveragePct float64 `json:"coveragePct" bson:"coveragePct"`
	ClaimStatus string  `json:"claimStatus" bson:"claimStatus"`
}

type Payment struct {
	ID               string          `json:"id" bson:"id"`
	Date             string          `json:"date" bson:"date"`
	Items            []PaymentItem   `json:"items" bson:"items"`
	Method           string          `json:"method" bson:"method"`
	Status           string          `json:"status" bson:"status"`
	Insurance        *InsuranceClaim `json:"insurance,omitempty" bson:"insurance,omitempty"`
	Total            float64         `json:"total" bson:"total"`
	InsuranceCovered float64         `json:"insuranceCovered" bson:"insuranceCovered"`
	PatientDue       float64         `json:"patientDue" bson:"patientDue"`
	CreatedAt        time.Time       `json:"createdAt" bson:"createdAt"`
}

// ComputeTotals derives the monetary fields from the line items so they can
// never drift from what was billed.
func (p *Payment) ComputeTotals() {
	var total float64
	for _, item := range p.Items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	p.Total = total

	p.InsuranceCovered = 0
	if p.Insurance != nil {
		p.InsuranceCovered = total * p.Insurance.CoveragePct / 100
	}
	p.PatientDue = total - p.InsuranceCovered
}
