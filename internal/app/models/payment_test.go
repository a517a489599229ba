package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotalsSumsLineItems(t *testing.T) {
	payment := Payment{
		Items: []PaymentItem{
			{TreatmentCode: "CONS01", UnitPrice: 50, Quantity: 1},
			{TreatmentCode: "FILL01", UnitPrice: 120, Quantity: 2},
		},
	}

	payment.ComputeTotals()

	assert.Equal(t, 290.0, payment.Total)
	assert.Equal(t, 0.0, payment.InsuranceCovered)
	assert.Equal(t, 290.0, payment.PatientDue)
}

func TestComputeTotalsWithInsuranceSplit(t *testing.T) {
	payment := Payment{
		Items: []PaymentItem{
			{TreatmentCode: "ROOT01", UnitPrice: 300, Quantity: 1},
		},
		Insurance: &InsuranceClaim{Provider: "DentCare", CoveragePct: 60},
	}

	payment.ComputeTotals()

	assert.Equal(t, 300.0, payment.Total)
	assert.Equal(t, 180.0, payment.InsuranceCovered)
	assert.Equal(t, 120.0, payment.PatientDue)
}

func TestComputeTotalsIsIdempotent(t *testing.T) {
	payment := Payment{
		Items:     []PaymentItem{{UnitPrice: 80, Quantity: 1}},
		Insurance: &InsuranceClaim{CoveragePct: 50},
	}

	payment.ComputeTotals()
	payment.ComputeTotals()

	assert.Equal(t, 80.0, payment.Total)
	assert.Equal(t, 40.0, payment.InsuranceCovered)
	assert.Equal(t, 40.0, payment.PatientDue)
}

func TestComputeTotalsEmptyItems(t *testing.T) {
	payment := Payment{}
	payment.ComputeTotals()

	assert.Equal(t, 0.0, payment.Total)
	assert.Equal(t, 0.0, payment.PatientDue)
}
