package pricing

import (
	"testing"

	"clinicpro-backend/models"
)

var catalog = []models.Service{
	{ID: "1", Name: "Full Face", Price: 50000},
	{ID: "2", Name: "Mustache", DynamicPricing: true},
}

func TestCashInvoice(t *testing.T) {
	selected := []string{"Full Face", "Mustache"}
	shots := map[string]int{"Mustache": 3}

	q := Compute(catalog, selected, shots, models.PaymentCash, 0)
	if q.TotalAmount != 54500 {
		t.Fatalf("expected total 54500, got %v", q.TotalAmount)
	}
	if q.AmountPaid != 54500 {
		t.Fatalf("cash must force paid to total, got %v", q.AmountPaid)
	}
	if q.AmountRemaining != 0 {
		t.Fatalf("cash must force remaining to 0, got %v", q.AmountRemaining)
	}
}

func TestInstallmentInvoice(t *testing.T) {
	selected := []string{"Full Face", "Mustache"}
	shots := map[string]int{"Mustache": 3}

	q := Compute(catalog, selected, shots, models.PaymentInstallment, 20000)
	if q.TotalAmount != 54500 {
		t.Fatalf("expected total 54500, got %v", q.TotalAmount)
	}
	if q.AmountPaid != 20000 {
		t.Fatalf("installment keeps the entered paid amount, got %v", q.AmountPaid)
	}
	if q.AmountRemaining != 34500 {
		t.Fatalf("expected remaining 34500, got %v", q.AmountRemaining)
	}

	// Switching back to cash forces paid=total, remaining=0
	q = Compute(catalog, selected, shots, models.PaymentCash, 20000)
	if q.AmountPaid != 54500 || q.AmountRemaining != 0 {
		t.Fatalf("switch to cash: got paid %v remaining %v", q.AmountPaid, q.AmountRemaining)
	}
}

func TestOverpaymentGoesNegative(t *testing.T) {
	q := Compute(catalog, []string{"Full Face"}, nil, models.PaymentInstallment, 60000)
	if q.AmountRemaining != -10000 {
		t.Fatalf("overpayment must not be clamped, got %v", q.AmountRemaining)
	}
}

func TestMissingServiceContributesZero(t *testing.T) {
	// A service deleted after an appointment referenced it
	total := Total(catalog, []string{"Full Face", "Deleted Service"}, nil)
	if total != 50000 {
		t.Fatalf("expected missing name to contribute 0, got %v", total)
	}
}

func TestDynamicServiceWithoutShotsIsZero(t *testing.T) {
	total := Total(catalog, []string{"Mustache"}, nil)
	if total != 0 {
		t.Fatalf("expected 0 for dynamic service without shots, got %v", total)
	}

	total = Total(catalog, []string{"Mustache"}, map[string]int{"Mustache": 2})
	if total != 3000 {
		t.Fatalf("expected 2 shots x 1500 = 3000, got %v", total)
	}
}

func TestEmptySelection(t *testing.T) {
	q := Compute(catalog, nil, nil, models.PaymentCash, 0)
	if q.TotalAmount != 0 || q.AmountPaid != 0 || q.AmountRemaining != 0 {
		t.Fatalf("expected zero quote, got %+v", q)
	}
}
