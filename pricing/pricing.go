// Package pricing derives invoice totals from the current service catalog.
// Lines resolve by service name, so a catalog edit changes what an open
// invoice recomputes to; that matches the persisted layout, not a snapshot.
package pricing

import "clinicpro-backend/models"

// ShotRate is the charge per laser shot for dynamic-priced services,
// in currency minor units (ل.س).
const ShotRate = 1500

// Quote holds the derived amounts for an invoice being composed.
type Quote struct {
	TotalAmount     float64 `json:"totalAmount"`
	AmountPaid      float64 `json:"amountPaid"`
	AmountRemaining float64 `json:"amountRemaining"`
}

// Total sums the selected service names against the catalog. A dynamic
// service charges shots x ShotRate, with missing shots meaning zero. A name
// with no catalog entry contributes nothing; it is not an error, since the
// service may have been deleted after an appointment referenced it.
func Total(catalog []models.Service, selected []string, shots map[string]int) float64 {
	byName := make(map[string]models.Service, len(catalog))
	for _, svc := range catalog {
		byName[svc.Name] = svc
	}

	var total float64
	for _, name := range selected {
		svc, ok := byName[name]
		if !ok {
			continue
		}
		if svc.DynamicPricing {
			total += float64(shots[name]) * ShotRate
		} else {
			total += svc.Price
		}
	}
	return total
}

// Compute produces the full quote. Cash forces the paid amount to the total
// and remaining to zero. Installment keeps the caller's paid amount as-is
// and computes remaining = total - paid, with no clamp: a paid amount above
// the total yields a negative remaining (an overpayment credit).
func Compute(catalog []models.Service, selected []string, shots map[string]int, paymentMethod string, amountPaid float64) Quote {
	total := Total(catalog, selected, shots)
	if paymentMethod == models.PaymentCash {
		return Quote{TotalAmount: total, AmountPaid: total, AmountRemaining: 0}
	}
	return Quote{TotalAmount: total, AmountPaid: amountPaid, AmountRemaining: total - amountPaid}
}
