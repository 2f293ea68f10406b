package models

// Service is a catalog entry. Pricing modes are mutually exclusive: either
// Price holds a fixed amount, or DynamicPricing is set and the charge is
// computed per invoice from a usage quantity (laser shots).
type Service struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	DynamicPricing bool    `json:"dynamicPricing,omitempty"`
}

func (s Service) EntityID() string { return s.ID }
