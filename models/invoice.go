package models

const (
	PaymentCash        = "cash"
	PaymentInstallment = "installment"
)

// Invoice totals are derived, never trusted from input: TotalAmount comes
// from the pricing engine against the current catalog, and AmountRemaining
// is TotalAmount - AmountPaid (zero for cash).
type Invoice struct {
	ID              string   `json:"id"`
	ClientID        string   `json:"clientId"`
	ClientName      string   `json:"clientName"`
	PhoneNumber     string   `json:"phoneNumber"`
	AppointmentID   string   `json:"appointmentId"`
	Date            string   `json:"date"` // yyyy-MM-dd
	Time            string   `json:"time"` // HH:mm
	Services        []string `json:"services"`
	PaymentMethod   string   `json:"paymentMethod"`
	AmountPaid      float64  `json:"amountPaid"`
	AmountRemaining float64  `json:"amountRemaining"`
	CreatedBy       string   `json:"createdBy"`
	ServiceProvider string   `json:"serviceProvider"`
	TotalAmount     float64  `json:"totalAmount"`
}

func (i Invoice) EntityID() string { return i.ID }
