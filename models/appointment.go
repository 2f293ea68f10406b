package models

const (
	AppointmentConfirmed = "confirmed"
	AppointmentPending   = "pending"
)

// DefaultProviderName is the placeholder provider shown on new appointments.
const DefaultProviderName = "الطبيب"

// Appointment denormalizes the client's display fields at creation time.
// Later edits to the client record do not propagate here. Services are
// referenced by name, not id, matching the persisted layout.
type Appointment struct {
	ID                string   `json:"id"`
	ClientID          string   `json:"clientId"`
	ClientName        string   `json:"clientName"`
	PhoneNumber       string   `json:"phoneNumber"`
	Email             string   `json:"email,omitempty"`
	Date              string   `json:"date"` // yyyy-MM-dd
	Time              string   `json:"time"` // HH:mm
	Services          []string `json:"services"`
	ProviderID        string   `json:"providerId"`
	ProviderName      string   `json:"providerName"`
	Notes             string   `json:"notes,omitempty"`
	Status            string   `json:"status"`
	RemainingPayments float64  `json:"remainingPayments,omitempty"`
}

func (a Appointment) EntityID() string { return a.ID }
