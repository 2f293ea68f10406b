package models

type Client struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	PhoneNumber       string   `json:"phoneNumber"`
	Email             string   `json:"email,omitempty"`
	HairType          string   `json:"hairType,omitempty"`
	HairColor         string   `json:"hairColor,omitempty"`
	SkinType          string   `json:"skinType,omitempty"`
	Allergies         string   `json:"allergies,omitempty"`
	CurrentSessions   int      `json:"currentSessions"`
	RemainingSessions int      `json:"remainingSessions"`
	FavoriteServices  []string `json:"favoriteServices"`
	RemainingPayments float64  `json:"remainingPayments,omitempty"`
	Notes             string   `json:"notes,omitempty"`
}

func (c Client) EntityID() string { return c.ID }
