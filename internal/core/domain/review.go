package domain

// Review is customer feedback. User holds the author's email.
type Review struct {
	ID      string  `json:"_id"`
	Name    string  `json:"name"`
	User    string  `json:"user,omitempty"`
	Details string  `json:"details"`
	Rating  float64 `json:"rating"`
}
