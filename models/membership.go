package models

// MembershipPlan is a static catalogue entry. Read-only.
type MembershipPlan struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Price     float64  `json:"price"`
	Frequency string   `json:"frequency"`
	Perks     []string `json:"perks"`
	Featured  bool     `json:"featured"`
}

// MembershipEnrollment is the immutable result of a membership sign-up.
type MembershipEnrollment struct {
	ID        string `json:"id"` // planId + creation timestamp
	Name      string `json:"name"`
	Email     string `json:"email"`
	PlanID    string `json:"planId"`
	StartDate string `json:"startDate"`
	Autopay   bool   `json:"autopay"`
}
