package models

import "time"

// Booking represents a persisted reservation record.
type Booking struct {
	ID              string    `bson:"id" json:"id"`                                               // Store-assigned identifier
	ProviderID      string    `bson:"providerId" json:"providerId"`                               // Therapist/resource the reservation is made against
	CustomerName    string    `bson:"customerName" json:"customerName"`                           // Sanitized guest name
	CustomerEmail   string    `bson:"customerEmail" json:"customerEmail"`                         // Normalized email, or "" when the supplied value fails validation
	Start           time.Time `bson:"start" json:"start"`                                         // Reservation window start
	End             time.Time `bson:"end" json:"end"`                                             // Reservation window end, always after Start
	Notes           string    `bson:"notes" json:"notes"`                                         // Sanitized free-text notes
	ServiceName     string    `bson:"serviceName,omitempty" json:"serviceName,omitempty"`         // Selected treatment, if any
	DurationMinutes int       `bson:"durationMinutes,omitempty" json:"durationMinutes,omitempty"` // Treatment duration
	Price           float64   `bson:"price,omitempty" json:"price,omitempty"`                     // Treatment price
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`                                 // Set once at creation, never mutated
}

// GuestDetails carries the free-text guest fields captured by the booking form.
type GuestDetails struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	Notes         string `json:"notes"`
}
