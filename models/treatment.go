package models

// Treatment is a bookable spa service with a fixed duration and price.
type Treatment struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Icon            string  `json:"icon"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}
