package models

import "time"

// SlotSelection is a concrete [start, end) window proposed for a reservation.
type SlotSelection struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// SchedulingSession holds the state of one scheduling interaction: the
// selected treatment, the candidate slot derived from a calendar click, and
// the status message shown to the guest.
type SchedulingSession struct {
	SessionID         string         `json:"sessionId"`
	ProviderID        string         `json:"providerId"`
	Treatment         *Treatment     `json:"treatment,omitempty"`
	Slot              *SlotSelection `json:"slot,omitempty"`
	StatusMessage     string         `json:"statusMessage,omitempty"`
	CalendarStartHour int            `json:"calendarStartHour"`
	CalendarEndHour   int            `json:"calendarEndHour"`
}
