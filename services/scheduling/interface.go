package scheduling

import (
	"context"
	"time"

	"tranquilflow/models"
)

// SchedulingService turns a calendar interaction plus a selected treatment
// into a validated, persisted booking. One submission is handled per
// user-triggered event; the UI disables its submit control while one is in
// flight.
type SchedulingService interface {
	// StartSession opens a scheduling session for a provider and returns it
	// with the configured calendar window.
	StartSession(ctx context.Context, providerID string) (*models.SchedulingSession, error)

	// ChangeService selects a treatment. Any previously selected slot is
	// invalidated because its end time depended on the old duration.
	ChangeService(ctx context.Context, sessionID, treatmentID string) (*models.SchedulingSession, error)

	// SelectSlot proposes a [start, start+duration) window. A start strictly
	// before the current minute is rejected with a status message, not an
	// error, and any previously confirmed slot stays untouched.
	SelectSlot(ctx context.Context, sessionID string, start time.Time) (*models.SchedulingSession, error)

	// ConfirmBooking persists the selected slot with the guest details and
	// re-fetches the provider's bookings to refresh the visible calendar.
	ConfirmBooking(ctx context.Context, sessionID string, guest models.GuestDetails) (*models.Booking, []models.Booking, error)

	// ListBookings returns the provider's bookings for the calendar view.
	ListBookings(ctx context.Context, providerID string) ([]models.Booking, error)
}

// SessionStore persists scheduling sessions between requests.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.SchedulingSession, error)
	Save(ctx context.Context, session *models.SchedulingSession) error
	Delete(ctx context.Context, sessionID string) error
}
