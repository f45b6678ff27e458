package bookingRepo

import (
	"context"
	"time"

	"tranquilflow/models"
)

// CreateBookingInput carries the raw, unsanitized fields of a booking request.
type CreateBookingInput struct {
	ProviderID      string
	CustomerName    string
	CustomerEmail   string
	Start           time.Time
	End             time.Time
	Notes           string
	ServiceName     string
	DurationMinutes int
	Price           float64
}

// BookingRepository defines the data access contract for reservation records.
type BookingRepository interface {
	// FetchByProvider returns every booking for the given provider. An empty
	// provider id or an unavailable store yields an empty slice, not an
	// error; the caller must treat it as "no bookings".
	FetchByProvider(ctx context.Context, providerID string) ([]models.Booking, error)

	// Create validates, sanitizes, and persists a booking, returning the
	// stored record with its assigned id and creation timestamp.
	Create(ctx context.Context, input CreateBookingInput) (*models.Booking, error)

	// CountOverlapping reports how many existing bookings for the provider
	// intersect the [start, end) window. Offered as an optional conflict
	// guard; the Create path does not call it.
	CountOverlapping(ctx context.Context, providerID string, start, end time.Time) (int, error)
}
