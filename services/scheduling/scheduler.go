package scheduling

import (
	"context"
	"fmt"
	"time"

	bookingRepo "tranquilflow/database/repository/booking"
	"tranquilflow/models"
	"tranquilflow/services/catalog"
	"tranquilflow/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Status messages shown to the guest. Slot rejections set a message instead
// of returning an error so the calendar stays interactive.
const (
	msgSlotPending      = "Selected slot pending confirmation. Complete the form to save."
	msgSlotInPast       = "Please select a future time slot."
	msgSelectTreatment  = "Select a treatment to see available slot lengths."
	msgReselectSlot     = "Treatment changed. Please re-select a time slot."
	msgBookingSaved     = "Booking saved successfully."
	msgNoSlotSelected   = "Please select an available time slot on the calendar."
	msgUnknownTreatment = "unknown treatment"
)

// DefaultSchedulingService implements SchedulingService over a session store,
// the booking repository, and the treatment catalogue.
type DefaultSchedulingService struct {
	Logger            *zap.Logger
	Store             SessionStore
	Repo              bookingRepo.BookingRepository
	Catalog           catalog.CatalogService
	CalendarStartHour int
	CalendarEndHour   int
}

// StartSession opens a fresh session carrying the calendar window the view
// is bounded to. Selections outside [CalendarStartHour, CalendarEndHour) are
// prevented at the presentation boundary, not re-validated here.
func (svc *DefaultSchedulingService) StartSession(ctx context.Context, providerID string) (*models.SchedulingSession, error) {
	if providerID == "" {
		return nil, utils.NewValidationError("providerId", "a provider must be selected before scheduling")
	}
	session := &models.SchedulingSession{
		SessionID:         uuid.New().String(),
		ProviderID:        providerID,
		StatusMessage:     msgSelectTreatment,
		CalendarStartHour: svc.CalendarStartHour,
		CalendarEndHour:   svc.CalendarEndHour,
	}
	if err := svc.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ChangeService selects a treatment for the session and discards any
// previously selected slot, since its end time depended on the old duration.
func (svc *DefaultSchedulingService) ChangeService(ctx context.Context, sessionID, treatmentID string) (*models.SchedulingSession, error) {
	session, err := svc.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	treatment, ok := svc.Catalog.FindTreatment(treatmentID)
	if !ok {
		return nil, utils.NewValidationError("treatmentId", msgUnknownTreatment)
	}
	session.Treatment = treatment
	session.Slot = nil
	session.StatusMessage = msgReselectSlot
	if err := svc.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectSlot derives a candidate [start, start+duration) window from a
// calendar click. Starts strictly before the current minute are rejected by
// setting a status message; the session's previous slot stays untouched.
func (svc *DefaultSchedulingService) SelectSlot(ctx context.Context, sessionID string, start time.Time) (*models.SchedulingSession, error) {
	session, err := svc.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Treatment == nil {
		session.StatusMessage = msgSelectTreatment
		if err := svc.Store.Save(ctx, session); err != nil {
			return nil, err
		}
		return session, nil
	}

	// The calendar grid works at minute granularity; compare at the same.
	now := time.Now().Truncate(time.Minute)
	if start.Truncate(time.Minute).Before(now) {
		session.StatusMessage = msgSlotInPast
		if err := svc.Store.Save(ctx, session); err != nil {
			return nil, err
		}
		return session, nil
	}

	session.Slot = &models.SlotSelection{
		Start: start,
		End:   start.Add(time.Duration(session.Treatment.DurationMinutes) * time.Minute),
	}
	session.StatusMessage = msgSlotPending
	if err := svc.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ConfirmBooking persists the selected slot and re-fetches the provider's
// bookings so the caller can refresh the calendar. The refresh is a
// read-your-writes convenience, not a transactional guarantee; concurrent
// sessions may still interleave.
func (svc *DefaultSchedulingService) ConfirmBooking(ctx context.Context, sessionID string, guest models.GuestDetails) (*models.Booking, []models.Booking, error) {
	session, err := svc.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if session.Slot == nil {
		return nil, nil, utils.NewValidationError("slot", msgNoSlotSelected)
	}

	input := bookingRepo.CreateBookingInput{
		ProviderID:    session.ProviderID,
		CustomerName:  guest.CustomerName,
		CustomerEmail: guest.CustomerEmail,
		Start:         session.Slot.Start,
		End:           session.Slot.End,
		Notes:         guest.Notes,
	}
	if session.Treatment != nil {
		input.ServiceName = session.Treatment.Name
		input.DurationMinutes = session.Treatment.DurationMinutes
		input.Price = session.Treatment.Price
	}

	booking, err := svc.Repo.Create(ctx, input)
	if err != nil {
		return nil, nil, err
	}

	session.Slot = nil
	session.StatusMessage = msgBookingSaved
	if err := svc.Store.Save(ctx, session); err != nil {
		// The booking is already persisted; a stale session is recoverable.
		svc.Logger.Warn("failed to update scheduling session after booking",
			zap.String("sessionId", sessionID), zap.Error(err))
	}

	refreshed, err := svc.Repo.FetchByProvider(ctx, session.ProviderID)
	if err != nil {
		return booking, nil, fmt.Errorf("booking saved but calendar refresh failed: %w", err)
	}

	svc.Logger.Info("booking confirmed",
		zap.String("bookingId", booking.ID),
		zap.String("providerId", booking.ProviderID),
	)
	return booking, refreshed, nil
}

// ListBookings returns the provider's bookings for the calendar view.
func (svc *DefaultSchedulingService) ListBookings(ctx context.Context, providerID string) ([]models.Booking, error) {
	return svc.Repo.FetchByProvider(ctx, providerID)
}
