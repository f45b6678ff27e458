package scheduling

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	bookingRepo "tranquilflow/database/repository/booking"
	"tranquilflow/models"
	"tranquilflow/services/catalog"
	"tranquilflow/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memorySessionStore is an in-memory SessionStore for tests.
type memorySessionStore struct {
	sessions map[string]models.SchedulingSession
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[string]models.SchedulingSession)}
}

func (s *memorySessionStore) Get(ctx context.Context, sessionID string) (*models.SchedulingSession, error) {
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("scheduling session not found or expired: %s", sessionID)
	}
	copied := session
	return &copied, nil
}

func (s *memorySessionStore) Save(ctx context.Context, session *models.SchedulingSession) error {
	s.sessions[session.SessionID] = *session
	return nil
}

func (s *memorySessionStore) Delete(ctx context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

// fakeBookingRepo records created bookings in memory.
type fakeBookingRepo struct {
	bookings  []models.Booking
	createErr error
}

func (r *fakeBookingRepo) FetchByProvider(ctx context.Context, providerID string) ([]models.Booking, error) {
	if providerID == "" {
		return []models.Booking{}, nil
	}
	out := []models.Booking{}
	for _, b := range r.bookings {
		if b.ProviderID == providerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) Create(ctx context.Context, input bookingRepo.CreateBookingInput) (*models.Booking, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if input.ProviderID == "" {
		return nil, utils.NewValidationError("providerId", "a provider must be selected before creating a booking")
	}
	booking := models.Booking{
		ID:              fmt.Sprintf("booking-%d", len(r.bookings)+1),
		ProviderID:      input.ProviderID,
		CustomerName:    utils.Sanitize(input.CustomerName),
		CustomerEmail:   input.CustomerEmail,
		Start:           input.Start,
		End:             input.End,
		Notes:           utils.Sanitize(input.Notes),
		ServiceName:     input.ServiceName,
		DurationMinutes: input.DurationMinutes,
		Price:           input.Price,
		CreatedAt:       time.Now(),
	}
	r.bookings = append(r.bookings, booking)
	return &booking, nil
}

func (r *fakeBookingRepo) CountOverlapping(ctx context.Context, providerID string, start, end time.Time) (int, error) {
	count := 0
	for _, b := range r.bookings {
		if b.ProviderID == providerID && b.Start.Before(end) && b.End.After(start) {
			count++
		}
	}
	return count, nil
}

func newTestScheduler(repo bookingRepo.BookingRepository) (*DefaultSchedulingService, *memorySessionStore) {
	store := newMemorySessionStore()
	svc := &DefaultSchedulingService{
		Logger:            zap.NewNop(),
		Store:             store,
		Repo:              repo,
		Catalog:           &catalog.DefaultCatalogService{},
		CalendarStartHour: 8,
		CalendarEndHour:   21,
	}
	return svc, store
}

func startSessionWithTreatment(t *testing.T, svc *DefaultSchedulingService, treatmentID string) *models.SchedulingSession {
	t.Helper()
	ctx := context.Background()
	session, err := svc.StartSession(ctx, "p1")
	require.NoError(t, err)
	session, err = svc.ChangeService(ctx, session.SessionID, treatmentID)
	require.NoError(t, err)
	return session
}

func TestStartSession_CarriesCalendarWindow(t *testing.T) {
	svc, _ := newTestScheduler(&fakeBookingRepo{})

	session, err := svc.StartSession(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, "p1", session.ProviderID)
	assert.Equal(t, 8, session.CalendarStartHour)
	assert.Equal(t, 21, session.CalendarEndHour)
	assert.Nil(t, session.Slot)
}

func TestStartSession_RequiresProvider(t *testing.T) {
	svc, _ := newTestScheduler(&fakeBookingRepo{})

	_, err := svc.StartSession(context.Background(), "")
	var validationErr utils.ValidationError
	require.True(t, errors.As(err, &validationErr))
}

func TestSelectSlot_EndIsStartPlusDuration(t *testing.T) {
	svc, _ := newTestScheduler(&fakeBookingRepo{})
	session := startSessionWithTreatment(t, svc, "deep-tissue") // 60 minutes

	start := time.Now().Add(24 * time.Hour).Truncate(time.Minute)
	session, err := svc.SelectSlot(context.Background(), session.SessionID, start)
	require.NoError(t, err)

	require.NotNil(t, session.Slot)
	assert.Equal(t, start, session.Slot.Start)
	assert.Equal(t, start.Add(60*time.Minute), session.Slot.End)
}

func TestSelectSlot_PastStartRejectedWithoutError(t *testing.T) {
	svc, _ := newTestScheduler(&fakeBookingRepo{})
	session := startSessionWithTreatment(t, svc, "deep-tissue")

	past := time.Now().Add(-2 * time.Hour)
	session, err := svc.SelectSlot(context.Background(), session.SessionID, past)
	require.NoError(t, err)

	assert.Nil(t, session.Slot)
	assert.Equal(t, msgSlotInPast, session.StatusMessage)
}

func TestSelectSlot_PastStartLeavesPreviousSlotUntouched(t *testing.T) {
	svc, _ := newTestScheduler(&fakeBookingRepo{})
	session := startSessionWithTreatment(t, svc, "hot-stone") // 75 minutes
	ctx := context.Background()

	future := time.Now().Add(48 * time.Hour).Truncate(time.Minute)
	session, err := svc.SelectSlot(ctx, session.SessionID, future)
	require.NoError(t, err)
	require.NotNil(t, session.Slot)

	session, err = svc.SelectSlot(ctx, session.SessionID, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	require.NotNil(t, session.Slot, "a rejected selection must not discard the confirmed one")
	assert.Equal(t, future, session.Slot.Start)
	assert.Equal(t, future.Add(75*time.Minute), session.Slot.End)
	assert.Equal(t, msgSlotInPast, session.StatusMessage)
}

func TestSelectSlot_MinuteGranularityBoundary(t *testing.T) {
	svc, _ := newTestScheduler(&fakeBookingRepo{})
	session := startSessionWithTreatment(t, svc, "deep-tissue")

	// Rounding happens at minute granularity; the next whole minute can
	// never compare before "now".
	start := time.Now().Truncate(time.Minute).Add(time.Minute)
	session, err := svc.SelectSlot(context.Background(), session.SessionID, start)
	require.NoError(t, err)
	assert.NotNil(t, session.Slot)
}

func TestSelectSlot_WithoutTreatmentPrompts(t *testing.T) {
	svc, _ := newTestScheduler(&fakeBookingRepo{})
	ctx := context.Background()
	session, err := svc.StartSession(ctx, "p1")
	require.NoError(t, err)

	session, err = svc.SelectSlot(ctx, session.SessionID, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Nil(t, session.Slot)
	assert.Equal(t, msgSelectTreatment, session.StatusMessage)
}

func TestChangeService_DiscardsStaleSlot(t *testing.T) {
	svc, _ := newTestScheduler(&fakeBookingRepo{})
	session := startSessionWithTreatment(t, svc, "deep-tissue")
	ctx := context.Background()

	session, err := svc.SelectSlot(ctx, session.SessionID, time.Now().Add(24*time.Hour))
	require.NoError(t, err)
	require.NotNil(t, session.Slot)

	// The old end time depended on the old duration; the slot must go.
	session, err = svc.ChangeService(ctx, session.SessionID, "signature-ritual")
	require.NoError(t, err)
	assert.Nil(t, session.Slot)
	assert.Equal(t, msgReselectSlot, session.StatusMessage)
	assert.Equal(t, 90, session.Treatment.DurationMinutes)
}

func TestChangeService_UnknownTreatment(t *testing.T) {
	svc, _ := newTestScheduler(&fakeBookingRepo{})
	ctx := context.Background()
	session, err := svc.StartSession(ctx, "p1")
	require.NoError(t, err)

	_, err = svc.ChangeService(ctx, session.SessionID, "mud-bath")
	var validationErr utils.ValidationError
	require.True(t, errors.As(err, &validationErr))
}

func TestConfirmBooking_NoSlotSelected(t *testing.T) {
	svc, _ := newTestScheduler(&fakeBookingRepo{})
	session := startSessionWithTreatment(t, svc, "deep-tissue")

	_, _, err := svc.ConfirmBooking(context.Background(), session.SessionID, models.GuestDetails{
		CustomerName: "Jane",
	})
	var validationErr utils.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, msgNoSlotSelected, validationErr.Message)
}

func TestConfirmBooking_PersistsAndRefreshes(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc, store := newTestScheduler(repo)
	session := startSessionWithTreatment(t, svc, "hot-stone")
	ctx := context.Background()

	start := time.Now().Add(24 * time.Hour).Truncate(time.Minute)
	session, err := svc.SelectSlot(ctx, session.SessionID, start)
	require.NoError(t, err)

	booking, refreshed, err := svc.ConfirmBooking(ctx, session.SessionID, models.GuestDetails{
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@x.com",
		Notes:         "quiet room please",
	})
	require.NoError(t, err)

	assert.Equal(t, "p1", booking.ProviderID)
	assert.Equal(t, start, booking.Start)
	assert.Equal(t, start.Add(75*time.Minute), booking.End)
	assert.Equal(t, "Hot Stone Therapy", booking.ServiceName)
	assert.Equal(t, 75, booking.DurationMinutes)
	assert.Equal(t, 160.0, booking.Price)
	assert.False(t, booking.CreatedAt.IsZero())

	// Read-your-writes refresh: the new booking is visible immediately.
	require.Len(t, refreshed, 1)
	assert.Equal(t, booking.ID, refreshed[0].ID)

	// The slot is cleared for the next interaction.
	saved, err := store.Get(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Nil(t, saved.Slot)
	assert.Equal(t, msgBookingSaved, saved.StatusMessage)
}

func TestConfirmBooking_DoubleSubmitBothSucceed(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc, _ := newTestScheduler(repo)
	ctx := context.Background()

	start := time.Now().Add(24 * time.Hour).Truncate(time.Minute)
	for i := 0; i < 2; i++ {
		session := startSessionWithTreatment(t, svc, "deep-tissue")
		session, err := svc.SelectSlot(ctx, session.SessionID, start)
		require.NoError(t, err)
		_, _, err = svc.ConfirmBooking(ctx, session.SessionID, models.GuestDetails{CustomerName: "Guest"})
		require.NoError(t, err)
	}

	// No server-side conflict check: two sessions can book the same window.
	count, err := repo.CountOverlapping(ctx, "p1", start, start.Add(60*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
