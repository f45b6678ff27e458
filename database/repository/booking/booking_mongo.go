package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"tranquilflow/database"
	"tranquilflow/models"
	"tranquilflow/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const bookingsCollection = "bookings"

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct{}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() BookingRepository {
	return &MongoBookingRepo{}
}

// coll resolves the bookings collection lazily so that an unconfigured store
// is observed per call instead of at construction time.
func (repo *MongoBookingRepo) coll() *mongo.Collection {
	if !database.Available() {
		return nil
	}
	return database.MongoClient.Database("tranquilflow").Collection(bookingsCollection)
}

// storedBooking mirrors Booking but keeps time fields untyped so documents
// with non-native timestamp representations still decode.
type storedBooking struct {
	ID              string      `bson:"id"`
	ProviderID      string      `bson:"providerId"`
	CustomerName    string      `bson:"customerName"`
	CustomerEmail   string      `bson:"customerEmail"`
	Start           interface{} `bson:"start"`
	End             interface{} `bson:"end"`
	Notes           string      `bson:"notes"`
	ServiceName     string      `bson:"serviceName,omitempty"`
	DurationMinutes int         `bson:"durationMinutes,omitempty"`
	Price           float64     `bson:"price,omitempty"`
	CreatedAt       interface{} `bson:"createdAt"`
}

// FetchByProvider returns every booking for the given provider. A falsy
// provider id or an unconfigured store is a non-error condition and yields
// an empty slice.
func (repo *MongoBookingRepo) FetchByProvider(ctx context.Context, providerID string) ([]models.Booking, error) {
	if providerID == "" {
		return []models.Booking{}, nil
	}
	coll := repo.coll()
	if coll == nil {
		utils.GetLogger().Warn("booking store is not configured, skipping booking fetch")
		return []models.Booking{}, nil
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"providerId": utils.Sanitize(providerID)}
	cursor, err := coll.Find(ctxWithTimeout, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings for provider %s: %w", providerID, err)
	}
	defer cursor.Close(ctxWithTimeout)

	bookings := []models.Booking{}
	for cursor.Next(ctxWithTimeout) {
		var stored storedBooking
		if err := cursor.Decode(&stored); err != nil {
			return nil, fmt.Errorf("error decoding booking: %w", err)
		}
		bookings = append(bookings, stored.toBooking())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return bookings, nil
}

func (stored storedBooking) toBooking() models.Booking {
	start, _ := coerceInstant(stored.Start)
	end, _ := coerceInstant(stored.End)
	createdAt, _ := coerceInstant(stored.CreatedAt)
	return models.Booking{
		ID:              stored.ID,
		ProviderID:      stored.ProviderID,
		CustomerName:    stored.CustomerName,
		CustomerEmail:   stored.CustomerEmail,
		Start:           start,
		End:             end,
		Notes:           stored.Notes,
		ServiceName:     stored.ServiceName,
		DurationMinutes: stored.DurationMinutes,
		Price:           stored.Price,
		CreatedAt:       createdAt,
	}
}

// Create validates and persists a booking built from a sanitized payload.
// An invalid customer email is dropped to "" rather than rejecting the
// reservation over a malformed contact field.
func (repo *MongoBookingRepo) Create(ctx context.Context, input CreateBookingInput) (*models.Booking, error) {
	if input.ProviderID == "" {
		return nil, utils.NewValidationError("providerId", "a provider must be selected before creating a booking")
	}
	if input.Start.IsZero() || input.End.IsZero() {
		return nil, utils.NewValidationError("slot", "a booking requires both start and end times")
	}
	coll := repo.coll()
	if coll == nil {
		return nil, utils.StoreUnavailableError{Op: "create booking"}
	}

	booking := newBookingRecord(input)

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := coll.InsertOne(ctxWithTimeout, booking); err != nil {
		return nil, fmt.Errorf("error inserting booking: %w", err)
	}
	return &booking, nil
}

// newBookingRecord builds the sanitized record to persist. An invalid email
// becomes "" rather than rejecting the reservation over a malformed contact
// field; CreatedAt is set here and never mutated afterwards.
func newBookingRecord(input CreateBookingInput) models.Booking {
	safeEmail := ""
	if input.CustomerEmail != "" && utils.IsValidEmail(input.CustomerEmail) {
		safeEmail = utils.NormalizeEmail(input.CustomerEmail)
	}

	return models.Booking{
		ID:              uuid.New().String(),
		ProviderID:      utils.Sanitize(input.ProviderID),
		CustomerName:    utils.Sanitize(input.CustomerName),
		CustomerEmail:   safeEmail,
		Start:           input.Start,
		End:             input.End,
		Notes:           utils.Sanitize(input.Notes),
		ServiceName:     input.ServiceName,
		DurationMinutes: input.DurationMinutes,
		Price:           input.Price,
		CreatedAt:       time.Now(),
	}
}

// CountOverlapping reports how many bookings for the provider intersect the
// [start, end) window. Create does not consult it; two sessions booking the
// same slot can both succeed. Callers wanting conflict detection run this
// first and reject with SlotConflictError when the count is non-zero.
func (repo *MongoBookingRepo) CountOverlapping(ctx context.Context, providerID string, start, end time.Time) (int, error) {
	coll := repo.coll()
	if coll == nil {
		return 0, utils.StoreUnavailableError{Op: "count overlapping bookings"}
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"providerId": utils.Sanitize(providerID),
		"start":      bson.M{"$lt": end},
		"end":        bson.M{"$gt": start},
	}
	count, err := coll.CountDocuments(ctxWithTimeout, filter)
	if err != nil {
		return 0, fmt.Errorf("error counting overlapping bookings: %w", err)
	}
	return int(count), nil
}
