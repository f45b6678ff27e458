package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"tranquilflow/models"
	"tranquilflow/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// trackingAgreementClient fails the profile flow if it is ever reached.
type trackingAgreementClient struct {
	calls int
}

func (c *trackingAgreementClient) CreateAgreement(ctx context.Context, paypalEmail string) (string, error) {
	c.calls++
	return "B-TEST1234", nil
}

type failingCardVault struct{}

func (v *failingCardVault) Tokenize(ctx context.Context, card CardDetails) (string, error) {
	return "", fmt.Errorf("vault rejected the card")
}

func newTestService() *DefaultProfileService {
	return NewProfileService(
		zap.NewNop(),
		&SimulatedCardVault{},
		&SimulatedAgreementClient{},
		&SimulatedCheckoutLinkClient{},
		0,
	)
}

func TestCreateProfile_CardChannel(t *testing.T) {
	svc := newTestService()

	enrollment, err := svc.CreateProfile(context.Background(), models.ProfileRequest{
		GuestName:   "Jane Doe",
		Email:       "jane@x.com",
		MethodID:    "stripe-card",
		CardNumber:  "4242424242424242",
		ExpiryMonth: "12",
		ExpiryYear:  "28",
		CVC:         "123",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusRequiresAuthentication, enrollment.Status)
	assert.NotEmpty(t, enrollment.ProviderReference)
	assert.True(t, strings.HasPrefix(enrollment.ProviderReference, "pm_4242"))
	assert.Equal(t, "4242", enrollment.CardLast4)
	assert.Equal(t, "Stripe", enrollment.Provider)
	assert.True(t, strings.HasPrefix(enrollment.ID, "stripe-card-"))
	assert.NotEmpty(t, enrollment.NextAction)
}

func TestCreateProfile_PaypalMissingEmail_NoProviderCall(t *testing.T) {
	tracker := &trackingAgreementClient{}
	svc := NewProfileService(zap.NewNop(), &SimulatedCardVault{}, tracker, &SimulatedCheckoutLinkClient{}, 0)

	_, err := svc.CreateProfile(context.Background(), models.ProfileRequest{
		GuestName:   "Jane",
		Email:       "jane@x.com",
		MethodID:    "paypal",
		PaypalEmail: "",
	})
	require.Error(t, err)

	var validationErr utils.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Message, "PayPal")
	assert.Zero(t, tracker.calls, "validation failure must short-circuit before the provider call")
}

func TestCreateProfile_PaypalChannel(t *testing.T) {
	svc := newTestService()

	enrollment, err := svc.CreateProfile(context.Background(), models.ProfileRequest{
		GuestName:   "Jane",
		Email:       "jane@x.com",
		MethodID:    "paypal",
		PaypalEmail: "jane@paypal.com",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusAwaitingApproval, enrollment.Status)
	assert.True(t, strings.HasPrefix(enrollment.ProviderReference, "B-"))
	assert.Equal(t, "jane@paypal.com", enrollment.PaypalEmail)
}

func TestCreateProfile_LinkChannel(t *testing.T) {
	svc := newTestService()

	enrollment, err := svc.CreateProfile(context.Background(), models.ProfileRequest{
		GuestName: "Jane",
		Email:     "jane@x.com",
		MethodID:  "stripe-link",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusAwaitingVerification, enrollment.Status)
	assert.True(t, strings.HasPrefix(enrollment.ProviderReference, "link_"))
}

func TestCreateProfile_BasicChannel(t *testing.T) {
	svc := newTestService()

	enrollment, err := svc.CreateProfile(context.Background(), models.ProfileRequest{
		GuestName: "Sam",
		Email:     "sam@x.com",
		MethodID:  "spa-wallet",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusRequiresConfirmation, enrollment.Status)
	assert.Empty(t, enrollment.ProviderReference)
	assert.Empty(t, enrollment.NextAction)
}

func TestCreateProfile_MissingGuestFields(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreateProfile(context.Background(), models.ProfileRequest{
		MethodID: "stripe-card",
	})
	var validationErr utils.ValidationError
	require.True(t, errors.As(err, &validationErr))
}

func TestCreateProfile_MissingCardDetails(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreateProfile(context.Background(), models.ProfileRequest{
		GuestName: "Jane",
		Email:     "jane@x.com",
		MethodID:  "stripe-card",
	})
	var validationErr utils.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Message, "card details")
}

func TestCreateProfile_UnknownMethod(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreateProfile(context.Background(), models.ProfileRequest{
		GuestName: "Jane",
		Email:     "jane@x.com",
		MethodID:  "bitcoin",
	})
	var validationErr utils.ValidationError
	require.True(t, errors.As(err, &validationErr))
}

func TestCreateProfile_ProviderFailureIsWrapped(t *testing.T) {
	svc := NewProfileService(zap.NewNop(), &failingCardVault{}, &SimulatedAgreementClient{}, &SimulatedCheckoutLinkClient{}, 0)

	_, err := svc.CreateProfile(context.Background(), models.ProfileRequest{
		GuestName:   "Jane",
		Email:       "jane@x.com",
		MethodID:    "stripe-card",
		CardNumber:  "4000000000000002",
		ExpiryMonth: "01",
		ExpiryYear:  "30",
		CVC:         "999",
	})
	require.Error(t, err)

	var providerErr utils.ProviderCallError
	require.True(t, errors.As(err, &providerErr))
	assert.Equal(t, "Stripe", providerErr.Provider)
}

func TestCreateProfile_CancelledContext(t *testing.T) {
	svc := NewProfileService(
		zap.NewNop(),
		&SimulatedCardVault{Latency: 0},
		&SimulatedAgreementClient{},
		&SimulatedCheckoutLinkClient{},
		0,
	)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A cancelled submission surfaces ctx.Err, not a provider failure.
	svc.BaseDelay = time.Hour // the base wait must observe cancellation, never elapse
	_, err := svc.CreateProfile(ctx, models.ProfileRequest{
		GuestName: "Jane",
		Email:     "jane@x.com",
		MethodID:  "spa-wallet",
	})
	require.ErrorIs(t, err, context.Canceled)
}
