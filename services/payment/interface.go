package payment

import (
	"context"

	"tranquilflow/models"
)

// CardDetails carries the raw card fields supplied by the guest.
type CardDetails struct {
	CardNumber  string
	ExpiryMonth string
	ExpiryYear  string
	CVC         string
}

// CardVault tokenizes card credentials. The simulated vault and the Stripe
// vault both satisfy it, so swapping the simulation for the real integration
// requires no change to the orchestrator.
type CardVault interface {
	Tokenize(ctx context.Context, card CardDetails) (string, error)
}

// AgreementClient creates a billing agreement against the guest's PayPal
// account and returns its opaque id.
type AgreementClient interface {
	CreateAgreement(ctx context.Context, paypalEmail string) (string, error)
}

// CheckoutLink is the result of creating an email-keyed checkout link.
type CheckoutLink struct {
	LinkID string
	Status models.EnrollmentStatus
}

// CheckoutLinkClient creates a saved-checkout link keyed on the guest email.
type CheckoutLinkClient interface {
	CreateLink(ctx context.Context, email string) (CheckoutLink, error)
}

// ProfileService drives payment-method enrollment end to end.
type ProfileService interface {
	ListMethods() []models.PaymentMethod
	FindMethod(id string) (*models.PaymentMethod, bool)
	CreateProfile(ctx context.Context, req models.ProfileRequest) (*models.PaymentEnrollment, error)
}
