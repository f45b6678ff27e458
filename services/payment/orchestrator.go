package payment

import (
	"context"
	"fmt"
	"time"

	"tranquilflow/models"
	"tranquilflow/utils"

	"go.uber.org/zap"
)

// DefaultProfileService implements ProfileService. Each submission runs the
// same short lifecycle: validate the guest fields, branch on the channel
// kind, drive the channel-specific external call, and assemble a normalized
// enrollment. Submissions are never retried automatically; a resubmission
// after failure produces a new enrollment id.
type DefaultProfileService struct {
	Logger    *zap.Logger
	Cards     CardVault
	Paypal    AgreementClient
	Checkout  CheckoutLinkClient
	BaseDelay time.Duration
}

// NewProfileService constructs the orchestrator over the given channel clients.
func NewProfileService(logger *zap.Logger, cards CardVault, paypal AgreementClient, checkout CheckoutLinkClient, baseDelay time.Duration) *DefaultProfileService {
	return &DefaultProfileService{
		Logger:    logger,
		Cards:     cards,
		Paypal:    paypal,
		Checkout:  checkout,
		BaseDelay: baseDelay,
	}
}

// CreateProfile validates the submission and drives the selected channel.
// Validation failures short-circuit before any external call. External-call
// failures are logged in full and reported as a ProviderCallError whose
// guest-facing rendering must stay generic.
func (svc *DefaultProfileService) CreateProfile(ctx context.Context, req models.ProfileRequest) (*models.PaymentEnrollment, error) {
	method, ok := svc.FindMethod(req.MethodID)
	if !ok {
		return nil, utils.NewValidationError("methodId", "unsupported payment method selected")
	}
	if req.GuestName == "" || req.Email == "" {
		return nil, utils.NewValidationError("guest", "please add the guest name and email before continuing")
	}

	if err := waitFor(ctx, svc.BaseDelay); err != nil {
		return nil, err
	}

	var (
		providerReference string
		status            = models.StatusRequiresConfirmation
		nextAction        string
		cardLast4         string
	)

	switch method.Kind {
	case models.ChannelCard:
		if req.CardNumber == "" || req.ExpiryMonth == "" || req.ExpiryYear == "" || req.CVC == "" {
			return nil, utils.NewValidationError("card", "card details are required to tokenize the payment method")
		}
		token, err := svc.Cards.Tokenize(ctx, CardDetails{
			CardNumber:  req.CardNumber,
			ExpiryMonth: req.ExpiryMonth,
			ExpiryYear:  req.ExpiryYear,
			CVC:         req.CVC,
		})
		if err != nil {
			return nil, svc.providerFailure(ctx, method.Provider, err)
		}
		providerReference = token
		status = models.StatusRequiresAuthentication
		nextAction = "Complete step-up authentication if prompted."
		cardLast4 = lastFour(req.CardNumber)

	case models.ChannelPayPal:
		if req.PaypalEmail == "" {
			return nil, utils.NewValidationError("paypalEmail", "PayPal requires the guest PayPal email")
		}
		agreementID, err := svc.Paypal.CreateAgreement(ctx, req.PaypalEmail)
		if err != nil {
			return nil, svc.providerFailure(ctx, method.Provider, err)
		}
		providerReference = agreementID
		status = models.StatusAwaitingApproval
		nextAction = "Guest must approve the billing agreement via redirect."

	case models.ChannelLinkOnly:
		link, err := svc.Checkout.CreateLink(ctx, req.Email)
		if err != nil {
			return nil, svc.providerFailure(ctx, method.Provider, err)
		}
		providerReference = link.LinkID
		status = link.Status
		nextAction = "Send the guest the checkout link to finalize enrollment."

	case models.ChannelBasic:
		// Name and email are all a basic channel needs; no external call.

	default:
		return nil, utils.NewValidationError("methodId", "unsupported payment method selected")
	}

	enrollment := &models.PaymentEnrollment{
		ID:                fmt.Sprintf("%s-%d", method.ID, time.Now().UnixMilli()),
		GuestName:         req.GuestName,
		Email:             req.Email,
		MethodID:          method.ID,
		Provider:          method.Provider,
		MembershipPlan:    req.MembershipPlan,
		CardLast4:         cardLast4,
		PaypalEmail:       req.PaypalEmail,
		SaveAsDefault:     req.SaveAsDefault,
		Status:            status,
		ProviderReference: providerReference,
		NextAction:        nextAction,
	}
	svc.Logger.Info("payment method stored",
		zap.String("enrollmentId", enrollment.ID),
		zap.String("methodId", method.ID),
		zap.String("status", string(status)),
	)
	return enrollment, nil
}

// providerFailure logs the underlying cause in full and wraps it so the
// boundary surfaces only a generic message to the guest. A cancelled context
// passes through unchanged so callers can tell teardown from failure.
func (svc *DefaultProfileService) providerFailure(ctx context.Context, provider string, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	svc.Logger.Error("payment provider call failed",
		zap.String("provider", provider),
		zap.Error(err),
	)
	return utils.ProviderCallError{Provider: provider, Cause: err}
}
