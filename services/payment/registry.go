package payment

import "tranquilflow/models"

// methods is the static channel catalogue. Insertion order is presentation
// order; the table is immutable for the process lifetime.
var methods = []models.PaymentMethod{
	{
		ID:         "stripe-card",
		Label:      "Stripe · Card on file",
		Processing: "Instant tokenization with automatic renewals",
		Provider:   "Stripe",
		Kind:       models.ChannelCard,
		Features: []string{
			"Supports Visa, Mastercard, Amex, and more",
			"3D Secure when required",
			"Auto retry for renewals",
		},
	},
	{
		ID:         "stripe-link",
		Label:      "Stripe Link · Saved checkout",
		Processing: "Frictionless wallet for repeat guests",
		Provider:   "Stripe",
		Kind:       models.ChannelLinkOnly,
		Features: []string{
			"One-click checkout experience",
			"Guest authenticated by Stripe",
			"Best for fast digital prepay",
		},
	},
	{
		ID:         "paypal",
		Label:      "PayPal Billing Agreements",
		Processing: "Secure redirect with PayPal protection",
		Provider:   "PayPal",
		Kind:       models.ChannelPayPal,
		Features: []string{
			"Guests sign in with PayPal credentials",
			"Supports bank or balance funding sources",
			"Ideal for international visitors",
		},
	},
	{
		ID:         "spa-wallet",
		Label:      "Spa Wallet · Invoice on visit",
		Processing: "Charged at the front desk on arrival",
		Provider:   "In-house",
		Kind:       models.ChannelBasic,
		Features: []string{
			"No card details required up front",
			"Settled at checkout with any tender",
			"Best for walk-in regulars",
		},
	},
}

// ListMethods returns the channel catalogue in stable presentation order.
func (svc *DefaultProfileService) ListMethods() []models.PaymentMethod {
	out := make([]models.PaymentMethod, len(methods))
	copy(out, methods)
	return out
}

// FindMethod looks up a channel descriptor by id. Lookup never fails; an
// unknown id simply reports absence.
func (svc *DefaultProfileService) FindMethod(id string) (*models.PaymentMethod, bool) {
	for _, m := range methods {
		if m.ID == id {
			method := m
			return &method, true
		}
	}
	return nil, false
}
