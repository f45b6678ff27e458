package payment

import (
	"context"
	"fmt"
	"strconv"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentmethod"
)

// StripeCardVault tokenizes cards through the real Stripe API. It sits behind
// the same CardVault interface as the simulation and is only wired in when a
// Stripe key is configured.
type StripeCardVault struct{}

func (v *StripeCardVault) Tokenize(ctx context.Context, card CardDetails) (string, error) {
	if card.CardNumber == "" || card.ExpiryMonth == "" || card.ExpiryYear == "" || card.CVC == "" {
		return "", fmt.Errorf("card details are incomplete")
	}
	expMonth, err := strconv.ParseInt(card.ExpiryMonth, 10, 64)
	if err != nil {
		return "", fmt.Errorf("invalid expiry month: %w", err)
	}
	expYear, err := strconv.ParseInt(card.ExpiryYear, 10, 64)
	if err != nil {
		return "", fmt.Errorf("invalid expiry year: %w", err)
	}

	params := &stripe.PaymentMethodParams{
		Type: stripe.String(string(stripe.PaymentMethodTypeCard)),
		Card: &stripe.PaymentMethodCardParams{
			Number:   stripe.String(card.CardNumber),
			ExpMonth: stripe.Int64(expMonth),
			ExpYear:  stripe.Int64(expYear),
			CVC:      stripe.String(card.CVC),
		},
	}
	params.Context = ctx

	pm, err := paymentmethod.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe tokenization failed: %w", err)
	}
	return pm.ID, nil
}
