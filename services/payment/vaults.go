package payment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tranquilflow/models"

	"github.com/google/uuid"
)

// waitFor simulates provider latency while honoring cancellation of the
// submitting session. A cancelled context aborts the wait; the orchestrator
// never applies a result delivered after cancellation.
func waitFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// lastFour returns the trailing four digits of a card number.
func lastFour(cardNumber string) string {
	if len(cardNumber) < 4 {
		return cardNumber
	}
	return cardNumber[len(cardNumber)-4:]
}

// SimulatedCardVault stands in for a card tokenization SDK. References are
// synthetic; no credentials leave the process.
type SimulatedCardVault struct {
	Latency time.Duration
}

func (v *SimulatedCardVault) Tokenize(ctx context.Context, card CardDetails) (string, error) {
	if card.CardNumber == "" || card.ExpiryMonth == "" || card.ExpiryYear == "" || card.CVC == "" {
		return "", fmt.Errorf("card details are incomplete")
	}
	if err := waitFor(ctx, v.Latency); err != nil {
		return "", err
	}
	return fmt.Sprintf("pm_%s%d", lastFour(card.CardNumber), time.Now().UnixMilli()), nil
}

// SimulatedAgreementClient stands in for the PayPal billing-agreement API.
type SimulatedAgreementClient struct {
	Latency time.Duration
}

func (c *SimulatedAgreementClient) CreateAgreement(ctx context.Context, paypalEmail string) (string, error) {
	if paypalEmail == "" {
		return "", fmt.Errorf("the guest PayPal email is required")
	}
	if err := waitFor(ctx, c.Latency); err != nil {
		return "", err
	}
	fragment := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return "B-" + fragment, nil
}

// SimulatedCheckoutLinkClient stands in for an email-keyed saved-checkout API.
type SimulatedCheckoutLinkClient struct {
	Latency time.Duration
}

func (c *SimulatedCheckoutLinkClient) CreateLink(ctx context.Context, email string) (CheckoutLink, error) {
	if email == "" {
		return CheckoutLink{}, fmt.Errorf("a guest email is required")
	}
	if err := waitFor(ctx, c.Latency); err != nil {
		return CheckoutLink{}, err
	}
	return CheckoutLink{
		LinkID: fmt.Sprintf("link_%d", time.Now().UnixMilli()),
		Status: models.StatusAwaitingVerification,
	}, nil
}
