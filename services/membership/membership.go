package membership

import (
	"context"
	"fmt"
	"time"

	"tranquilflow/models"
	"tranquilflow/utils"

	"go.uber.org/zap"
)

// plans is built once at process start and never mutated.
var plans = []models.MembershipPlan{
	{
		ID:        "heritage",
		Name:      "Heritage",
		Price:     159,
		Frequency: "per month",
		Perks: []string{
			"One 90-minute signature ritual each month",
			"Complimentary hydrotherapy lounge access",
			"Priority booking windows and late cancellations",
			"5% retail boutique savings",
		},
		Featured: false,
	},
	{
		ID:        "luminary",
		Name:      "Luminary",
		Price:     229,
		Frequency: "per month",
		Perks: []string{
			"Two 75-minute bespoke treatments per month",
			"Guided wellness coaching session each quarter",
			"Complimentary enhancements on every visit",
			"10% savings on retail and add-ons",
		},
		Featured: true,
	},
	{
		ID:        "celestial",
		Name:      "Celestial",
		Price:     349,
		Frequency: "per month",
		Perks: []string{
			"Weekly 60-minute treatments with therapist rotation",
			"Private suite upgrade with each reservation",
			"Quarterly restorative retreat experience",
			"20% boutique savings and gifting concierge",
		},
		Featured: false,
	},
}

// DefaultMembershipService implements MembershipService with a simulated
// external confirmation call.
type DefaultMembershipService struct {
	Logger  *zap.Logger
	Latency time.Duration
}

// NewMembershipService constructs a membership service with the given
// simulated confirmation latency.
func NewMembershipService(logger *zap.Logger, latency time.Duration) *DefaultMembershipService {
	return &DefaultMembershipService{Logger: logger, Latency: latency}
}

// ListPlans returns the plan catalogue in presentation order.
func (svc *DefaultMembershipService) ListPlans() []models.MembershipPlan {
	out := make([]models.MembershipPlan, len(plans))
	copy(out, plans)
	return out
}

// Enroll validates the submission, simulates the external confirmation, and
// returns an immutable enrollment. Sequential enrollments for the same guest
// simply accumulate; there is no duplicate check.
func (svc *DefaultMembershipService) Enroll(ctx context.Context, name, email, planID, startDate string, autopay bool) (*models.MembershipEnrollment, error) {
	if name == "" {
		return nil, utils.NewValidationError("name", "a name is required to enroll")
	}
	if email == "" {
		return nil, utils.NewValidationError("email", "an email is required to enroll")
	}
	if startDate == "" {
		return nil, utils.NewValidationError("startDate", "a start date is required to enroll")
	}

	if err := waitFor(ctx, svc.Latency); err != nil {
		return nil, err
	}

	enrollment := &models.MembershipEnrollment{
		ID:        fmt.Sprintf("%s-%d", planID, time.Now().UnixMilli()),
		Name:      name,
		Email:     email,
		PlanID:    planID,
		StartDate: startDate,
		Autopay:   autopay,
	}
	svc.Logger.Info("membership enrollment confirmed",
		zap.String("enrollmentId", enrollment.ID),
		zap.String("planId", planID),
	)
	return enrollment, nil
}

// waitFor simulates the external confirmation delay while honoring
// cancellation of the submitting session.
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
