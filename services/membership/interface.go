package membership

import (
	"context"

	"tranquilflow/models"
)

// MembershipService handles recurring membership sign-up. It is a simplified
// sibling of the payment orchestrator: one confirmation channel, no branching.
type MembershipService interface {
	ListPlans() []models.MembershipPlan
	Enroll(ctx context.Context, name, email, planID, startDate string, autopay bool) (*models.MembershipEnrollment, error)
}
