package membership

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tranquilflow/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService() *DefaultMembershipService {
	return NewMembershipService(zap.NewNop(), 0)
}

func TestListPlans_StableOrder(t *testing.T) {
	svc := newTestService()

	var ids []string
	for _, plan := range svc.ListPlans() {
		ids = append(ids, plan.ID)
	}
	assert.Equal(t, []string{"heritage", "luminary", "celestial"}, ids)
}

func TestEnroll_EchoesInput(t *testing.T) {
	svc := newTestService()

	enrollment, err := svc.Enroll(context.Background(), "Sam", "sam@x.com", "heritage", "2025-01-10", true)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(enrollment.ID, "heritage-"))
	assert.Equal(t, "Sam", enrollment.Name)
	assert.Equal(t, "sam@x.com", enrollment.Email)
	assert.Equal(t, "heritage", enrollment.PlanID)
	assert.Equal(t, "2025-01-10", enrollment.StartDate)
	assert.True(t, enrollment.Autopay)
}

func TestEnroll_MissingFields(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	cases := []struct {
		name      string
		guestName string
		email     string
		startDate string
	}{
		{"missing name", "", "sam@x.com", "2025-01-10"},
		{"missing email", "Sam", "", "2025-01-10"},
		{"missing start date", "Sam", "sam@x.com", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Enroll(ctx, tc.guestName, tc.email, "heritage", tc.startDate, false)
			var validationErr utils.ValidationError
			require.True(t, errors.As(err, &validationErr))
		})
	}
}

func TestEnroll_SequentialEnrollmentsAccumulate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first, err := svc.Enroll(ctx, "Sam", "sam@x.com", "luminary", "2025-01-10", false)
	require.NoError(t, err)
	second, err := svc.Enroll(ctx, "Sam", "sam@x.com", "luminary", "2025-01-10", false)
	require.NoError(t, err)

	// No duplicate-enrollment check: both succeed with their own ids.
	assert.True(t, strings.HasPrefix(first.ID, "luminary-"))
	assert.True(t, strings.HasPrefix(second.ID, "luminary-"))
}
