package handlers

import (
	"net/http"

	"tranquilflow/services/membership"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MembershipHandler exposes the membership plan catalogue and enrollment.
type MembershipHandler struct {
	Memberships membership.MembershipService
	Logger      *zap.Logger
}

// NewMembershipHandler constructs a MembershipHandler.
func NewMembershipHandler(memberships membership.MembershipService, logger *zap.Logger) *MembershipHandler {
	return &MembershipHandler{Memberships: memberships, Logger: logger}
}

// ListPlans returns the plan catalogue in presentation order.
func (h *MembershipHandler) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": h.Memberships.ListPlans()})
}

// Enroll submits a membership sign-up.
func (h *MembershipHandler) Enroll(c *gin.Context) {
	var input struct {
		Name      string `json:"name"`
		Email     string `json:"email"`
		PlanID    string `json:"planId"`
		StartDate string `json:"startDate"`
		Autopay   bool   `json:"autopay"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	enrollment, err := h.Memberships.Enroll(c.Request.Context(), input.Name, input.Email, input.PlanID, input.StartDate, input.Autopay)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"enrollment": enrollment})
}
