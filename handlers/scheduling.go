package handlers

import (
	"net/http"
	"time"

	"tranquilflow/models"
	"tranquilflow/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SchedulingHandler exposes the scheduling session lifecycle.
type SchedulingHandler struct {
	Scheduler scheduling.SchedulingService
	Logger    *zap.Logger
}

// NewSchedulingHandler constructs a SchedulingHandler.
func NewSchedulingHandler(scheduler scheduling.SchedulingService, logger *zap.Logger) *SchedulingHandler {
	return &SchedulingHandler{Scheduler: scheduler, Logger: logger}
}

// StartSession opens a scheduling session for a provider.
func (h *SchedulingHandler) StartSession(c *gin.Context) {
	var input struct {
		ProviderID string `json:"providerId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Scheduler.StartSession(c.Request.Context(), input.ProviderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// ChangeService selects a treatment, invalidating any previously chosen slot.
func (h *SchedulingHandler) ChangeService(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		TreatmentID string `json:"treatmentId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Scheduler.ChangeService(c.Request.Context(), sessionID, input.TreatmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SelectSlot proposes a reservation window from a calendar click.
func (h *SchedulingHandler) SelectSlot(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Start time.Time `json:"start"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Scheduler.SelectSlot(c.Request.Context(), sessionID, input.Start)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// ConfirmBooking persists the selected slot and returns the refreshed
// calendar alongside the created booking.
func (h *SchedulingHandler) ConfirmBooking(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input models.GuestDetails
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	booking, bookings, err := h.Scheduler.ConfirmBooking(c.Request.Context(), sessionID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking, "bookings": bookings})
}
