package handlers

import (
	"net/http"

	"tranquilflow/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the reservation calendar endpoints.
type BookingHandler struct {
	Scheduler scheduling.SchedulingService
	Logger    *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(scheduler scheduling.SchedulingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Scheduler: scheduler, Logger: logger}
}

// ListProviderBookings returns every booking for a provider. An empty list
// means "no bookings", never an error; the calendar renders it as open time.
func (h *BookingHandler) ListProviderBookings(c *gin.Context) {
	providerID := c.Param("providerID")
	bookings, err := h.Scheduler.ListBookings(c.Request.Context(), providerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
