package routes

import (
	"tranquilflow/handlers"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the router needs.
type HandlerBundle struct {
	Booking    *handlers.BookingHandler
	Scheduling *handlers.SchedulingHandler
	Payment    *handlers.PaymentHandler
	Membership *handlers.MembershipHandler
	Catalog    *handlers.CatalogHandler
}

// RegisterRoutes registers all endpoints on the router.
func RegisterRoutes(r *gin.Engine, h *HandlerBundle) {
	r.GET("/health", handlers.HealthHandler)

	api := r.Group("/api")
	{
		bookings := api.Group("/bookings")
		{
			bookings.GET("/provider/:providerID", h.Booking.ListProviderBookings)
		}

		scheduling := api.Group("/scheduling")
		{
			scheduling.POST("/session", h.Scheduling.StartSession)
			scheduling.PUT("/session/:sessionID/treatment", h.Scheduling.ChangeService)
			scheduling.PUT("/session/:sessionID/slot", h.Scheduling.SelectSlot)
			scheduling.POST("/session/:sessionID/confirm", h.Scheduling.ConfirmBooking)
		}

		payments := api.Group("/payments")
		{
			payments.GET("/methods", h.Payment.ListMethods)
			payments.POST("/profiles", h.Payment.CreateProfile)
		}

		memberships := api.Group("/memberships")
		{
			memberships.GET("/plans", h.Membership.ListPlans)
			memberships.POST("/enrollments", h.Membership.Enroll)
		}

		api.GET("/treatments", h.Catalog.ListTreatments)
	}
}
