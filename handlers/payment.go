package handlers

import (
	"net/http"

	"tranquilflow/models"
	"tranquilflow/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes the payment channel catalogue and enrollment.
type PaymentHandler struct {
	Profiles payment.ProfileService
	Logger   *zap.Logger
}

// NewPaymentHandler constructs a PaymentHandler.
func NewPaymentHandler(profiles payment.ProfileService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Profiles: profiles, Logger: logger}
}

// ListMethods returns the supported payment channels in presentation order.
func (h *PaymentHandler) ListMethods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"methods": h.Profiles.ListMethods()})
}

// CreateProfile runs one enrollment submission through the orchestrator.
func (h *PaymentHandler) CreateProfile(c *gin.Context) {
	var req models.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	enrollment, err := h.Profiles.CreateProfile(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"enrollment": enrollment})
}
