package handlers

import (
	"errors"
	"net/http"

	"tranquilflow/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps domain errors to HTTP responses. Validation messages are
// guest-facing and pass through verbatim; store and provider failures are
// reduced to generic messages so internals never leak.
func respondError(c *gin.Context, err error) {
	var validationErr utils.ValidationError
	var storeErr utils.StoreUnavailableError
	var providerErr utils.ProviderCallError
	var conflictErr utils.SlotConflictError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case errors.As(err, &storeErr):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "The booking service is temporarily unavailable. Please try again later."})
	case errors.As(err, &providerErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": "We were unable to store the payment method. Please try again."})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{"error": "That time slot was just taken. Please pick another."})
	default:
		utils.GetLogger().Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
	}
}
