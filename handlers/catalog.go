package handlers

import (
	"net/http"

	"tranquilflow/services/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the treatment catalogue.
type CatalogHandler struct {
	Catalog catalog.CatalogService
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(cat catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Catalog: cat}
}

// ListTreatments returns the bookable treatments in presentation order.
func (h *CatalogHandler) ListTreatments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"treatments": h.Catalog.ListTreatments()})
}
