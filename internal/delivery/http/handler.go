package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopsense/backend/internal/domain"
	"github.com/shopsense/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	recommender *usecase.RecommendationService
	catalog     domain.CatalogSource
}

// NewHandler creates a new HTTP handler
func NewHandler(recommender *usecase.RecommendationService, catalog domain.CatalogSource) *Handler {
	return &Handler{
		recommender: recommender,
		catalog:     catalog,
	}
}

// RecommendRequest is the body of a recommendation request
type RecommendRequest struct {
	Preference string `json:"preference" binding:"required"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "shopsense-backend",
		"version": "1.0.0",
	})
}

// ListProducts returns the current catalog snapshot
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.catalog.Products(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// Recommend ranks the catalog against the preference text in the body.
// The engine never fails; only a missing preference or an unavailable
// catalog produce a non-200 response.
func (h *Handler) Recommend(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "preference is required"})
		return
	}

	products, err := h.catalog.Products(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	result := h.recommender.Recommend(c.Request.Context(), req.Preference, products)
	c.JSON(http.StatusOK, result)
}
