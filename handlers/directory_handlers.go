package handlers

import (
	"context"
	"net/http"

	"github.com/aniketgore/Influencer_Payment_Backend.git/config"
	"github.com/aniketgore/Influencer_Payment_Backend.git/models"
	"github.com/gin-gonic/gin"
)

// Directory reads are fail-soft: a backend error is logged and the caller
// gets an empty list, so the form shows "no data" instead of breaking.

// ListBrands godoc
// @Summary List all brand names
// @Produce json
// @Success 200 {array} string "Brand names, lexicographic"
// @Router /brands [get]
func (h *Handler) ListBrands(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	brands, err := h.Directory.ListBrands(ctx)
	if err != nil {
		config.LogError(h.Logger, "handlers", "ListBrands", "list brands", err)
		brands = []string{}
	}
	if brands == nil {
		brands = []string{}
	}
	c.JSON(http.StatusOK, brands)
}

// ListInfluencers godoc
// @Summary List influencers on a brand's roster
// @Produce json
// @Param brandName path string true "Brand name"
// @Success 200 {array} models.Influencer
// @Router /brands/{brandName}/influencers [get]
func (h *Handler) ListInfluencers(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	influencers, err := h.Directory.ListInfluencers(ctx, c.Param("brandName"))
	if err != nil {
		config.LogError(h.Logger, "handlers", "ListInfluencers", "list influencers", err)
		influencers = []models.Influencer{}
	}
	c.JSON(http.StatusOK, influencers)
}

// ListPendingPayments godoc
// @Summary List pending payments for an influencer
// @Produce json
// @Param handle path string true "Instagram handle"
// @Param brand query string false "Narrow to one brand"
// @Success 200 {array} models.PendingPayment
// @Router /influencers/{handle}/pending-payments [get]
func (h *Handler) ListPendingPayments(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	payments, err := h.Directory.ListPendingPayments(ctx, c.Param("handle"), c.Query("brand"))
	if err != nil {
		config.LogError(h.Logger, "handlers", "ListPendingPayments", "list pending payments", err)
		payments = []models.PendingPayment{}
	}
	c.JSON(http.StatusOK, payments)
}
