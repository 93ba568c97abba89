package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trading-platform-backend/internal/features/tier/models"
)

type TierHandler struct{}

func NewTierHandler() *TierHandler {
	return &TierHandler{}
}

func (h *TierHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/tiers", h.ListTiers)
}

// @Summary List account tiers
// @Description Returns the upgrade catalog ordered from the entry tier upwards
// @Tags tiers
// @Produce json
// @Success 200 {array} models.Tier
// @Router /tiers [get]
func (h *TierHandler) ListTiers(c *gin.Context) {
	c.JSON(http.StatusOK, models.Catalog)
}
