package handler

import (
	"net/http"

	"jubbisoft/internal/middleware"
	"jubbisoft/internal/service"

	"github.com/gin-gonic/gin"
)

type LoyaltyHandler struct {
	loyalties *service.LoyaltyService
}

func NewLoyaltyHandler(loyalties *service.LoyaltyService) *LoyaltyHandler {
	return &LoyaltyHandler{loyalties: loyalties}
}

// GetMine returns the authenticated user's loyalty record and current
// discount.
func (h *LoyaltyHandler) GetMine(c *gin.Context) {
	userID := middleware.GetUserID(c)
	l, err := h.loyalties.GetByUserID(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	bps, err := h.loyalties.DiscountBps(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"tier":            l.Tier,
		"games_purchased": l.GamesPurchased,
		"discount_bps":    bps,
	})
}
