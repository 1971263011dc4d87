package handler

import (
	"net/http"

	"jubbisoft/internal/middleware"
	"jubbisoft/internal/service"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	wallets *service.WalletService
}

func NewWalletHandler(wallets *service.WalletService) *WalletHandler {
	return &WalletHandler{wallets: wallets}
}

// GetBalance returns the authenticated user's wallet.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	w, err := h.wallets.GetByUserID(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"wallet_id":     w.ID,
		"balance_cents": w.BalanceCents,
		"status":        w.Status,
		"currency":      w.Currency,
	})
}

// SwitchStatus toggles a wallet between ACTIVE and INACTIVE (admin).
func (h *WalletHandler) SwitchStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	w, err := h.wallets.SwitchStatus(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"wallet_id": w.ID, "status": w.Status})
}
