package handler

import (
	"net/http"

	"jubbisoft/internal/domain"
	"jubbisoft/internal/middleware"
	"jubbisoft/internal/service"

	"github.com/gin-gonic/gin"
)

type TreasuryHandler struct {
	treasury *service.TreasuryService
}

func NewTreasuryHandler(treasury *service.TreasuryService) *TreasuryHandler {
	return &TreasuryHandler{treasury: treasury}
}

// Get returns the treasury state (admin).
func (h *TreasuryHandler) Get(c *gin.Context) {
	t, err := h.treasury.Get()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// TopUp grants the fixed treasury amount to the authenticated user's
// wallet. A FAILED transaction comes back as 402 so clients can present
// the reason.
func (h *TreasuryHandler) TopUp(c *gin.Context) {
	txn, err := h.treasury.Grant(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if txn.Status == domain.TransactionStatusFailed {
		c.JSON(http.StatusPaymentRequired, txn)
		return
	}
	c.JSON(http.StatusOK, txn)
}
