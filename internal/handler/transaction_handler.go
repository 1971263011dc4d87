package handler

import (
	"net/http"

	"jubbisoft/internal/domain"
	"jubbisoft/internal/middleware"
	"jubbisoft/internal/service"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	transactions service.TransactionStore
}

func NewTransactionHandler(transactions service.TransactionStore) *TransactionHandler {
	return &TransactionHandler{transactions: transactions}
}

// ListMine returns the authenticated user's transaction history, newest
// first.
func (h *TransactionHandler) ListMine(c *gin.Context) {
	list, err := h.transactions.ListByOwnerID(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": list})
}

func (h *TransactionHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	txn, err := h.transactions.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if txn.OwnerID != middleware.GetUserID(c) {
		role, _ := c.Get("role")
		if role != domain.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
	}
	c.JSON(http.StatusOK, txn)
}
