package handlers

import (
	"net/http"

	"qserve/middleware"
	"qserve/utils"

	"github.com/gin-gonic/gin"
)

type amountRequest struct {
	Amount float64 `json:"amount"`
}

// GetWallet returns the caller's wallet balance.
func (h *HandlerBundle) GetWallet(c *gin.Context) {
	acct, err := h.Wallets.GetAccount(c.GetString(middleware.ContextUserID))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, acct)
}

// WalletDeposit credits the caller's wallet.
func (h *HandlerBundle) WalletDeposit(c *gin.Context) {
	var req amountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	acct, err := h.Wallets.Deposit(c.GetString(middleware.ContextUserID), req.Amount)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, acct)
}

// WalletWithdraw debits the caller's wallet. Overdrafts are rejected.
func (h *HandlerBundle) WalletWithdraw(c *gin.Context) {
	var req amountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	acct, err := h.Wallets.Withdraw(c.GetString(middleware.ContextUserID), req.Amount)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, acct)
}
