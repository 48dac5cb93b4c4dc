package handlers

import (
	"net/http"

	"qserve/middleware"
	"qserve/utils"

	"github.com/gin-gonic/gin"
)

// RegisterQPay opens a PIN-gated QPay account for the caller.
func (h *HandlerBundle) RegisterQPay(c *gin.Context) {
	var req struct {
		Pin string `json:"pin"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	acct, err := h.QPay.RegisterAccount(c.GetString(middleware.ContextUserID), req.Pin)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusCreated, acct)
}

// GetQPayAccount returns the caller's QPay account.
func (h *HandlerBundle) GetQPayAccount(c *gin.Context) {
	acct, err := h.QPay.GetAccount(c.GetString(middleware.ContextUserID))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, acct)
}

// VerifyQPayPin checks the submitted PIN against the caller's account.
func (h *HandlerBundle) VerifyQPayPin(c *gin.Context) {
	var req struct {
		Pin string `json:"pin"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	ok, err := h.QPay.VerifyPin(c.GetString(middleware.ContextUserID), req.Pin)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": ok})
}

// QPayDeposit credits the caller's QPay balance.
func (h *HandlerBundle) QPayDeposit(c *gin.Context) {
	var req amountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	acct, err := h.QPay.Deposit(c.GetString(middleware.ContextUserID), req.Amount)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, acct)
}

// QPayWithdraw debits the caller's QPay balance. Overdrafts are rejected.
func (h *HandlerBundle) QPayWithdraw(c *gin.Context) {
	var req amountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	acct, err := h.QPay.Withdraw(c.GetString(middleware.ContextUserID), req.Amount)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, acct)
}

// SetQPayDiscount sets the discount percentage on a user's account. Admin only.
func (h *HandlerBundle) SetQPayDiscount(c *gin.Context) {
	var req struct {
		Percent float64 `json:"percent"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.QPay.SetDiscount(c.Param("userID"), req.Percent); err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AddQPayCashback grants cashback to a user's account. Admin only.
func (h *HandlerBundle) AddQPayCashback(c *gin.Context) {
	var req amountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.QPay.AddCashback(c.Param("userID"), req.Amount); err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
