package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"qserve/middleware"
	"qserve/models"
	"qserve/services/transaction"
	"qserve/utils"

	"github.com/gin-gonic/gin"
)

// SendMoney transfers funds between QPay accounts, gated by the sender's PIN.
func (h *HandlerBundle) SendMoney(c *gin.Context) {
	var req transaction.SendMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.SenderID = c.GetString(middleware.ContextUserID)

	tx, err := h.Transactions.SendMoney(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tx)
}

// TransactionHistory returns the caller's transactions, newest-first.
// Supports status, direction, offset and limit query parameters.
func (h *HandlerBundle) TransactionHistory(c *gin.Context) {
	filter := models.TransactionFilter{
		Status:    c.Query("status"),
		Direction: c.Query("direction"),
	}
	offset, _ := strconv.ParseInt(c.DefaultQuery("offset", "0"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "0"), 10, 64)

	history, err := h.Transactions.GetHistory(c.GetString(middleware.ContextUserID), filter, offset, limit)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// GetTransaction returns a single transaction visible to either party.
func (h *HandlerBundle) GetTransaction(c *gin.Context) {
	tx, err := h.Transactions.GetByID(c.Param("id"), c.GetString(middleware.ContextUserID))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, tx)
}

// DownloadReceipt renders a PDF receipt for a completed transaction.
func (h *HandlerBundle) DownloadReceipt(c *gin.Context) {
	txID := c.Param("id")

	pdf, err := h.Transactions.Receipt(txID, c.GetString(middleware.ContextUserID))
	if err != nil {
		utils.JSONError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", txID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
