package handlers

import (
	"net/http"

	"qserve/middleware"
	"qserve/services/moneyrequest"
	"qserve/utils"

	"github.com/gin-gonic/gin"
)

// CreateMoneyRequest raises an invoice against a completed booking.
func (h *HandlerBundle) CreateMoneyRequest(c *gin.Context) {
	var req moneyrequest.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.ProviderID = c.GetString(middleware.ContextUserID)

	created, err := h.Requests.Create(req)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PayMoneyRequest marks a request as paid. Customer side only.
func (h *HandlerBundle) PayMoneyRequest(c *gin.Context) {
	updated, err := h.Requests.MarkAsPaid(c.Param("id"), c.GetString(middleware.ContextUserID))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// CancelMoneyRequest withdraws an unpaid request. Provider side only.
func (h *HandlerBundle) CancelMoneyRequest(c *gin.Context) {
	updated, err := h.Requests.Cancel(c.Param("id"), c.GetString(middleware.ContextUserID))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GetMoneyRequest returns a request visible to either party.
func (h *HandlerBundle) GetMoneyRequest(c *gin.Context) {
	req, err := h.Requests.GetByID(c.Param("id"), c.GetString(middleware.ContextUserID))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// ListMoneyRequests returns requests where the caller is either party.
func (h *HandlerBundle) ListMoneyRequests(c *gin.Context) {
	list, err := h.Requests.ListForUser(c.GetString(middleware.ContextUserID))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
