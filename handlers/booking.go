package handlers

import (
	"net/http"

	"qserve/middleware"
	"qserve/services/booking"
	"qserve/utils"

	"github.com/gin-gonic/gin"
)

// CreateBooking books a provider for a service on a given date.
func (h *HandlerBundle) CreateBooking(c *gin.Context) {
	var req booking.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.CustomerID = c.GetString(middleware.ContextUserID)

	created, err := h.Bookings.Create(req)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateBookingStatus moves a booking through its lifecycle. The assigned
// provider is the only caller allowed to do this.
func (h *HandlerBundle) UpdateBookingStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.Bookings.UpdateStatus(c.Param("id"), c.GetString(middleware.ContextUserID), req.Status)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GetBooking returns a booking visible to either party.
func (h *HandlerBundle) GetBooking(c *gin.Context) {
	bk, err := h.Bookings.GetByID(c.Param("id"), c.GetString(middleware.ContextUserID))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, bk)
}

// ListCustomerBookings returns the caller's bookings as a customer.
func (h *HandlerBundle) ListCustomerBookings(c *gin.Context) {
	list, err := h.Bookings.ListForCustomer(c.GetString(middleware.ContextUserID))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// ListProviderBookings returns the caller's bookings as a provider.
func (h *HandlerBundle) ListProviderBookings(c *gin.Context) {
	list, err := h.Bookings.ListForProvider(c.GetString(middleware.ContextUserID))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
