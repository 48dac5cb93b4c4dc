package handlers

import (
	"net/http"

	"qserve/services/user"
	"qserve/utils"

	"github.com/gin-gonic/gin"
)

// Register creates a new account and returns a signed token.
func (h *HandlerBundle) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Users.Register(req)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login authenticates credentials and returns a signed token.
func (h *HandlerBundle) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Users.Authenticate(req.Email, req.Password)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
