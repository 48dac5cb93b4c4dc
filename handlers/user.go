package handlers

import (
	"net/http"

	"qserve/middleware"
	"qserve/models"
	"qserve/utils"

	"github.com/gin-gonic/gin"
)

// GetProfile returns the authenticated user's profile.
func (h *HandlerBundle) GetProfile(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	profile, err := h.Users.GetUserByID(userID)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile applies partial updates to the authenticated user's profile.
func (h *HandlerBundle) UpdateProfile(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var req models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.ID = userID

	updated, err := h.Users.UpdateProfile(req)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GetUser returns a user's public profile by id.
func (h *HandlerBundle) GetUser(c *gin.Context) {
	profile, err := h.Users.GetUserByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ListProviders returns providers, optionally filtered by occupation.
func (h *HandlerBundle) ListProviders(c *gin.Context) {
	providers, err := h.Users.GetProviders(c.Query("occupation"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, providers)
}

// UploadProfileImage accepts a multipart image, stores it and records the URL.
func (h *HandlerBundle) UploadProfileImage(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	if h.Storage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "media storage is not configured"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing image file"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image file"})
		return
	}
	defer file.Close()

	url, err := h.Storage.UploadProfileImage(c.Request.Context(), file, userID)
	if err != nil {
		utils.JSONError(c, utils.Wrap(utils.CodeInternal, "failed to upload image", err))
		return
	}
	if err := h.Users.SetProfileImage(userID, url); err != nil {
		utils.JSONError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile_image": url})
}
