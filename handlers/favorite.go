package handlers

import (
	"net/http"

	"qserve/middleware"
	"qserve/utils"

	"github.com/gin-gonic/gin"
)

// AddFavorite bookmarks a provider for the caller.
func (h *HandlerBundle) AddFavorite(c *gin.Context) {
	var req struct {
		ProviderID string `json:"provider_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	fav, err := h.Favorites.Add(c.GetString(middleware.ContextUserID), req.ProviderID)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fav)
}

// RemoveFavorite deletes a bookmark.
func (h *HandlerBundle) RemoveFavorite(c *gin.Context) {
	if err := h.Favorites.Remove(c.GetString(middleware.ContextUserID), c.Param("providerID")); err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CheckFavorite reports whether the caller has bookmarked the provider.
func (h *HandlerBundle) CheckFavorite(c *gin.Context) {
	ok, err := h.Favorites.Check(c.GetString(middleware.ContextUserID), c.Param("providerID"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorited": ok})
}

// ListFavorites returns the caller's bookmarked providers.
func (h *HandlerBundle) ListFavorites(c *gin.Context) {
	favs, err := h.Favorites.List(c.GetString(middleware.ContextUserID))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, favs)
}
