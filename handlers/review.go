package handlers

import (
	"net/http"

	"qserve/middleware"
	"qserve/services/review"
	"qserve/utils"

	"github.com/gin-gonic/gin"
)

// CreateReview posts a review on a provider, or a reply when a parent id is
// supplied.
func (h *HandlerBundle) CreateReview(c *gin.Context) {
	var req review.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.AuthorID = c.GetString(middleware.ContextUserID)

	created, err := h.Reviews.Create(req)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateReview edits the comment of the caller's own review.
func (h *HandlerBundle) UpdateReview(c *gin.Context) {
	var req struct {
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.Reviews.Update(c.Param("id"), c.GetString(middleware.ContextUserID), req.Comment)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteReview removes the caller's own review along with its replies.
func (h *HandlerBundle) DeleteReview(c *gin.Context) {
	if err := h.Reviews.Delete(c.Param("id"), c.GetString(middleware.ContextUserID)); err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// LikeReview toggles the caller's like on a review.
func (h *HandlerBundle) LikeReview(c *gin.Context) {
	updated, err := h.Reviews.Like(c.Param("id"), c.GetString(middleware.ContextUserID))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DislikeReview toggles the caller's dislike on a review.
func (h *HandlerBundle) DislikeReview(c *gin.Context) {
	updated, err := h.Reviews.Dislike(c.Param("id"), c.GetString(middleware.ContextUserID))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ListProviderReviews returns a provider's top-level reviews, newest-first.
func (h *HandlerBundle) ListProviderReviews(c *gin.Context) {
	list, err := h.Reviews.ListByProvider(c.Param("providerID"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
