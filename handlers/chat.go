package handlers

import (
	"net/http"

	"qserve/middleware"
	"qserve/utils"

	"github.com/gin-gonic/gin"
)

// SendMessage delivers a chat message to another user.
func (h *HandlerBundle) SendMessage(c *gin.Context) {
	var req struct {
		ReceiverID string `json:"receiver_id"`
		Content    string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	msg, err := h.Chat.SendMessage(c.GetString(middleware.ContextUserID), req.ReceiverID, req.Content)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// GetConversation returns the full thread with another user and marks the
// caller's side as read.
func (h *HandlerBundle) GetConversation(c *gin.Context) {
	msgs, err := h.Chat.GetConversation(c.GetString(middleware.ContextUserID), c.Param("userID"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// ListConversations returns the caller's inbox, most recent first.
func (h *HandlerBundle) ListConversations(c *gin.Context) {
	convs, err := h.Chat.GetUserConversations(c.GetString(middleware.ContextUserID))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	c.JSON(http.StatusOK, convs)
}
