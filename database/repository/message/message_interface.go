package messageRepo

import "qserve/models"

// MessageRepository defines methods for message and inbox summary access.
type MessageRepository interface {
	// InsertMessage persists a new message.
	InsertMessage(m *models.Message) error
	// ListByConversation retrieves a conversation's messages oldest-first.
	ListByConversation(conversationID string) ([]models.Message, error)
	// MarkRead flags every unread message addressed to the reader within the
	// conversation as read. Returns the number of messages flipped.
	MarkRead(conversationID, readerID string) (int64, error)
	// UpsertSummary creates or refreshes one participant's inbox row,
	// incrementing its unread count by unreadDelta.
	UpsertSummary(ownerID, counterpartID, conversationID string, last models.LastMessage, unreadDelta int) error
	// ResetUnread zeroes the unread count on the owner's inbox row.
	ResetUnread(ownerID, conversationID string) error
	// ListSummaries retrieves the owner's inbox rows, most recent first.
	ListSummaries(ownerID string) ([]models.ConversationSummary, error)
}
