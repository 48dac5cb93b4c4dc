package models

import "time"

// Message is a direct message between two users, grouped by a derived
// order-independent conversation identifier.
type Message struct {
	ID             string    `bson:"id" json:"id"`
	ConversationID string    `bson:"conversation_id" json:"conversation_id"`
	SenderID       string    `bson:"sender_id" json:"sender_id"`
	ReceiverID     string    `bson:"receiver_id" json:"receiver_id"`
	Content        string    `bson:"content" json:"content"`
	Type           string    `bson:"type" json:"type"` // e.g. "text"
	IsRead         bool      `bson:"is_read" json:"is_read"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}

// LastMessage is the denormalized tail of a conversation kept on the
// summary row for inbox rendering.
type LastMessage struct {
	Content   string    `bson:"content" json:"content"`
	SenderID  string    `bson:"sender_id" json:"sender_id"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// ConversationSummary is the per-participant inbox row. Each message send
// upserts two of these, one per participant.
type ConversationSummary struct {
	ID             string      `bson:"id" json:"id"`
	OwnerID        string      `bson:"owner_id" json:"owner_id"`
	CounterpartID  string      `bson:"counterpart_id" json:"counterpart_id"`
	ConversationID string      `bson:"conversation_id" json:"conversation_id"`
	LastMessage    LastMessage `bson:"last_message" json:"last_message"`
	UnreadCount    int         `bson:"unread_count" json:"unread_count"`
	UpdatedAt      time.Time   `bson:"updated_at" json:"updated_at"`
}

// ConversationView is a summary joined with the counterpart's public
// identity for inbox responses.
type ConversationView struct {
	ConversationSummary
	CounterpartName  string `json:"counterpart_name"`
	CounterpartImage string `json:"counterpart_image,omitempty"`
}
