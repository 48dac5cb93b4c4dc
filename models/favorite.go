package models

import "time"

// Favorite bookmarks a provider for a user. The (user, provider) pair is
// unique at the store level.
type Favorite struct {
	ID         string    `bson:"id" json:"id"`
	UserID     string    `bson:"user_id" json:"user_id"`
	ProviderID string    `bson:"provider_id" json:"provider_id"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}
