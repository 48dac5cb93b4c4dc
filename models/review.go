package models

import "time"

// ReviewEdit is one entry of a review's edit history.
type ReviewEdit struct {
	Comment  string    `bson:"comment" json:"comment"`
	EditedAt time.Time `bson:"edited_at" json:"edited_at"`
}

// Review is a comment on a provider. Replies are reviews with a parent;
// their ids are also tracked on the parent's Replies list so a top-level
// delete can cascade.
type Review struct {
	ID             string       `bson:"id" json:"id"`
	AuthorID       string       `bson:"author_id" json:"author_id"`
	ProviderID     string       `bson:"provider_id" json:"provider_id"`
	Comment        string       `bson:"comment" json:"comment"`
	Rating         int          `bson:"rating,omitempty" json:"rating,omitempty"`
	ParentReviewID string       `bson:"parent_review_id,omitempty" json:"parent_review_id,omitempty"`
	Replies        []string     `bson:"replies,omitempty" json:"replies,omitempty"`
	Likes          []string     `bson:"likes,omitempty" json:"likes,omitempty"`
	Dislikes       []string     `bson:"dislikes,omitempty" json:"dislikes,omitempty"`
	IsEdited       bool         `bson:"is_edited" json:"is_edited"`
	EditHistory    []ReviewEdit `bson:"edit_history,omitempty" json:"edit_history,omitempty"`
	CreatedAt      time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time    `bson:"updated_at" json:"updated_at"`
}
