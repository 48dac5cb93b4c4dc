package reviewRepo

import "qserve/models"

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	// Create inserts a new review.
	Create(rev *models.Review) error
	// GetByID retrieves a review by id. Returns (nil, nil) when absent.
	GetByID(id string) (*models.Review, error)
	// UpdateComment overwrites the comment, appending the previous one to
	// the edit history.
	UpdateComment(id, comment string, previous models.ReviewEdit) error
	// AddReply appends a reply id to the parent's replies list.
	AddReply(parentID, replyID string) error
	// RemoveReply pulls a reply id from the parent's replies list.
	RemoveReply(parentID, replyID string) error
	// Delete removes the given reviews.
	Delete(ids ...string) error
	// React toggles the user into one reaction set and out of the other.
	// field is "likes" or "dislikes".
	React(id, userID, field string) error
	// Unreact removes the user from the given reaction set.
	Unreact(id, userID, field string) error
	// ListByProvider retrieves a provider's top-level reviews, newest-first.
	ListByProvider(providerID string) ([]models.Review, error)
}
