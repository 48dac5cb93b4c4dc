package review

import (
	"time"

	reviewRepo "qserve/database/repository/review"
	userRepo "qserve/database/repository/user"
	"qserve/models"
	"qserve/utils"

	"github.com/google/uuid"
)

// CreateReviewRequest carries the fields of a new review or reply.
type CreateReviewRequest struct {
	AuthorID       string `json:"-"`
	ProviderID     string `json:"provider_id"`
	Comment        string `json:"comment"`
	Rating         int    `json:"rating,omitempty"`
	ParentReviewID string `json:"parent_review_id,omitempty"`
}

// ReviewService manages provider reviews, replies and reactions.
type ReviewService interface {
	Create(req CreateReviewRequest) (*models.Review, error)
	Update(reviewID, callerID, comment string) (*models.Review, error)
	Delete(reviewID, callerID string) error
	Like(reviewID, userID string) (*models.Review, error)
	Dislike(reviewID, userID string) (*models.Review, error)
	ListByProvider(providerID string) ([]models.Review, error)
}

// DefaultReviewService is the production implementation.
type DefaultReviewService struct {
	Repo  reviewRepo.ReviewRepository
	Users userRepo.UserRepository
}

// Create posts a review on a provider, or a reply when a parent is given.
// Repeat reviews by the same author are allowed.
func (s *DefaultReviewService) Create(req CreateReviewRequest) (*models.Review, error) {
	if req.Comment == "" {
		return nil, utils.E(utils.CodeValidation, "comment is required")
	}
	if req.AuthorID == req.ProviderID {
		return nil, utils.E(utils.CodeForbidden, "you cannot review yourself")
	}

	provider, err := s.Users.GetByID(req.ProviderID)
	if err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to resolve provider", err)
	}
	if provider == nil || !provider.IsProvider() {
		return nil, utils.E(utils.CodeNotFound, "provider not found")
	}

	if req.ParentReviewID == "" {
		if req.Rating < 1 || req.Rating > 5 {
			return nil, utils.E(utils.CodeValidation, "rating must be between 1 and 5")
		}
	} else {
		parent, err := s.Repo.GetByID(req.ParentReviewID)
		if err != nil {
			return nil, utils.Wrap(utils.CodeInternal, "failed to resolve parent review", err)
		}
		if parent == nil {
			return nil, utils.E(utils.CodeNotFound, "parent review not found")
		}
	}

	rev := models.Review{
		ID:             uuid.New().String(),
		AuthorID:       req.AuthorID,
		ProviderID:     req.ProviderID,
		Comment:        req.Comment,
		Rating:         req.Rating,
		ParentReviewID: req.ParentReviewID,
	}
	if err := s.Repo.Create(&rev); err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to create review", err)
	}

	if req.ParentReviewID != "" {
		if err := s.Repo.AddReply(req.ParentReviewID, rev.ID); err != nil {
			return nil, utils.Wrap(utils.CodeInternal, "failed to attach reply", err)
		}
	}

	return &rev, nil
}

// Update overwrites the comment, preserving the previous one in the edit
// history. Author-only.
func (s *DefaultReviewService) Update(reviewID, callerID, comment string) (*models.Review, error) {
	if comment == "" {
		return nil, utils.E(utils.CodeValidation, "comment is required")
	}

	rev, err := s.getOwned(reviewID, callerID)
	if err != nil {
		return nil, err
	}

	previous := models.ReviewEdit{Comment: rev.Comment, EditedAt: time.Now()}
	if err := s.Repo.UpdateComment(reviewID, comment, previous); err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to update review", err)
	}

	return s.Repo.GetByID(reviewID)
}

// Delete removes the review. Deleting a top-level review cascades to its
// replies. Author-only.
func (s *DefaultReviewService) Delete(reviewID, callerID string) error {
	rev, err := s.getOwned(reviewID, callerID)
	if err != nil {
		return err
	}

	ids := append([]string{rev.ID}, rev.Replies...)
	if err := s.Repo.Delete(ids...); err != nil {
		return utils.Wrap(utils.CodeInternal, "failed to delete review", err)
	}

	// A deleted reply must not linger in its parent's replies list.
	if rev.ParentReviewID != "" {
		if err := s.Repo.RemoveReply(rev.ParentReviewID, rev.ID); err != nil {
			return utils.Wrap(utils.CodeInternal, "failed to detach reply", err)
		}
	}
	return nil
}

// Like toggles the caller's like. Liking removes any standing dislike;
// liking twice removes the like.
func (s *DefaultReviewService) Like(reviewID, userID string) (*models.Review, error) {
	return s.react(reviewID, userID, "likes")
}

// Dislike toggles the caller's dislike, mirror of Like.
func (s *DefaultReviewService) Dislike(reviewID, userID string) (*models.Review, error) {
	return s.react(reviewID, userID, "dislikes")
}

func (s *DefaultReviewService) react(reviewID, userID, field string) (*models.Review, error) {
	rev, err := s.Repo.GetByID(reviewID)
	if err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to fetch review", err)
	}
	if rev == nil {
		return nil, utils.E(utils.CodeNotFound, "review not found")
	}

	current := rev.Likes
	if field == "dislikes" {
		current = rev.Dislikes
	}
	member := false
	for _, id := range current {
		if id == userID {
			member = true
			break
		}
	}

	if member {
		err = s.Repo.Unreact(reviewID, userID, field)
	} else {
		err = s.Repo.React(reviewID, userID, field)
	}
	if err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to update reaction", err)
	}

	return s.Repo.GetByID(reviewID)
}

// ListByProvider lists a provider's top-level reviews.
func (s *DefaultReviewService) ListByProvider(providerID string) ([]models.Review, error) {
	reviews, err := s.Repo.ListByProvider(providerID)
	if err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to list reviews", err)
	}
	return reviews, nil
}

func (s *DefaultReviewService) getOwned(reviewID, callerID string) (*models.Review, error) {
	rev, err := s.Repo.GetByID(reviewID)
	if err != nil {
		return nil, utils.Wrap(utils.CodeInternal, "failed to fetch review", err)
	}
	if rev == nil {
		return nil, utils.E(utils.CodeNotFound, "review not found")
	}
	if rev.AuthorID != callerID {
		return nil, utils.E(utils.CodeForbidden, "only the author may modify this review")
	}
	return rev, nil
}
