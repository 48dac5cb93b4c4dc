package reviewRepo

import (
	"context"
	"fmt"
	"time"

	"qserve/database"
	"qserve/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoReviewRepo implements ReviewRepository using MongoDB.
type MongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo creates a new instance of ReviewRepository using MongoDB.
func NewMongoReviewRepo() ReviewRepository {
	coll := database.DB().Collection("reviews")
	repo := &MongoReviewRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoReviewRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "provider_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new review document.
func (r *MongoReviewRepo) Create(rev *models.Review) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	rev.CreatedAt = now
	rev.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, rev)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// GetByID retrieves a review by its unique ID.
func (r *MongoReviewRepo) GetByID(id string) (*models.Review, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var rev models.Review
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&rev); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch review with id %s: %w", id, err)
	}
	return &rev, nil
}

// UpdateComment overwrites the comment and records the previous one.
func (r *MongoReviewRepo) UpdateComment(id, comment string, previous models.ReviewEdit) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"comment":    comment,
			"is_edited":  true,
			"updated_at": time.Now(),
		},
		"$push": bson.M{"edit_history": previous},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update review %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("review with id %s not found", id)
	}
	return nil
}

// AddReply appends a reply id to the parent's replies list.
func (r *MongoReviewRepo) AddReply(parentID, replyID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$addToSet": bson.M{"replies": replyID},
		"$set":      bson.M{"updated_at": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": parentID}, update)
	if err != nil {
		return fmt.Errorf("failed to add reply to review %s: %w", parentID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("review with id %s not found", parentID)
	}
	return nil
}

// RemoveReply pulls a reply id from the parent's replies list.
func (r *MongoReviewRepo) RemoveReply(parentID, replyID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$pull": bson.M{"replies": replyID},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": parentID}, update); err != nil {
		return fmt.Errorf("failed to remove reply from review %s: %w", parentID, err)
	}
	return nil
}

// Delete removes the given reviews.
func (r *MongoReviewRepo) Delete(ids ...string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.DeleteMany(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return fmt.Errorf("failed to delete reviews: %w", err)
	}
	return nil
}

// React toggles the user into one reaction set and out of the other in a
// single atomic update.
func (r *MongoReviewRepo) React(id, userID, field string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opposite := "dislikes"
	if field == "dislikes" {
		opposite = "likes"
	}

	update := bson.M{
		"$addToSet": bson.M{field: userID},
		"$pull":     bson.M{opposite: userID},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to react to review %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("review with id %s not found", id)
	}
	return nil
}

// Unreact removes the user from the given reaction set.
func (r *MongoReviewRepo) Unreact(id, userID, field string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$pull": bson.M{field: userID}})
	if err != nil {
		return fmt.Errorf("failed to remove reaction from review %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("review with id %s not found", id)
	}
	return nil
}

// ListByProvider retrieves a provider's top-level reviews, newest-first.
func (r *MongoReviewRepo) ListByProvider(providerID string) ([]models.Review, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"provider_id":      providerID,
		"parent_review_id": bson.M{"$exists": false},
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	for cursor.Next(ctx) {
		var rev models.Review
		if err := cursor.Decode(&rev); err != nil {
			return nil, fmt.Errorf("failed to decode review: %w", err)
		}
		reviews = append(reviews, rev)
	}
	return reviews, nil
}
