package favoriteRepo

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

// MongoFavoriteRepo implements FavoriteRepository using MongoDB.
type MongoFavoriteRepo struct {
	coll *mongo.Collection
}

// NewMongoFavoriteRepo creates a new instance of FavoriteRepository using MongoDB.
func NewMongoFavoriteRepo() FavoriteRepository {
	coll := database.DB().Collection("favorites")
	repo := &MongoFavoriteRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoFavoriteRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "provider_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new favorite document. The compound unique index turns a
// repeat into ErrDuplicate.
func (r *MongoFavoriteRepo) Create(fav *models.Favorite) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fav.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, fav)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create favorite: %w", err)
	}
	return nil
}

// Delete removes the (user, provider) favorite.
func (r *MongoFavoriteRepo) Delete(userID, providerID string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"user_id": userID, "provider_id": providerID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete favorite: %w", err)
	}
	return result.DeletedCount, nil
}

// Exists reports whether the user has favorited the provider.
func (r *MongoFavoriteRepo) Exists(userID, providerID string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"user_id": userID, "provider_id": providerID})
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return count > 0, nil
}

// ListByUser retrieves a user's favorites, newest-first.
func (r *MongoFavoriteRepo) ListByUser(userID string) ([]models.Favorite, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve favorites: %w", err)
	}
	defer cursor.Close(ctx)

	var favs []models.Favorite
	for cursor.Next(ctx) {
		var f models.Favorite
		if err := cursor.Decode(&f); err != nil {
			return nil, fmt.Errorf("failed to decode favorite: %w", err)
		}
		favs = append(favs, f)
	}
	return favs, nil
}
