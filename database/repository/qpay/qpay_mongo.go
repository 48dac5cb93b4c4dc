package qpayRepo

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

// MongoQPayRepo implements QPayRepository using MongoDB.
type MongoQPayRepo struct {
	coll *mongo.Collection
}

// NewMongoQPayRepo creates a new instance of QPayRepository using MongoDB.
func NewMongoQPayRepo() QPayRepository {
	coll := database.DB().Collection("qpay_accounts")
	repo := &MongoQPayRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoQPayRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "owner_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new QPay account document.
func (r *MongoQPayRepo) Create(acct *models.QPayAccount) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	acct.CreatedAt = now
	acct.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, acct)
	if err != nil {
		return fmt.Errorf("failed to create qpay account: %w", err)
	}
	return nil
}

// GetByOwner retrieves the QPay account of a user.
func (r *MongoQPayRepo) GetByOwner(ownerID string) (*models.QPayAccount, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var acct models.QPayAccount
	if err := r.coll.FindOne(ctx, bson.M{"owner_id": ownerID}).Decode(&acct); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch qpay account for owner %s: %w", ownerID, err)
	}
	return &acct, nil
}

// Credit atomically adds amount to the owner's balance.
func (r *MongoQPayRepo) Credit(ownerID string, amount float64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$inc": bson.M{"balance": amount},
		"$set": bson.M{"updated_at": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"owner_id": ownerID}, update)
	if err != nil {
		return fmt.Errorf("failed to credit qpay account for owner %s: %w", ownerID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("qpay account for owner %s not found", ownerID)
	}
	return nil
}

// Debit atomically subtracts amount. The balance filter makes the
// insufficient-funds check and the write a single operation.
func (r *MongoQPayRepo) Debit(ownerID string, amount float64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"owner_id": ownerID, "balance": bson.M{"$gte": amount}}
	update := bson.M{
		"$inc": bson.M{"balance": -amount},
		"$set": bson.M{"updated_at": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to debit qpay account for owner %s: %w", ownerID, err)
	}
	if result.MatchedCount == 0 {
		return ErrInsufficientFunds
	}
	return nil
}

// Update applies a $set document to the owner's account.
func (r *MongoQPayRepo) Update(ownerID string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updated_at"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"owner_id": ownerID}, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update qpay account for owner %s: %w", ownerID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("qpay account for owner %s not found", ownerID)
	}
	return nil
}
