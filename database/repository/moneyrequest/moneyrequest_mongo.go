package moneyRequestRepo

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

// MongoMoneyRequestRepo implements MoneyRequestRepository using MongoDB.
type MongoMoneyRequestRepo struct {
	coll *mongo.Collection
}

// NewMongoMoneyRequestRepo creates a new instance of MoneyRequestRepository using MongoDB.
func NewMongoMoneyRequestRepo() MoneyRequestRepository {
	coll := database.DB().Collection("money_requests")
	repo := &MongoMoneyRequestRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoMoneyRequestRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "booking_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new money request document.
func (r *MongoMoneyRequestRepo) Create(req *models.MoneyRequest) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to create money request: %w", err)
	}
	return nil
}

// GetByID retrieves a money request by its unique ID.
func (r *MongoMoneyRequestRepo) GetByID(id string) (*models.MoneyRequest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var req models.MoneyRequest
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&req); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch money request with id %s: %w", id, err)
	}
	return &req, nil
}

// GetActiveByBooking retrieves the outstanding request for a booking.
// Cancelled requests do not block a new one.
func (r *MongoMoneyRequestRepo) GetActiveByBooking(bookingID string) (*models.MoneyRequest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"booking_id": bookingID,
		"status":     bson.M{"$ne": models.MoneyRequestCancelled},
	}

	var req models.MoneyRequest
	if err := r.coll.FindOne(ctx, filter).Decode(&req); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch money request for booking %s: %w", bookingID, err)
	}
	return &req, nil
}

// SetStatus updates the request status, recording paidDate when provided.
func (r *MongoMoneyRequestRepo) SetStatus(id, status string, paidDate *time.Time) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{"status": status}
	if paidDate != nil {
		set["paid_date"] = *paidDate
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update money request %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("money request with id %s not found", id)
	}
	return nil
}

// ListByUser retrieves requests where the user is provider or customer.
func (r *MongoMoneyRequestRepo) ListByUser(userID string) ([]models.MoneyRequest, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"$or": bson.A{
		bson.M{"provider_id": userID},
		bson.M{"customer_id": userID},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "request_date", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve money requests: %w", err)
	}
	defer cursor.Close(ctx)

	var reqs []models.MoneyRequest
	for cursor.Next(ctx) {
		var req models.MoneyRequest
		if err := cursor.Decode(&req); err != nil {
			return nil, fmt.Errorf("failed to decode money request: %w", err)
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}
