package transactionRepo

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

// MongoTransactionRepo implements TransactionRepository using MongoDB. It
// holds the QPay account collection as well because a transfer mutates both
// collections inside one session.
type MongoTransactionRepo struct {
	txColl   *mongo.Collection
	qpayColl *mongo.Collection
}

// NewMongoTransactionRepo creates a new instance of TransactionRepository using MongoDB.
func NewMongoTransactionRepo() TransactionRepository {
	db := database.DB()
	repo := &MongoTransactionRepo{
		txColl:   db.Collection("transactions"),
		qpayColl: db.Collection("qpay_accounts"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTransactionRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "transaction_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "sender_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "receiver_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.txColl.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a transaction by its unique ID.
func (r *MongoTransactionRepo) GetByID(id string) (*models.Transaction, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var tx models.Transaction
	if err := r.txColl.FindOne(ctx, bson.M{"id": id}).Decode(&tx); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch transaction with id %s: %w", id, err)
	}
	return &tx, nil
}

// History retrieves the user's transactions newest-first.
func (r *MongoTransactionRepo) History(userID string, filter models.TransactionFilter, offset, limit int64) ([]models.Transaction, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	var query bson.M
	switch filter.Direction {
	case "sent":
		query = bson.M{"sender_id": userID}
	case "received":
		query = bson.M{"receiver_id": userID}
	default:
		query = bson.M{"$or": bson.A{
			bson.M{"sender_id": userID},
			bson.M{"receiver_id": userID},
		}}
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(offset).
		SetLimit(limit)

	cursor, err := r.txColl.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve transactions: %w", err)
	}
	defer cursor.Close(ctx)

	var txs []models.Transaction
	for cursor.Next(ctx) {
		var tx models.Transaction
		if err := cursor.Decode(&tx); err != nil {
			return nil, fmt.Errorf("failed to decode transaction: %w", err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}
