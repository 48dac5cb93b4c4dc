package messageRepo

import (
	"context"
	"fmt"
	"time"

	"qserve/database"
	"qserve/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoMessageRepo implements MessageRepository using MongoDB. Messages and
// the denormalized inbox summaries live in two collections.
type MongoMessageRepo struct {
	msgColl     *mongo.Collection
	summaryColl *mongo.Collection
}

// NewMongoMessageRepo creates a new instance of MessageRepository using MongoDB.
func NewMongoMessageRepo() MessageRepository {
	db := database.DB()
	repo := &MongoMessageRepo{
		msgColl:     db.Collection("messages"),
		summaryColl: db.Collection("conversation_summaries"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoMessageRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	msgIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "conversation_id", Value: 1}, {Key: "created_at", Value: 1}}},
	}
	if _, err := r.msgColl.Indexes().CreateMany(ctx, msgIndexes); err != nil {
		return fmt.Errorf("failed to create message indexes: %w", err)
	}

	summaryIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "owner_id", Value: 1}, {Key: "counterpart_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "updated_at", Value: -1}}},
	}
	if _, err := r.summaryColl.Indexes().CreateMany(ctx, summaryIndexes); err != nil {
		return fmt.Errorf("failed to create summary indexes: %w", err)
	}
	return nil
}

// InsertMessage persists a new message document.
func (r *MongoMessageRepo) InsertMessage(m *models.Message) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.msgColl.InsertOne(ctx, m)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

// ListByConversation retrieves a conversation's messages oldest-first.
func (r *MongoMessageRepo) ListByConversation(conversationID string) ([]models.Message, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.msgColl.Find(ctx, bson.M{"conversation_id": conversationID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve messages: %w", err)
	}
	defer cursor.Close(ctx)

	var msgs []models.Message
	for cursor.Next(ctx) {
		var m models.Message
		if err := cursor.Decode(&m); err != nil {
			return nil, fmt.Errorf("failed to decode message: %w", err)
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

// MarkRead bulk-flags unread messages addressed to the reader.
func (r *MongoMessageRepo) MarkRead(conversationID, readerID string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"conversation_id": conversationID,
		"receiver_id":     readerID,
		"is_read":         false,
	}
	result, err := r.msgColl.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"is_read": true}})
	if err != nil {
		return 0, fmt.Errorf("failed to mark messages read: %w", err)
	}
	return result.ModifiedCount, nil
}

// UpsertSummary creates or refreshes one participant's inbox row.
func (r *MongoMessageRepo) UpsertSummary(ownerID, counterpartID, conversationID string, last models.LastMessage, unreadDelta int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"owner_id": ownerID, "counterpart_id": counterpartID}
	update := bson.M{
		"$set": bson.M{
			"conversation_id": conversationID,
			"last_message":    last,
			"updated_at":      time.Now(),
		},
		"$inc":         bson.M{"unread_count": unreadDelta},
		"$setOnInsert": bson.M{"id": uuid.New().String()},
	}

	_, err := r.summaryColl.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert conversation summary: %w", err)
	}
	return nil
}

// ResetUnread zeroes the unread count on the owner's inbox row.
func (r *MongoMessageRepo) ResetUnread(ownerID, conversationID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"owner_id": ownerID, "conversation_id": conversationID}
	_, err := r.summaryColl.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"unread_count": 0}})
	if err != nil {
		return fmt.Errorf("failed to reset unread count: %w", err)
	}
	return nil
}

// ListSummaries retrieves the owner's inbox rows, most recent first.
func (r *MongoMessageRepo) ListSummaries(ownerID string) ([]models.ConversationSummary, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	cursor, err := r.summaryColl.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve conversation summaries: %w", err)
	}
	defer cursor.Close(ctx)

	var summaries []models.ConversationSummary
	for cursor.Next(ctx) {
		var s models.ConversationSummary
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode conversation summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}
