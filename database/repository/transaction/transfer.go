package transactionRepo

import (
	"context"
	"fmt"
	"time"

	"qserve/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ExecuteTransfer runs the record insert, sender debit and receiver credit
// inside a single Mongo session transaction. A failed debit or credit aborts
// the whole unit, so no pending record is ever left behind.
func (r *MongoTransactionRepo) ExecuteTransfer(ctx context.Context, tx *models.Transaction) error {
	client := r.txColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		now := time.Now()
		tx.Status = models.TransactionCompleted
		tx.CreatedAt = now
		tx.CompletedAt = &now

		if _, err := r.txColl.InsertOne(sc, tx); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrDuplicateTransactionID
			}
			return fmt.Errorf("insert transaction failed: %w", err)
		}

		debit := bson.M{
			"$inc": bson.M{"balance": -tx.Amount},
			"$set": bson.M{"updated_at": now},
		}
		res, err := r.qpayColl.UpdateOne(sc,
			bson.M{"owner_id": tx.SenderID, "balance": bson.M{"$gte": tx.Amount}}, debit)
		if err != nil {
			return fmt.Errorf("debit sender failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return ErrInsufficientFunds
		}

		credit := bson.M{
			"$inc": bson.M{"balance": tx.Amount},
			"$set": bson.M{"updated_at": now},
		}
		res, err = r.qpayColl.UpdateOne(sc, bson.M{"owner_id": tx.ReceiverID}, credit)
		if err != nil {
			return fmt.Errorf("credit receiver failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("qpay account for receiver %s not found", tx.ReceiverID)
		}

		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return err
	}

	return nil
}
