package mongostore

import (
	"context"
	"time"

	"github.com/aniketgore/Influencer_Payment_Backend.git/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OutboxRepo parks failed webhook deliveries for the retry worker.
type OutboxRepo struct {
	db *mongo.Database
}

func (r *OutboxRepo) Enqueue(ctx context.Context, rec *models.WebhookOutboxRecord) error {
	result, err := r.db.Collection(CollOutbox).InsertOne(ctx, rec)
	if err != nil {
		return err
	}
	rec.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *OutboxRepo) ClaimUndelivered(ctx context.Context, limit, maxAttempts int) ([]models.WebhookOutboxRecord, error) {
	opts := options.Find().
		SetSort(bson.M{"created_at": 1}).
		SetLimit(int64(limit))
	filter := bson.M{
		"delivered": false,
		"attempts":  bson.M{"$lt": maxAttempts},
	}
	cursor, err := r.db.Collection(CollOutbox).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []models.WebhookOutboxRecord{}
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *OutboxRepo) MarkResult(ctx context.Context, id primitive.ObjectID, delivered bool, attemptErr string) error {
	update := bson.M{
		"$inc": bson.M{"attempts": 1},
		"$set": bson.M{
			"delivered":  delivered,
			"last_error": attemptErr,
			"updated_at": time.Now(),
		},
	}
	_, err := r.db.Collection(CollOutbox).UpdateByID(ctx, id, update)
	return err
}
