package mongostore

import (
	"context"

	"github.com/aniketgore/Influencer_Payment_Backend.git/models"
	"github.com/aniketgore/Influencer_Payment_Backend.git/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SubmissionRepo persists influencer payment requests. A unique index on
// payment_id (ensured at connect time) backs the uniqueness invariant.
type SubmissionRepo struct {
	db *mongo.Database
}

func (r *SubmissionRepo) Insert(ctx context.Context, sub *models.Submission) error {
	result, err := r.db.Collection(CollSubmissions).InsertOne(ctx, sub)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return store.ErrDuplicatePaymentID
		}
		return err
	}
	sub.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *SubmissionRepo) FindByPaymentID(ctx context.Context, paymentID string) (*models.Submission, error) {
	var sub models.Submission
	err := r.db.Collection(CollSubmissions).FindOne(ctx, bson.M{"payment_id": paymentID}).Decode(&sub)
	if err == mongo.ErrNoDocuments {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *SubmissionRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Submission, error) {
	if len(ids) == 0 {
		return []models.Submission{}, nil
	}

	cursor, err := r.db.Collection(CollSubmissions).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	subs := []models.Submission{}
	if err = cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *SubmissionRepo) List(ctx context.Context) ([]models.Submission, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.db.Collection(CollSubmissions).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	subs := []models.Submission{}
	if err = cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}
