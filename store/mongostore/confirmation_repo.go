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

// ConfirmationRepo persists client payment confirmations.
type ConfirmationRepo struct {
	db *mongo.Database
}

// Create inserts the confirmation and flips the matched submission to Paid in
// one transaction, so a crash between the two writes cannot leave a confirmed
// payment stuck on a Pending submission. Requires the deployment to be a
// replica set or mongos; standalone mongod does not support transactions.
func (r *ConfirmationRepo) Create(ctx context.Context, conf *models.Confirmation) error {
	session, err := r.db.Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		subs := r.db.Collection(CollSubmissions)

		var sub models.Submission
		err := subs.FindOne(sc, bson.M{"_id": conf.MatchedSubmissionID}).Decode(&sub)
		if err == mongo.ErrNoDocuments {
			return nil, store.ErrNotFound
		}
		if err != nil {
			return nil, err
		}
		if !sub.PaymentStatus.CanTransitionTo(models.StatusPaid) {
			return nil, store.ErrInvalidTransition
		}

		result, err := r.db.Collection(CollConfirmations).InsertOne(sc, conf)
		if err != nil {
			return nil, err
		}
		conf.ID = result.InsertedID.(primitive.ObjectID)

		_, err = subs.UpdateByID(sc, sub.ID, bson.M{"$set": bson.M{"payment_status": models.StatusPaid}})
		if err != nil {
			return nil, err
		}
		return nil, nil
	})
	return err
}

func (r *ConfirmationRepo) List(ctx context.Context) ([]models.Confirmation, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.db.Collection(CollConfirmations).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	confs := []models.Confirmation{}
	if err = cursor.All(ctx, &confs); err != nil {
		return nil, err
	}
	return confs, nil
}
