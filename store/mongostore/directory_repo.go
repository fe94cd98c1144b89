package mongostore

import (
	"context"

	"github.com/aniketgore/Influencer_Payment_Backend.git/models"
	"github.com/aniketgore/Influencer_Payment_Backend.git/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DirectoryRepo serves the read-only reference data and the pending ledger.
type DirectoryRepo struct {
	db *mongo.Database
}

func (r *DirectoryRepo) ListBrands(ctx context.Context) ([]string, error) {
	coll := r.db.Collection(CollBrands)

	opts := options.Find().
		SetProjection(bson.M{"brand_name": 1, "_id": 0}).
		SetSort(bson.M{"brand_name": 1})
	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		BrandName string `bson:"brand_name"`
	}
	if err = cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(results))
	for _, res := range results {
		names = append(names, res.BrandName)
	}
	return names, nil
}

func (r *DirectoryRepo) ListInfluencers(ctx context.Context, brand string) ([]models.Influencer, error) {
	if brand == "" {
		return []models.Influencer{}, nil
	}

	cursor, err := r.db.Collection(CollInfluencers).Find(ctx, bson.M{"brand_name": brand})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	influencers := []models.Influencer{}
	if err = cursor.All(ctx, &influencers); err != nil {
		return nil, err
	}
	return influencers, nil
}

func (r *DirectoryRepo) ListPendingPayments(ctx context.Context, handle, brand string) ([]models.PendingPayment, error) {
	if handle == "" {
		return []models.PendingPayment{}, nil
	}

	filter := bson.M{
		"instagram_handle": handle,
		"status":           models.StatusPending,
	}
	if brand != "" {
		filter["brand_name"] = brand
	}

	cursor, err := r.db.Collection(CollPending).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	payments := []models.PendingPayment{}
	if err = cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *DirectoryRepo) ResolveOwnerEmail(ctx context.Context, brand string) (string, error) {
	if brand == "" {
		return "", store.ErrNotFound
	}

	var result struct {
		OwnerEmail string `bson:"owner_email"`
	}
	opts := options.FindOne().SetProjection(bson.M{"owner_email": 1, "_id": 0})
	err := r.db.Collection(CollBrands).FindOne(ctx, bson.M{"brand_name": brand}, opts).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return "", store.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	if result.OwnerEmail == "" {
		// A row without a contact is the same outcome as no row at all.
		return "", store.ErrNotFound
	}
	return result.OwnerEmail, nil
}

func (r *DirectoryRepo) MarkPendingStatus(ctx context.Context, paymentID string, status models.PaymentStatus) error {
	coll := r.db.Collection(CollPending)

	filter := bson.M{"payment_id": paymentID}
	for k, v := range statusFilter("status", status) {
		filter[k] = v
	}
	result, err := coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if result.MatchedCount > 0 {
		return nil
	}

	// Nothing matched: either the entry is unknown or it already moved past
	// the requested status.
	count, err := coll.CountDocuments(ctx, bson.M{"payment_id": paymentID}, options.Count().SetLimit(1))
	if err != nil {
		return err
	}
	if count == 0 {
		return store.ErrNotFound
	}
	return store.ErrInvalidTransition
}
