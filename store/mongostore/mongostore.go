// Package mongostore implements the store interfaces over MongoDB. Collection
// names match the tables of the hosted-database deployment this backend
// replaces, so existing data remains readable.
package mongostore

import (
	"github.com/aniketgore/Influencer_Payment_Backend.git/models"
	"github.com/aniketgore/Influencer_Payment_Backend.git/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	CollBrands        = "brand_owner_map"
	CollInfluencers   = "influencer_map_list"
	CollPending       = "influencer_payments"
	CollSubmissions   = "influencer_submissions"
	CollConfirmations = "client_payments"
	CollOutbox        = "webhook_outbox"
)

// NewStores wires every repository onto db.
func NewStores(db *mongo.Database) store.Stores {
	return store.Stores{
		Directory:     &DirectoryRepo{db: db},
		Submissions:   &SubmissionRepo{db: db},
		Confirmations: &ConfirmationRepo{db: db},
		Outbox:        &OutboxRepo{db: db},
	}
}

// statusFilter matches only records that may still move forward to next.
func statusFilter(field string, next models.PaymentStatus) bson.M {
	return bson.M{field: bson.M{"$in": models.StatusesBelow(next)}}
}
