package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PendingPayment is a ledger entry in the influencer_payments collection: an
// amount owed to an influencer for a brand collaboration, awaiting a
// submission. Its payment_id is assigned when the entry is created and is
// reused by the submission that settles it.
type PendingPayment struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PaymentID       string             `bson:"payment_id" json:"payment_id"`
	InstagramHandle string             `bson:"instagram_handle" json:"instagram_handle"`
	BrandName       string             `bson:"brand_name" json:"brand_name"`
	Amount          float64            `bson:"amount" json:"amount"`
	Status          PaymentStatus      `bson:"status" json:"status"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
}
