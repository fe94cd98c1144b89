package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Brand maps a brand to the email of the brand-side contact who is notified
// of payment events. Stored in the brand_owner_map collection; the backend
// treats it as read-only reference data maintained by the seeder.
type Brand struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BrandName  string             `bson:"brand_name" json:"brand_name"` // Unique, indexed for lookups
	OwnerEmail string             `bson:"owner_email" json:"owner_email"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}

// Influencer is one roster entry: an Instagram handle attached to a brand.
// Stored in the influencer_map_list collection, also read-only reference data.
type Influencer struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	InstagramHandle string             `bson:"instagram_handle" json:"instagram_handle"`
	BrandName       string             `bson:"brand_name" json:"brand_name"`
}
