package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WebhookOutboxRecord is a webhook delivery that failed and was parked in the
// webhook_outbox collection for the background worker to retry. Only written
// when WEBHOOK_DELIVERY=outbox; the default best-effort mode drops failures
// after logging them.
type WebhookOutboxRecord struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DeliveryID string             `bson:"delivery_id" json:"delivery_id"`
	URL        string             `bson:"url" json:"url"`
	Payload    []byte             `bson:"payload" json:"payload"`
	Attempts   int                `bson:"attempts" json:"attempts"`
	LastError  string             `bson:"last_error,omitempty" json:"last_error,omitempty"`
	Delivered  bool               `bson:"delivered" json:"delivered"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}
