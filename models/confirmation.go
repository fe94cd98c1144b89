package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ConfirmationStatus is the only status a confirmation is ever written with.
const ConfirmationStatus = "Confirmed"

// Confirmation is a client/brand proof-of-payment record in the
// client_payments collection. It references exactly one submission; creating
// it is what flips that submission to Paid.
type Confirmation struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PaymentID           string             `bson:"payment_id" json:"payment_id"`
	ScreenshotURL       string             `bson:"screenshot_url" json:"screenshot_url"`
	MatchedSubmissionID primitive.ObjectID `bson:"matched_submission_id" json:"matched_submission_id"`
	Status              string             `bson:"status" json:"status"`
	SentToInfluencer    bool               `bson:"sent_to_influencer" json:"sent_to_influencer"`
	CreatedAt           time.Time          `bson:"created_at" json:"created_at"`
}
