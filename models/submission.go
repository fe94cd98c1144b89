package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment method variants accepted on the influencer form.
const (
	MethodBank = "bank"
	MethodUPI  = "upi"
)

// Submission is an influencer's payment request, stored in the
// influencer_submissions collection. payment_id is unique and immutable once
// assigned; payment_status only ever moves forward.
type Submission struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PaymentID       string             `bson:"payment_id" json:"payment_id"`
	Brand           string             `bson:"brand" json:"brand"`
	InfluencerName  string             `bson:"influencer_name" json:"influencer_name"`
	InstagramPost   string             `bson:"instagram_post" json:"instagram_post"`
	Email           string             `bson:"email" json:"email"`
	PaymentMethod   string             `bson:"payment_method" json:"payment_method"`
	UpiID           string             `bson:"upi_id,omitempty" json:"upi_id,omitempty"`
	UpiQr           string             `bson:"upi_qr,omitempty" json:"upi_qr,omitempty"`
	BankAccountName string             `bson:"bank_account_name,omitempty" json:"bank_account_name,omitempty"`
	BankAccountNo   string             `bson:"bank_account_no,omitempty" json:"bank_account_no,omitempty"`
	IFSC            string             `bson:"ifsc,omitempty" json:"ifsc,omitempty"`
	BankName        string             `bson:"bank_name,omitempty" json:"bank_name,omitempty"`
	Amount          float64            `bson:"amount" json:"amount"`
	PaymentStatus   PaymentStatus      `bson:"payment_status" json:"payment_status"`
	IsCollaboration bool               `bson:"is_collaboration" json:"is_collaboration"`
	OwnerEmail      string             `bson:"owner_email" json:"owner_email"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
}

// SubmissionPayload is the influencer form as the frontend posts it
// (multipart, so the QR file arrives separately from these fields).
type SubmissionPayload struct {
	Brand             string  `form:"brand"`
	InstagramHandle   string  `form:"instagramHandle"`
	InstagramLink     string  `form:"instagramLink"`
	Email             string  `form:"email"`
	PaymentMethod     string  `form:"paymentMethod"`
	PaymentID         string  `form:"paymentId"` // Chosen pending-payment id, when the influencer picked one
	Amount            float64 `form:"amount"`
	AccountHolderName string  `form:"accountHolderName"`
	AccountNumber     string  `form:"accountNumber"`
	IFSCCode          string  `form:"ifscCode"`
	BankName          string  `form:"bankName"`
	UpiID             string  `form:"upiId"`
	IsCollaboration   bool    `form:"isCollaboration"`
}
