// Package store defines the repository interfaces the workflow and handlers
// are written against. Two backends implement them: mongostore for production
// and memstore for tests and local development.
package store

import (
	"context"
	"errors"

	"github.com/aniketgore/Influencer_Payment_Backend.git/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNotFound is returned when a referenced entity does not exist. For
	// read paths this is a valid outcome, not an infrastructure fault.
	ErrNotFound = errors.New("store: not found")

	// ErrInvalidTransition is returned when a status update would move a
	// record backward in its lifecycle.
	ErrInvalidTransition = errors.New("store: backward status transition")

	// ErrDuplicatePaymentID is returned when an insert would violate the
	// payment_id uniqueness invariant.
	ErrDuplicatePaymentID = errors.New("store: duplicate payment id")
)

// Directory is the read-only brand/influencer reference data plus the
// pending-payment ledger.
type Directory interface {
	// ListBrands returns all brand names in lexicographic order.
	ListBrands(ctx context.Context) ([]string, error)

	// ListInfluencers returns the roster for an exact brand match. An empty
	// brand yields an empty result without touching the backend.
	ListInfluencers(ctx context.Context, brand string) ([]models.Influencer, error)

	// ListPendingPayments returns ledger entries with status Pending for the
	// handle, optionally narrowed to one brand.
	ListPendingPayments(ctx context.Context, handle, brand string) ([]models.PendingPayment, error)

	// ResolveOwnerEmail looks up the brand contact. ErrNotFound means the
	// brand has no configured owner, which blocks submission creation.
	ResolveOwnerEmail(ctx context.Context, brand string) (string, error)

	// MarkPendingStatus advances a ledger entry's status. Backward moves
	// return ErrInvalidTransition.
	MarkPendingStatus(ctx context.Context, paymentID string, status models.PaymentStatus) error
}

// Submissions persists influencer payment requests.
type Submissions interface {
	Insert(ctx context.Context, sub *models.Submission) error
	FindByPaymentID(ctx context.Context, paymentID string) (*models.Submission, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Submission, error)

	// List returns all submissions, newest first.
	List(ctx context.Context) ([]models.Submission, error)
}

// Confirmations persists client proof-of-payment records.
type Confirmations interface {
	// Create inserts the confirmation and flips the matched submission's
	// payment_status to Paid as one atomic write. Nothing is written when the
	// submission is missing or already Paid.
	Create(ctx context.Context, conf *models.Confirmation) error

	// List returns all confirmations, newest first.
	List(ctx context.Context) ([]models.Confirmation, error)
}

// Outbox holds webhook deliveries awaiting retry.
type Outbox interface {
	Enqueue(ctx context.Context, rec *models.WebhookOutboxRecord) error

	// ClaimUndelivered returns up to limit records still awaiting delivery
	// with fewer than maxAttempts attempts, oldest first. Records at the
	// attempt cap stay in the collection for manual reconciliation.
	ClaimUndelivered(ctx context.Context, limit, maxAttempts int) ([]models.WebhookOutboxRecord, error)

	// MarkResult records the outcome of a delivery attempt.
	MarkResult(ctx context.Context, id primitive.ObjectID, delivered bool, attemptErr string) error
}

// Stores bundles the repositories a fully wired application needs.
type Stores struct {
	Directory     Directory
	Submissions   Submissions
	Confirmations Confirmations
	Outbox        Outbox
}
