// Package memstore is an in-memory implementation of the store interfaces.
// It backs the tests and is handy for running the server without a database;
// it mirrors the semantics of mongostore, including forward-only status
// transitions and the atomic confirmation write.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/aniketgore/Influencer_Payment_Backend.git/models"
	"github.com/aniketgore/Influencer_Payment_Backend.git/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store implements store.Directory, store.Submissions, store.Confirmations
// and store.Outbox over mutex-guarded slices.
type Store struct {
	mu            sync.Mutex
	brands        []models.Brand
	influencers   []models.Influencer
	pending       []models.PendingPayment
	submissions   []models.Submission
	confirmations []models.Confirmation
	outbox        []models.WebhookOutboxRecord
}

func New() *Store {
	return &Store{}
}

// Stores returns the store bundle with every repository backed by s. The
// confirmations view is a wrapper because its List signature differs from the
// submission one.
func (s *Store) Stores() store.Stores {
	return store.Stores{
		Directory:     s,
		Submissions:   s,
		Confirmations: confirmations{s},
		Outbox:        s,
	}
}

type confirmations struct{ s *Store }

func (c confirmations) Create(ctx context.Context, conf *models.Confirmation) error {
	return c.s.Create(ctx, conf)
}

func (c confirmations) List(ctx context.Context) ([]models.Confirmation, error) {
	return c.s.ListConfirmations(ctx)
}

// SeedBrand registers a brand with its owner contact.
func (s *Store) SeedBrand(name, ownerEmail string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.brands = append(s.brands, models.Brand{
		ID:         primitive.NewObjectID(),
		BrandName:  name,
		OwnerEmail: ownerEmail,
		CreatedAt:  time.Now(),
	})
}

// SeedInfluencer adds a roster entry.
func (s *Store) SeedInfluencer(handle, brand string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.influencers = append(s.influencers, models.Influencer{
		ID:              primitive.NewObjectID(),
		InstagramHandle: handle,
		BrandName:       brand,
	})
}

// SeedPendingPayment adds a ledger entry awaiting a submission.
func (s *Store) SeedPendingPayment(paymentID, handle, brand string, amount float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, models.PendingPayment{
		ID:              primitive.NewObjectID(),
		PaymentID:       paymentID,
		InstagramHandle: handle,
		BrandName:       brand,
		Amount:          amount,
		Status:          models.StatusPending,
		CreatedAt:       time.Now(),
	})
}

func (s *Store) ListBrands(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.brands))
	for _, b := range s.brands {
		names = append(names, b.BrandName)
	}
	sort.Strings(names)
	return names, nil
}

func (s *Store) ListInfluencers(ctx context.Context, brand string) ([]models.Influencer, error) {
	if brand == "" {
		return []models.Influencer{}, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Influencer{}
	for _, inf := range s.influencers {
		if inf.BrandName == brand {
			out = append(out, inf)
		}
	}
	return out, nil
}

func (s *Store) ListPendingPayments(ctx context.Context, handle, brand string) ([]models.PendingPayment, error) {
	if handle == "" {
		return []models.PendingPayment{}, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.PendingPayment{}
	for _, p := range s.pending {
		if p.InstagramHandle != handle || p.Status != models.StatusPending {
			continue
		}
		if brand != "" && p.BrandName != brand {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *Store) ResolveOwnerEmail(ctx context.Context, brand string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.brands {
		if b.BrandName == brand && b.OwnerEmail != "" {
			return b.OwnerEmail, nil
		}
	}
	return "", store.ErrNotFound
}

func (s *Store) MarkPendingStatus(ctx context.Context, paymentID string, status models.PaymentStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.pending {
		if s.pending[i].PaymentID != paymentID {
			continue
		}
		if !s.pending[i].Status.CanTransitionTo(status) {
			return store.ErrInvalidTransition
		}
		s.pending[i].Status = status
		return nil
	}
	return store.ErrNotFound
}

func (s *Store) Insert(ctx context.Context, sub *models.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.submissions {
		if existing.PaymentID == sub.PaymentID {
			return store.ErrDuplicatePaymentID
		}
	}
	if sub.ID.IsZero() {
		sub.ID = primitive.NewObjectID()
	}
	s.submissions = append(s.submissions, *sub)
	return nil
}

func (s *Store) FindByPaymentID(ctx context.Context, paymentID string) (*models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.submissions {
		if s.submissions[i].PaymentID == paymentID {
			sub := s.submissions[i]
			return &sub, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wanted := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	out := []models.Submission{}
	for _, sub := range s.submissions {
		if wanted[sub.ID] {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (s *Store) List(ctx context.Context) ([]models.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Submission, len(s.submissions))
	copy(out, s.submissions)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) Create(ctx context.Context, conf *models.Confirmation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.submissions {
		if s.submissions[i].ID != conf.MatchedSubmissionID {
			continue
		}
		if !s.submissions[i].PaymentStatus.CanTransitionTo(models.StatusPaid) {
			return store.ErrInvalidTransition
		}
		if conf.ID.IsZero() {
			conf.ID = primitive.NewObjectID()
		}
		// Single critical section stands in for the mongo transaction: the
		// insert and the status flip are observed together or not at all.
		s.confirmations = append(s.confirmations, *conf)
		s.submissions[i].PaymentStatus = models.StatusPaid
		return nil
	}
	return store.ErrNotFound
}

func (s *Store) ListConfirmations(ctx context.Context) ([]models.Confirmation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Confirmation, len(s.confirmations))
	copy(out, s.confirmations)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) Enqueue(ctx context.Context, rec *models.WebhookOutboxRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec.ID.IsZero() {
		rec.ID = primitive.NewObjectID()
	}
	s.outbox = append(s.outbox, *rec)
	return nil
}

func (s *Store) ClaimUndelivered(ctx context.Context, limit, maxAttempts int) ([]models.WebhookOutboxRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.WebhookOutboxRecord{}
	for _, rec := range s.outbox {
		if rec.Delivered || rec.Attempts >= maxAttempts {
			continue
		}
		out = append(out, rec)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (s *Store) MarkResult(ctx context.Context, id primitive.ObjectID, delivered bool, attemptErr string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.outbox {
		if s.outbox[i].ID != id {
			continue
		}
		s.outbox[i].Attempts++
		s.outbox[i].Delivered = delivered
		s.outbox[i].LastError = strings.TrimSpace(attemptErr)
		s.outbox[i].UpdatedAt = time.Now()
		return nil
	}
	return store.ErrNotFound
}
