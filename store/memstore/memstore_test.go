package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/aniketgore/Influencer_Payment_Backend.git/models"
	"github.com/aniketgore/Influencer_Payment_Backend.git/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestListBrandsSorted(t *testing.T) {
	s := New()
	s.SeedBrand("Nike", "a@example.com")
	s.SeedBrand("Anand Home Store", "b@example.com")
	s.SeedBrand("Gymshark", "c@example.com")

	names, err := s.ListBrands(context.Background())
	if err != nil {
		t.Fatalf("ListBrands: %v", err)
	}
	want := []string{"Anand Home Store", "Gymshark", "Nike"}
	if len(names) != len(want) {
		t.Fatalf("got %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %s, want %s", i, names[i], want[i])
		}
	}
}

func TestListInfluencers(t *testing.T) {
	ctx := context.Background()
	s := New()
	s.SeedBrand("Nike", "a@example.com")
	s.SeedInfluencer("alice", "Nike")

	got, err := s.ListInfluencers(ctx, "Nike")
	if err != nil || len(got) != 1 || got[0].InstagramHandle != "alice" {
		t.Errorf("got %+v, %v", got, err)
	}

	// A brand with no roster entries is an empty list, not an error.
	got, err = s.ListInfluencers(ctx, "Adidas")
	if err != nil || len(got) != 0 {
		t.Errorf("got %+v, %v", got, err)
	}

	got, _ = s.ListInfluencers(ctx, "")
	if len(got) != 0 {
		t.Errorf("empty brand should return nothing, got %+v", got)
	}
}

func TestListPendingPaymentsFilters(t *testing.T) {
	ctx := context.Background()
	s := New()
	s.SeedPendingPayment("PAY-10234", "alice", "Nike", 500)
	s.SeedPendingPayment("PAY-20567", "alice", "Gymshark", 900)
	s.SeedPendingPayment("PAY-30111", "bob", "Nike", 250)

	t.Run("by handle and brand", func(t *testing.T) {
		got, _ := s.ListPendingPayments(ctx, "alice", "Nike")
		if len(got) != 1 || got[0].PaymentID != "PAY-10234" {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("by handle only", func(t *testing.T) {
		got, _ := s.ListPendingPayments(ctx, "alice", "")
		if len(got) != 2 {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("empty handle returns nothing", func(t *testing.T) {
		got, _ := s.ListPendingPayments(ctx, "", "Nike")
		if len(got) != 0 {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("non-pending entries are hidden", func(t *testing.T) {
		if err := s.MarkPendingStatus(ctx, "PAY-10234", models.StatusProcessing); err != nil {
			t.Fatalf("MarkPendingStatus: %v", err)
		}
		got, _ := s.ListPendingPayments(ctx, "alice", "Nike")
		if len(got) != 0 {
			t.Errorf("got %+v", got)
		}
	})
}

func TestMarkPendingStatusForwardOnly(t *testing.T) {
	ctx := context.Background()
	s := New()
	s.SeedPendingPayment("PAY-10234", "alice", "Nike", 500)

	if err := s.MarkPendingStatus(ctx, "PAY-10234", models.StatusProcessing); err != nil {
		t.Fatalf("Pending -> Processing: %v", err)
	}
	if err := s.MarkPendingStatus(ctx, "PAY-10234", models.StatusPending); err != store.ErrInvalidTransition {
		t.Errorf("Processing -> Pending should be rejected, got %v", err)
	}
	if err := s.MarkPendingStatus(ctx, "PAY-10234", models.StatusPaid); err != nil {
		t.Fatalf("Processing -> Paid: %v", err)
	}
	if err := s.MarkPendingStatus(ctx, "PAY-10234", models.StatusProcessing); err != store.ErrInvalidTransition {
		t.Errorf("Paid -> Processing should be rejected, got %v", err)
	}
	if err := s.MarkPendingStatus(ctx, "PAY-99999", models.StatusProcessing); err != store.ErrNotFound {
		t.Errorf("unknown id should be ErrNotFound, got %v", err)
	}
}

func TestResolveOwnerEmail(t *testing.T) {
	ctx := context.Background()
	s := New()
	s.SeedBrand("Nike", "collabs@nike.example.com")
	s.SeedBrand("Gymshark", "")

	email, err := s.ResolveOwnerEmail(ctx, "Nike")
	if err != nil || email != "collabs@nike.example.com" {
		t.Errorf("got %q, %v", email, err)
	}
	if _, err := s.ResolveOwnerEmail(ctx, "Gymshark"); err != store.ErrNotFound {
		t.Errorf("blank email should be ErrNotFound, got %v", err)
	}
	if _, err := s.ResolveOwnerEmail(ctx, "Adidas"); err != store.ErrNotFound {
		t.Errorf("unknown brand should be ErrNotFound, got %v", err)
	}
}

func TestInsertRejectsDuplicatePaymentID(t *testing.T) {
	ctx := context.Background()
	s := New()
	first := &models.Submission{PaymentID: "PAY-10234", CreatedAt: time.Now()}
	if err := s.Insert(ctx, first); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if first.ID.IsZero() {
		t.Error("Insert must assign an id")
	}
	dup := &models.Submission{PaymentID: "PAY-10234", CreatedAt: time.Now()}
	if err := s.Insert(ctx, dup); err != store.ErrDuplicatePaymentID {
		t.Errorf("expected ErrDuplicatePaymentID, got %v", err)
	}
}

func TestCreateConfirmationFlipsSubmission(t *testing.T) {
	ctx := context.Background()
	s := New()
	sub := &models.Submission{
		PaymentID:     "PAY-10234",
		PaymentStatus: models.StatusPending,
		CreatedAt:     time.Now(),
	}
	if err := s.Insert(ctx, sub); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	conf := &models.Confirmation{
		PaymentID:           "PAY-10234",
		MatchedSubmissionID: sub.ID,
		Status:              models.ConfirmationStatus,
		CreatedAt:           time.Now(),
	}
	if err := s.Create(ctx, conf); err != nil {
		t.Fatalf("Create: %v", err)
	}

	stored, err := s.FindByPaymentID(ctx, "PAY-10234")
	if err != nil {
		t.Fatalf("FindByPaymentID: %v", err)
	}
	if stored.PaymentStatus != models.StatusPaid {
		t.Errorf("submission status = %s, want Paid", stored.PaymentStatus)
	}

	// The flip already happened, so a second confirmation hits the
	// transition guard.
	second := &models.Confirmation{
		PaymentID:           "PAY-10234",
		MatchedSubmissionID: sub.ID,
		Status:              models.ConfirmationStatus,
		CreatedAt:           time.Now(),
	}
	if err := s.Create(ctx, second); err != store.ErrInvalidTransition {
		t.Errorf("expected ErrInvalidTransition, got %v", err)
	}
	confs, _ := s.ListConfirmations(ctx)
	if len(confs) != 1 {
		t.Errorf("expected one confirmation row, got %d", len(confs))
	}

	missing := &models.Confirmation{MatchedSubmissionID: primitive.NewObjectID()}
	if err := s.Create(ctx, missing); err != store.ErrNotFound {
		t.Errorf("unknown submission should be ErrNotFound, got %v", err)
	}
}

func TestFindByIDs(t *testing.T) {
	ctx := context.Background()
	s := New()
	a := &models.Submission{PaymentID: "PAY-10234"}
	b := &models.Submission{PaymentID: "PAY-20567"}
	s.Insert(ctx, a)
	s.Insert(ctx, b)

	got, err := s.FindByIDs(ctx, []primitive.ObjectID{a.ID})
	if err != nil {
		t.Fatalf("FindByIDs: %v", err)
	}
	if len(got) != 1 || got[0].PaymentID != "PAY-10234" {
		t.Errorf("got %+v", got)
	}
}

func TestOutboxClaimRespectsAttemptCap(t *testing.T) {
	ctx := context.Background()
	s := New()
	fresh := &models.WebhookOutboxRecord{DeliveryID: "d1", URL: "https://hooks.test", Attempts: 1, CreatedAt: time.Now()}
	spent := &models.WebhookOutboxRecord{DeliveryID: "d2", URL: "https://hooks.test", Attempts: 5, CreatedAt: time.Now()}
	done := &models.WebhookOutboxRecord{DeliveryID: "d3", URL: "https://hooks.test", Delivered: true, CreatedAt: time.Now()}
	s.Enqueue(ctx, fresh)
	s.Enqueue(ctx, spent)
	s.Enqueue(ctx, done)

	records, err := s.ClaimUndelivered(ctx, 10, 5)
	if err != nil {
		t.Fatalf("ClaimUndelivered: %v", err)
	}
	if len(records) != 1 || records[0].DeliveryID != "d1" {
		t.Errorf("got %+v", records)
	}

	if err := s.MarkResult(ctx, fresh.ID, true, ""); err != nil {
		t.Fatalf("MarkResult: %v", err)
	}
	records, _ = s.ClaimUndelivered(ctx, 10, 5)
	if len(records) != 0 {
		t.Errorf("delivered record still claimable: %+v", records)
	}
}
