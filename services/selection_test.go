package services

import (
	"testing"

	"github.com/aniketgore/Influencer_Payment_Backend.git/models"
)

func pendingFixture(ids ...string) []models.PendingPayment {
	out := make([]models.PendingPayment, 0, len(ids))
	for i, id := range ids {
		out = append(out, models.PendingPayment{
			PaymentID:       id,
			InstagramHandle: "alice",
			BrandName:       "Nike",
			Amount:          float64(100 * (i + 1)),
			Status:          models.StatusPending,
		})
	}
	return out
}

func TestSelection_SinglePendingAutoSelects(t *testing.T) {
	sel := NewSelection()
	sel.SelectBrand("Nike")
	sel.SelectInfluencer("alice", pendingFixture("PAY-10234"))

	if sel.Stage() != StagePaymentSelected {
		t.Fatalf("expected auto-select, stage = %d", sel.Stage())
	}
	amount, ok := sel.Amount()
	if !ok || amount != 100 {
		t.Errorf("expected pre-filled amount 100, got %v (%v)", amount, ok)
	}
	chosen, _ := sel.Chosen()
	if chosen.PaymentID != "PAY-10234" {
		t.Errorf("expected PAY-10234, got %s", chosen.PaymentID)
	}
}

func TestSelection_ZeroPendingLocks(t *testing.T) {
	sel := NewSelection()
	sel.SelectBrand("Nike")
	sel.SelectInfluencer("alice", nil)

	if !sel.Locked() {
		t.Error("expected locked selection with zero pending payments")
	}
	if _, ok := sel.Chosen(); ok {
		t.Error("locked selection must not have a chosen payment")
	}
}

func TestSelection_MultiplePendingRequiresChoice(t *testing.T) {
	sel := NewSelection()
	sel.SelectBrand("Nike")
	sel.SelectInfluencer("alice", pendingFixture("PAY-10234", "PAY-20567"))

	if sel.Stage() != StageInfluencerSelected {
		t.Fatalf("expected InfluencerSelected, got %d", sel.Stage())
	}
	if _, ok := sel.Amount(); ok {
		t.Error("amount must stay unset until an explicit choice")
	}

	if !sel.ChoosePayment("PAY-20567") {
		t.Fatal("choosing a listed payment should succeed")
	}
	amount, _ := sel.Amount()
	if amount != 200 {
		t.Errorf("expected amount 200 after choice, got %v", amount)
	}

	if sel.ChoosePayment("PAY-99999") {
		t.Error("choosing an unlisted payment should fail")
	}
}

func TestSelection_BrandChangeDiscardsDerivedState(t *testing.T) {
	sel := NewSelection()
	sel.SelectBrand("Nike")
	sel.SelectInfluencer("alice", pendingFixture("PAY-10234"))

	sel.SelectBrand("Adidas")
	if sel.Stage() != StageBrandSelected {
		t.Fatalf("expected BrandSelected after re-selection, got %d", sel.Stage())
	}
	if sel.Handle() != "" || len(sel.Pending()) != 0 {
		t.Error("influencer and pending state must be discarded on brand change")
	}
	if _, ok := sel.Chosen(); ok {
		t.Error("chosen payment must be discarded on brand change")
	}
}

func TestSelection_InfluencerChangeReplacesPending(t *testing.T) {
	sel := NewSelection()
	sel.SelectBrand("Nike")
	sel.SelectInfluencer("alice", pendingFixture("PAY-10234", "PAY-20567"))
	sel.ChoosePayment("PAY-10234")

	// A stale lookup for the previous influencer cannot survive: the new
	// transition carries its own freshly loaded list.
	sel.SelectInfluencer("bob", pendingFixture("PAY-30781"))
	chosen, ok := sel.Chosen()
	if !ok {
		t.Fatal("single pending payment should auto-select")
	}
	if chosen.PaymentID != "PAY-30781" {
		t.Errorf("expected the new influencer's payment, got %s", chosen.PaymentID)
	}
}

func TestSelection_EmptyBrandResets(t *testing.T) {
	sel := NewSelection()
	sel.SelectBrand("Nike")
	sel.SelectBrand("")
	if sel.Stage() != StageNoBrand {
		t.Errorf("expected NoBrand, got %d", sel.Stage())
	}
}
