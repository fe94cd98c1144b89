package services

import "github.com/aniketgore/Influencer_Payment_Backend.git/models"

// SelectionStage identifies how far the cascading brand -> influencer ->
// pending-payment selection has progressed.
type SelectionStage int

const (
	StageNoBrand SelectionStage = iota
	StageBrandSelected
	StageInfluencerSelected
	StagePaymentSelected
)

// Selection is the cascading-selection state machine. Each transition
// replaces all derived state from later stages, so a lookup result loaded for
// an earlier choice can never leak into a newer one.
type Selection struct {
	stage   SelectionStage
	brand   string
	handle  string
	pending []models.PendingPayment
	chosen  *models.PendingPayment
}

func NewSelection() *Selection {
	return &Selection{stage: StageNoBrand}
}

func (s *Selection) Stage() SelectionStage { return s.stage }
func (s *Selection) Brand() string         { return s.brand }
func (s *Selection) Handle() string        { return s.handle }

// SelectBrand moves to BrandSelected and discards any influencer, pending
// list, and chosen payment from a previous pass. An empty brand resets to
// NoBrand.
func (s *Selection) SelectBrand(brand string) {
	s.brand = brand
	s.handle = ""
	s.pending = nil
	s.chosen = nil
	if brand == "" {
		s.stage = StageNoBrand
		return
	}
	s.stage = StageBrandSelected
}

// SelectInfluencer records the handle along with its freshly looked-up
// pending payments. Exactly one pending payment auto-selects it; zero leaves
// the selection locked; more than one requires an explicit ChoosePayment.
func (s *Selection) SelectInfluencer(handle string, pending []models.PendingPayment) {
	if s.stage == StageNoBrand {
		return
	}
	s.handle = handle
	s.pending = pending
	s.chosen = nil
	if handle == "" {
		s.pending = nil
		s.stage = StageBrandSelected
		return
	}
	s.stage = StageInfluencerSelected
	if len(pending) == 1 {
		s.chosen = &s.pending[0]
		s.stage = StagePaymentSelected
	}
}

// ChoosePayment picks one of the loaded pending payments by identifier.
func (s *Selection) ChoosePayment(paymentID string) bool {
	if s.stage < StageInfluencerSelected {
		return false
	}
	for i := range s.pending {
		if s.pending[i].PaymentID == paymentID {
			s.chosen = &s.pending[i]
			s.stage = StagePaymentSelected
			return true
		}
	}
	return false
}

// Locked reports whether the submission path is disabled because the
// influencer has no pending payments.
func (s *Selection) Locked() bool {
	return s.stage >= StageInfluencerSelected && len(s.pending) == 0
}

// Pending exposes the loaded pending payments for the current stage.
func (s *Selection) Pending() []models.PendingPayment {
	return s.pending
}

// Chosen returns the selected pending payment, if the machine reached
// PaymentSelected.
func (s *Selection) Chosen() (*models.PendingPayment, bool) {
	if s.stage != StagePaymentSelected || s.chosen == nil {
		return nil, false
	}
	return s.chosen, true
}

// Amount returns the pre-filled amount once a payment is selected.
func (s *Selection) Amount() (float64, bool) {
	if chosen, ok := s.Chosen(); ok {
		return chosen.Amount, true
	}
	return 0, false
}
