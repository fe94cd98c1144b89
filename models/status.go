package models

// PaymentStatus is the lifecycle status of a payment record. Both the pending
// ledger entries and the influencer submissions move through it.
type PaymentStatus string

const (
	StatusPending    PaymentStatus = "Pending"
	StatusProcessing PaymentStatus = "Processing"
	StatusPaid       PaymentStatus = "Paid"
)

// statusRank orders the lifecycle. Transitions must only move forward
// (Pending -> Processing -> Paid); skipping a stage forward is allowed.
var statusRank = map[PaymentStatus]int{
	StatusPending:    0,
	StatusProcessing: 1,
	StatusPaid:       2,
}

// Valid reports whether s is one of the known lifecycle statuses.
func (s PaymentStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is a forward transition.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	from, okFrom := statusRank[s]
	to, okTo := statusRank[next]
	return okFrom && okTo && to > from
}

// StatusesBelow returns every status that ranks strictly below s. The store
// layer uses it to build "only move forward" update filters.
func StatusesBelow(s PaymentStatus) []PaymentStatus {
	target, ok := statusRank[s]
	if !ok {
		return nil
	}
	var below []PaymentStatus
	for _, candidate := range []PaymentStatus{StatusPending, StatusProcessing, StatusPaid} {
		if statusRank[candidate] < target {
			below = append(below, candidate)
		}
	}
	return below
}
