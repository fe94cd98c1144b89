package services

import (
	"fmt"
	"math/rand"
)

const paymentIDPrefix = "PAY"

// GeneratePaymentID produces a human-readable payment identifier: the fixed
// prefix plus a 5-digit suffix, e.g. PAY-12345. Uniqueness is not checked
// here; the submission store's unique index catches the rare collision.
func GeneratePaymentID() string {
	return fmt.Sprintf("%s-%d", paymentIDPrefix, 10000+rand.Intn(90000))
}
