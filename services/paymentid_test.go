package services

import (
	"regexp"
	"testing"
)

func TestGeneratePaymentID_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^PAY-\d{5}$`)
	for i := 0; i < 1000; i++ {
		id := GeneratePaymentID()
		if !pattern.MatchString(id) {
			t.Fatalf("expected PAY-##### shape, got %q", id)
		}
	}
}

func TestGeneratePaymentID_SuffixRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		id := GeneratePaymentID()
		suffix := id[len("PAY-"):]
		if suffix[0] == '0' {
			t.Fatalf("suffix must not have a leading zero, got %q", id)
		}
	}
}
