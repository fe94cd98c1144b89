package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/aniketgore/Influencer_Payment_Backend.git/config"
	"github.com/aniketgore/Influencer_Payment_Backend.git/store/memstore"
	"github.com/sirupsen/logrus"
)

func discardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestWebhookDeliver(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var got map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("method = %s", r.Method)
			}
			if ct := r.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("content type = %s", ct)
			}
			json.NewDecoder(r.Body).Decode(&got)
		}))
		defer srv.Close()

		n := NewWebhookNotifier(discardLogger(), config.DeliveryBestEffort, nil)
		body, _ := json.Marshal(map[string]any{"payment_id": "PAY-10234"})
		if err := n.Deliver(context.Background(), srv.URL, body); err != nil {
			t.Fatalf("Deliver: %v", err)
		}
		if got["payment_id"] != "PAY-10234" {
			t.Errorf("server received %v", got)
		}
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		n := NewWebhookNotifier(discardLogger(), config.DeliveryBestEffort, nil)
		if err := n.Deliver(context.Background(), srv.URL, []byte(`{}`)); err == nil {
			t.Fatal("expected an error for a 500 response")
		}
	})
}

func TestWebhookDispatchBestEffortDropsFailures(t *testing.T) {
	ms := memstore.New()
	n := NewWebhookNotifier(discardLogger(), config.DeliveryBestEffort, ms)

	// No server listening; the delivery fails and best-effort mode drops it.
	n.dispatch("http://127.0.0.1:1/webhook", []byte(`{}`))

	records, _ := ms.ClaimUndelivered(context.Background(), 10, 5)
	if len(records) != 0 {
		t.Errorf("best-effort mode must not park records, got %d", len(records))
	}
}

func TestWebhookDispatchOutboxParksFailures(t *testing.T) {
	ms := memstore.New()
	n := NewWebhookNotifier(discardLogger(), config.DeliveryOutbox, ms)

	n.dispatch("http://127.0.0.1:1/webhook", []byte(`{"payment_id":"PAY-10234"}`))

	records, _ := ms.ClaimUndelivered(context.Background(), 10, 5)
	if len(records) != 1 {
		t.Fatalf("expected one parked record, got %d", len(records))
	}
	rec := records[0]
	if rec.Attempts != 1 {
		t.Errorf("attempts = %d", rec.Attempts)
	}
	if rec.DeliveryID == "" || rec.LastError == "" {
		t.Errorf("record missing delivery id or error: %+v", rec)
	}
	if string(rec.Payload) != `{"payment_id":"PAY-10234"}` {
		t.Errorf("payload = %s", rec.Payload)
	}
}

func TestOutboxWorkerProcessOnce(t *testing.T) {
	var fail atomic.Bool
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if fail.Load() {
			w.WriteHeader(http.StatusBadGateway)
		}
	}))
	defer srv.Close()

	ms := memstore.New()
	n := NewWebhookNotifier(discardLogger(), config.DeliveryOutbox, ms)
	worker := NewOutboxWorker(ms, n, discardLogger())

	fail.Store(true)
	n.dispatch(srv.URL, []byte(`{}`))
	ctx := context.Background()

	// First pass still fails; the record stays parked with another attempt.
	worker.ProcessOnce(ctx)
	records, _ := ms.ClaimUndelivered(ctx, 10, worker.MaxAttempts)
	if len(records) != 1 || records[0].Attempts != 2 {
		t.Fatalf("expected one record with two attempts, got %+v", records)
	}

	// Endpoint recovers; the next pass delivers and clears the record.
	fail.Store(false)
	worker.ProcessOnce(ctx)
	records, _ = ms.ClaimUndelivered(ctx, 10, worker.MaxAttempts)
	if len(records) != 0 {
		t.Fatalf("expected the outbox to drain, got %+v", records)
	}
	if hits.Load() != 3 {
		t.Errorf("endpoint hits = %d, want 3", hits.Load())
	}
}

func TestOutboxWorkerStopsAtMaxAttempts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	ms := memstore.New()
	n := NewWebhookNotifier(discardLogger(), config.DeliveryOutbox, ms)
	worker := NewOutboxWorker(ms, n, discardLogger())
	worker.MaxAttempts = 3

	n.dispatch(srv.URL, []byte(`{}`))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		worker.ProcessOnce(ctx)
	}
	records, _ := ms.ClaimUndelivered(ctx, 10, worker.MaxAttempts)
	if len(records) != 0 {
		t.Fatalf("record past the attempt cap must not be claimable, got %+v", records)
	}
	all, _ := ms.ClaimUndelivered(ctx, 10, 100)
	if len(all) != 1 || all[0].Attempts != 3 {
		t.Fatalf("expected the record retained with 3 attempts, got %+v", all)
	}
}
