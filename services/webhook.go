package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aniketgore/Influencer_Payment_Backend.git/config"
	"github.com/aniketgore/Influencer_Payment_Backend.git/models"
	"github.com/aniketgore/Influencer_Payment_Backend.git/store"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Notifier delivers event snapshots to an external webhook. Callers never
// observe the outcome; a failed delivery must not affect the primary
// operation.
type Notifier interface {
	Notify(url string, payload any)
}

// WebhookNotifier POSTs JSON payloads. In best-effort mode a failure is
// logged and dropped; in outbox mode it is parked for the retry worker.
type WebhookNotifier struct {
	Client *http.Client
	Logger *logrus.Logger
	Mode   string
	Outbox store.Outbox
}

func NewWebhookNotifier(logger *logrus.Logger, mode string, outbox store.Outbox) *WebhookNotifier {
	return &WebhookNotifier{
		Client: &http.Client{Timeout: 10 * time.Second},
		Logger: logger,
		Mode:   mode,
		Outbox: outbox,
	}
}

// Notify fires the delivery in the background and returns immediately.
func (n *WebhookNotifier) Notify(url string, payload any) {
	if url == "" {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		config.LogError(n.Logger, "services", "Notify", "marshal webhook payload", err)
		return
	}
	go n.dispatch(url, body)
}

func (n *WebhookNotifier) dispatch(url string, body []byte) {
	deliveryID := uuid.NewString()

	err := n.Deliver(context.Background(), url, body)
	if err == nil {
		return
	}

	n.Logger.WithFields(logrus.Fields{
		"module":     "services",
		"funcName":   "dispatch",
		"deliveryId": deliveryID,
		"url":        url,
	}).Error(err.Error())

	if n.Mode != config.DeliveryOutbox || n.Outbox == nil {
		return
	}

	now := time.Now()
	rec := &models.WebhookOutboxRecord{
		DeliveryID: deliveryID,
		URL:        url,
		Payload:    body,
		Attempts:   1,
		LastError:  err.Error(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if qerr := n.Outbox.Enqueue(context.Background(), rec); qerr != nil {
		config.LogError(n.Logger, "services", "dispatch", "enqueue webhook outbox record", qerr)
	}
}

// Deliver performs one synchronous POST attempt.
func (n *WebhookNotifier) Deliver(ctx context.Context, url string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook returned %s", resp.Status)
	}
	return nil
}

// OutboxWorker drains the webhook outbox on an interval, redelivering parked
// payloads until they succeed or hit the attempt cap.
type OutboxWorker struct {
	Outbox      store.Outbox
	Notifier    *WebhookNotifier
	Logger      *logrus.Logger
	Interval    time.Duration
	BatchSize   int
	MaxAttempts int
}

func NewOutboxWorker(outbox store.Outbox, notifier *WebhookNotifier, logger *logrus.Logger) *OutboxWorker {
	return &OutboxWorker{
		Outbox:      outbox,
		Notifier:    notifier,
		Logger:      logger,
		Interval:    30 * time.Second,
		BatchSize:   20,
		MaxAttempts: 5,
	}
}

// Run loops until ctx is cancelled.
func (w *OutboxWorker) Run(ctx context.Context) {
	if w == nil || w.Outbox == nil {
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		w.ProcessOnce(ctx)
		select {
		case <-ctx.Done():
			return
		case <-time.After(w.Interval):
		}
	}
}

// ProcessOnce attempts every claimable record a single time.
func (w *OutboxWorker) ProcessOnce(ctx context.Context) {
	records, err := w.Outbox.ClaimUndelivered(ctx, w.BatchSize, w.MaxAttempts)
	if err != nil {
		config.LogError(w.Logger, "services", "ProcessOnce", "claim webhook outbox records", err)
		return
	}

	for _, rec := range records {
		attemptErr := w.Notifier.Deliver(ctx, rec.URL, rec.Payload)
		if attemptErr == nil {
			if err := w.Outbox.MarkResult(ctx, rec.ID, true, ""); err != nil {
				config.LogError(w.Logger, "services", "ProcessOnce", "mark webhook delivered", err)
			}
			continue
		}

		w.Logger.WithFields(logrus.Fields{
			"module":     "services",
			"funcName":   "ProcessOnce",
			"deliveryId": rec.DeliveryID,
			"attempts":   rec.Attempts + 1,
		}).Warn(attemptErr.Error())
		if err := w.Outbox.MarkResult(ctx, rec.ID, false, attemptErr.Error()); err != nil {
			config.LogError(w.Logger, "services", "ProcessOnce", "mark webhook attempt", err)
		}
	}
}
