package config

import (
	"os"
	"strings"
)

// Webhook delivery policies. Best-effort matches the historical behavior:
// fire the POST, log a failure, move on. Outbox parks failures for the retry
// worker instead of dropping them.
const (
	DeliveryBestEffort = "best_effort"
	DeliveryOutbox     = "outbox"
)

// Config is the full runtime configuration, read once from the environment.
type Config struct {
	ServerPort    string
	MongoURI      string
	MongoDatabase string

	QRBucket         string
	ScreenshotBucket string

	SubmissionWebhookURL   string
	ConfirmationWebhookURL string
	WebhookDelivery        string

	AdminAPIToken string

	CORSAllowOrigins []string
}

// Load reads the environment. Defaults keep a dev machine working; required
// values (mongo connection, admin token) are validated by the callers that
// need them.
func Load() *Config {
	cfg := &Config{
		ServerPort:    getenv("SERVER_PORT", "8080"),
		MongoURI:      os.Getenv("MONGODB_URI"),
		MongoDatabase: os.Getenv("MONGODB_DATABASE"),

		QRBucket:         getenv("GCS_QR_BUCKET", "payment-qrs"),
		ScreenshotBucket: getenv("GCS_SCREENSHOT_BUCKET", "payment-screenshots"),

		SubmissionWebhookURL:   os.Getenv("SUBMISSION_WEBHOOK_URL"),
		ConfirmationWebhookURL: os.Getenv("CONFIRMATION_WEBHOOK_URL"),
		WebhookDelivery:        getenv("WEBHOOK_DELIVERY", DeliveryBestEffort),

		AdminAPIToken: os.Getenv("ADMIN_API_TOKEN"),
	}

	origins := getenv("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:3001")
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowOrigins = append(cfg.CORSAllowOrigins, origin)
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
