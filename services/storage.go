package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// Uploader stores an attachment and returns its publicly readable URL.
type Uploader interface {
	Upload(ctx context.Context, bucket, objectName string, data []byte) (string, error)
}

// Attachment purposes; they end up in the object key.
const (
	PurposeUpiQr      = "upi_qr"
	PurposeScreenshot = "screenshot"
)

// ObjectName builds the storage key for an attachment:
// {paymentId}_{purpose}.{ext}, extension taken from the uploaded filename.
func ObjectName(paymentID, purpose, filename string) string {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		ext = "png"
	}
	return fmt.Sprintf("%s_%s.%s", paymentID, purpose, ext)
}

// GCSUploader uploads to Google Cloud Storage buckets that are publicly
// readable by object URL.
type GCSUploader struct{}

func NewGCSUploader() *GCSUploader {
	return &GCSUploader{}
}

// getGoogleClient initializes a Google Cloud Storage client. Prefers ADC;
// set GCS_CREDENTIALS_JSON to provide explicit JSON credentials locally.
func getGoogleClient(ctx context.Context) (*storage.Client, error) {
	if credJSON := os.Getenv("GCS_CREDENTIALS_JSON"); strings.TrimSpace(credJSON) != "" {
		return storage.NewClient(ctx, option.WithCredentialsJSON([]byte(credJSON)))
	}
	return storage.NewClient(ctx)
}

// allowedImageTypes restricts attachments to what the two buckets hold: QR
// codes and payment screenshots.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

func (u *GCSUploader) Upload(ctx context.Context, bucket, objectName string, data []byte) (string, error) {
	if bucket == "" {
		return "", errors.New("storage bucket is required")
	}

	mimeType := http.DetectContentType(data)
	if !allowedImageTypes[mimeType] {
		return "", fmt.Errorf("unsupported file type: %s", mimeType)
	}

	client, err := getGoogleClient(ctx)
	if err != nil {
		return "", err
	}
	defer client.Close()

	if _, err := client.Bucket(bucket).Attrs(ctx); err != nil {
		return "", fmt.Errorf("gcs bucket %q not found or not accessible: %v", bucket, err)
	}

	wc := client.Bucket(bucket).Object(objectName).NewWriter(ctx)
	wc.ContentType = mimeType
	wc.Metadata = map[string]string{
		"x-goog-acl": "public-read",
	}

	if _, err := wc.Write(data); err != nil {
		return "", fmt.Errorf("failed to upload file to Google Cloud Storage: %v", err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %v", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, objectName), nil
}
