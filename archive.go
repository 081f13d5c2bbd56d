package main

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

const archiveTimeout = 2 * time.Minute

// ReceiptArchive keeps a copy of every uploaded receipt image.
type ReceiptArchive interface {
	Archive(ctx context.Context, objectName, contentType string, data []byte) (string, error)
}

// gcsArchive writes receipts to a Cloud Storage bucket. It assumes
// Application Default Credentials are configured.
type gcsArchive struct {
	client *storage.Client
	bucket string
}

func newGCSArchive(ctx context.Context, bucket string) (*gcsArchive, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &gcsArchive{client: client, bucket: bucket}, nil
}

func (a *gcsArchive) Archive(ctx context.Context, objectName, contentType string, data []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, archiveTimeout)
	defer cancel()

	w := a.client.Bucket(a.bucket).Object(objectName).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("write receipt to GCS: %w", err)
	}
	// Close finalizes the upload.
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize receipt upload: %w", err)
	}
	return fmt.Sprintf("gs://%s/%s", a.bucket, objectName), nil
}

func (a *gcsArchive) Close() error {
	return a.client.Close()
}

// receiptObjectName is receipts/YYYY/MM/DD/<id>-<filename>.
func receiptObjectName(now time.Time, id uuid.UUID, filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		base = "receipt"
	}
	return fmt.Sprintf("receipts/%s/%s-%s", now.UTC().Format("2006/01/02"), id, base)
}
