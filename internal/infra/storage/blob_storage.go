// Package storage implements the media storage contract on top of
// gocloud.dev blob buckets, so the same code serves local disk, GCS and S3.
package storage

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"bistro/config"
	"bistro/internal/domain/lifecycle"
	"bistro/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers selectable through the configured bucket URL.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// New opens the configured media bucket. Returns nil when no storage is
// configured; upload routes are then rejected by the usecase layer.
func New(params Params) (service.MediaStorage, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		params.Logger.Warn("Media storage not configured, upload endpoints disabled")

		return nil, nil
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open media bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(params.Config.Storage.PublicBaseURL, "/"),
	}, nil
}

// NewWithBucket builds a storage backed by an already-open bucket.
// Used by tests with a fileblob bucket.
func NewWithBucket(bucket *blob.Bucket, publicBaseURL string) service.MediaStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Save writes the content under a collision-free key and returns its public URL.
func (s *blobStorage) Save(ctx context.Context, filename string, contentType string, content io.Reader) (string, error) {
	key := objectKey(filename)

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(writer, content); err != nil {
		writer.Close()

		return "", errors.Wrap(err, "failed to write media content")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize media upload")
	}

	return s.publicBaseURL + "/" + key, nil
}

// objectKey derives a unique object key keeping the original extension.
func objectKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	base := strings.TrimSuffix(path.Base(filename), path.Ext(filename))
	base = sanitize(base)
	if base == "" {
		base = "media"
	}

	return time.Now().UTC().Format("2006/01/02") + "/" + base + "-" + uuid.NewString() + ext
}

func sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ' || r == '.':
			b.WriteRune('-')
		}
	}

	return b.String()
}
