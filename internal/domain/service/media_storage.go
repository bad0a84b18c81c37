package service

import (
	"context"
	"io"
)

// MediaStorage defines the contract for storing uploaded media files in the
// platform bucket and resolving their public URLs.
type MediaStorage interface {
	// Save writes the content under a generated key derived from filename and
	// returns the public URL of the stored object.
	Save(ctx context.Context, filename string, contentType string, content io.Reader) (string, error)
}
