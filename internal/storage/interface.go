package storage

import (
	"context"
	"io"
	"time"
)

// Interface abstracts the blob store holding inspection photos. Production
// uses the Firebase Cloud Storage bucket; development uses a local
// filesystem mock served over HTTP.
type Interface interface {
	// GeneratePresignedUploadURL returns a URL the mobile client can PUT the
	// photo bytes to, valid for expiresIn.
	GeneratePresignedUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error)

	// GeneratePresignedDownloadURL returns a time-limited GET URL for a photo.
	GeneratePresignedDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error)

	// FileExists checks if a blob exists and returns its size.
	FileExists(ctx context.Context, key string) (exists bool, size int64, err error)

	// DeleteFile removes a blob.
	DeleteFile(ctx context.Context, key string) error

	// SaveFile and ReadFile back the mock HTTP endpoints; the cloud backend
	// does not implement them.
	SaveFile(key string, reader io.Reader) error
	ReadFile(key string) (io.ReadCloser, error)
}
