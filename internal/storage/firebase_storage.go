package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
)

// FirebaseStorage serves presigned URLs against the app's Cloud Storage
// bucket, the same bucket the mobile clients upload inspection photos to.
type FirebaseStorage struct {
	bucket *gcs.BucketHandle
}

// NewFirebaseStorage resolves the default bucket of the Firebase app, or a
// named one when bucketName is set.
func NewFirebaseStorage(ctx context.Context, app *firebase.App, bucketName string) (*FirebaseStorage, error) {
	client, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to init storage client: %w", err)
	}
	var bucket *gcs.BucketHandle
	if bucketName != "" {
		bucket, err = client.Bucket(bucketName)
	} else {
		bucket, err = client.DefaultBucket()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve bucket: %w", err)
	}
	return &FirebaseStorage{bucket: bucket}, nil
}

func (s *FirebaseStorage) GeneratePresignedUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error) {
	return s.bucket.SignedURL(key, &gcs.SignedURLOptions{
		Method:      http.MethodPut,
		ContentType: contentType,
		Expires:     time.Now().Add(expiresIn),
	})
}

func (s *FirebaseStorage) GeneratePresignedDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	return s.bucket.SignedURL(key, &gcs.SignedURLOptions{
		Method:  http.MethodGet,
		Expires: time.Now().Add(expiresIn),
	})
}

func (s *FirebaseStorage) FileExists(ctx context.Context, key string) (bool, int64, error) {
	attrs, err := s.bucket.Object(key).Attrs(ctx)
	if err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return false, 0, nil
		}
		return false, 0, err
	}
	return true, attrs.Size, nil
}

func (s *FirebaseStorage) DeleteFile(ctx context.Context, key string) error {
	err := s.bucket.Object(key).Delete(ctx)
	if err != nil && !errors.Is(err, gcs.ErrObjectNotExist) {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// SaveFile and ReadFile exist for the mock backend's HTTP endpoints only.

func (s *FirebaseStorage) SaveFile(key string, reader io.Reader) error {
	return errors.New("direct file writes not supported on cloud storage")
}

func (s *FirebaseStorage) ReadFile(key string) (io.ReadCloser, error) {
	return nil, errors.New("direct file reads not supported on cloud storage")
}
