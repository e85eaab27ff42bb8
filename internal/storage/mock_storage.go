package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// MockStorage stores inspection photos on the local filesystem and hands out
// URLs pointing back at the server's mock upload/download endpoints. It is
// the development stand-in for the Cloud Storage bucket.
type MockStorage struct {
	baseURL   string // server URL, e.g. "http://localhost:8080"
	photosDir string
}

func NewMockStorage(baseURL, uploadsDir string) (*MockStorage, error) {
	photosDir := filepath.Join(uploadsDir, "photos")
	if err := os.MkdirAll(photosDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create photos directory: %w", err)
	}
	return &MockStorage{
		baseURL:   baseURL,
		photosDir: photosDir,
	}, nil
}

// GeneratePresignedUploadURL returns a mock URL on the local server; the key
// rides in the query string so the upload handler knows where to save.
func (m *MockStorage) GeneratePresignedUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error) {
	token := uuid.NewString()
	return fmt.Sprintf("%s/api/v1/photos/upload/%s?key=%s", m.baseURL, token, url.QueryEscape(key)), nil
}

func (m *MockStorage) GeneratePresignedDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	return fmt.Sprintf("%s/api/v1/photos/download?key=%s", m.baseURL, url.QueryEscape(key)), nil
}

func (m *MockStorage) FileExists(ctx context.Context, key string) (bool, int64, error) {
	info, err := os.Stat(m.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, 0, nil
		}
		return false, 0, err
	}
	return true, info.Size(), nil
}

func (m *MockStorage) DeleteFile(ctx context.Context, key string) error {
	err := os.Remove(m.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (m *MockStorage) SaveFile(key string, reader io.Reader) error {
	fullPath := m.path(key)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}
	f, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, reader); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func (m *MockStorage) ReadFile(key string) (io.ReadCloser, error) {
	return os.Open(m.path(key))
}

func (m *MockStorage) path(key string) string {
	// Keys are generated server-side, but keep traversal out anyway.
	return filepath.Join(m.photosDir, filepath.Clean("/"+key))
}
