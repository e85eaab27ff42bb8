package http

import (
	"io"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"autoloc-backend/internal/storage"
)

// PhotoHandler serves the mock presigned upload/download endpoints backing
// storage.MockStorage in development. The cloud backend signs real bucket
// URLs and never routes through here.
type PhotoHandler struct {
	mock *storage.MockStorage
}

func NewPhotoHandler(mock *storage.MockStorage) *PhotoHandler {
	return &PhotoHandler{mock: mock}
}

// RegisterMockPhotoRoutes mounts the mock storage endpoints on the root
// router. They sit outside the authenticated API subrouter because the
// mobile client PUTs directly to the presigned URL.
func RegisterMockPhotoRoutes(router *mux.Router, mock *storage.MockStorage) {
	h := NewPhotoHandler(mock)
	router.HandleFunc("/api/v1/photos/upload/{token}", h.Upload).Methods(http.MethodPut)
	router.HandleFunc("/api/v1/photos/download", h.Download).Methods(http.MethodGet)
}

func (h *PhotoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "Missing key parameter", http.StatusBadRequest)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" && contentType != "image/webp" {
		http.Error(w, "Invalid content type", http.StatusBadRequest)
		return
	}

	if err := h.mock.SaveFile(key, r.Body); err != nil {
		http.Error(w, "Failed to save file", http.StatusInternalServerError)
		return
	}

	// Mimic a bucket PUT response.
	w.Header().Set("ETag", `"mock-etag-success"`)
	w.WriteHeader(http.StatusOK)
}

func (h *PhotoHandler) Download(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "Missing key parameter", http.StatusBadRequest)
		return
	}

	file, err := h.mock.ReadFile(key)
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	defer file.Close()

	contentType := "application/octet-stream"
	switch filepath.Ext(key) {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".webp":
		contentType = "image/webp"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	io.Copy(w, file)
}
