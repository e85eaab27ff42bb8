package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"autoloc-backend/internal/domain"
	"autoloc-backend/internal/service"
)

type InspectionHandler struct {
	svc service.InspectionService
}

func NewInspectionHandler(svc service.InspectionService) *InspectionHandler {
	return &InspectionHandler{svc: svc}
}

func (h *InspectionHandler) Register(r *mux.Router) {
	r.HandleFunc("/inspections", h.Record).Methods(http.MethodPost)
	r.HandleFunc("/inspections/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/inspections/{id}/photo-upload-url", h.PhotoUploadURL).Methods(http.MethodPost)
	r.HandleFunc("/reservations/{id}/inspections", h.ListByReservation).Methods(http.MethodGet)
	r.HandleFunc("/photos/download-url", h.PhotoDownloadURL).Methods(http.MethodGet)
}

func (h *InspectionHandler) Record(w http.ResponseWriter, r *http.Request) {
	var ins domain.Inspection
	if !decodeBody(w, r, &ins) {
		return
	}
	if err := h.svc.RecordInspection(r.Context(), &ins); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, ins)
}

func (h *InspectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	ins, err := h.svc.GetInspection(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, ins)
}

func (h *InspectionHandler) ListByReservation(w http.ResponseWriter, r *http.Request) {
	inspections, err := h.svc.ListByReservation(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, inspections)
}

type photoUploadRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
}

type photoUploadResponse struct {
	Key       string `json:"key"`
	UploadURL string `json:"upload_url"`
}

func (h *InspectionHandler) PhotoUploadURL(w http.ResponseWriter, r *http.Request) {
	var req photoUploadRequest
	if !decodeBody(w, r, &req) {
		return
	}
	key, uploadURL, err := h.svc.PhotoUploadURL(r.Context(), mux.Vars(r)["id"], req.Filename, req.ContentType)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, photoUploadResponse{Key: key, UploadURL: uploadURL})
}

func (h *InspectionHandler) PhotoDownloadURL(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		respondError(w, http.StatusBadRequest, "key query parameter is required")
		return
	}
	downloadURL, err := h.svc.PhotoDownloadURL(r.Context(), key)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"download_url": downloadURL})
}
