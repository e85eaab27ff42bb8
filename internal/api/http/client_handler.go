package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"autoloc-backend/internal/domain"
	"autoloc-backend/internal/service"
)

type ClientHandler struct {
	svc service.ClientService
}

func NewClientHandler(svc service.ClientService) *ClientHandler {
	return &ClientHandler{svc: svc}
}

func (h *ClientHandler) Register(r *mux.Router) {
	r.HandleFunc("/clients", h.List).Methods(http.MethodGet)
	r.HandleFunc("/clients", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/clients/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/clients/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/clients/{id}", h.Delete).Methods(http.MethodDelete)
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.svc.ListClients(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, clients)
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var c domain.Client
	if !decodeBody(w, r, &c) {
		return
	}
	if err := h.svc.AddClient(r.Context(), &c); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, c)
}

func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetClient(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	var c domain.Client
	if !decodeBody(w, r, &c) {
		return
	}
	c.ID = mux.Vars(r)["id"]
	if err := h.svc.UpdateClient(r.Context(), &c); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteClient(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
