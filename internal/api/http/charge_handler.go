package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"autoloc-backend/internal/domain"
	"autoloc-backend/internal/service"
)

type ChargeHandler struct {
	svc service.ChargeService
}

func NewChargeHandler(svc service.ChargeService) *ChargeHandler {
	return &ChargeHandler{svc: svc}
}

func (h *ChargeHandler) Register(r *mux.Router) {
	r.HandleFunc("/charges", h.List).Methods(http.MethodGet)
	r.HandleFunc("/charges", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/charges/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/charges/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/charges/{id}", h.Delete).Methods(http.MethodDelete)
}

func (h *ChargeHandler) List(w http.ResponseWriter, r *http.Request) {
	charges, err := h.svc.ListCharges(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, charges)
}

func (h *ChargeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var c domain.Charge
	if !decodeBody(w, r, &c) {
		return
	}
	if err := h.svc.AddCharge(r.Context(), &c); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, c)
}

func (h *ChargeHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetCharge(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (h *ChargeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var c domain.Charge
	if !decodeBody(w, r, &c) {
		return
	}
	c.ID = mux.Vars(r)["id"]
	if err := h.svc.UpdateCharge(r.Context(), &c); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (h *ChargeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCharge(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
