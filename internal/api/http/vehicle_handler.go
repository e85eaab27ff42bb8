package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"autoloc-backend/internal/domain"
	"autoloc-backend/internal/service"
)

type VehicleHandler struct {
	svc service.VehicleService
}

func NewVehicleHandler(svc service.VehicleService) *VehicleHandler {
	return &VehicleHandler{svc: svc}
}

func (h *VehicleHandler) Register(r *mux.Router) {
	r.HandleFunc("/vehicles", h.List).Methods(http.MethodGet)
	r.HandleFunc("/vehicles", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/vehicles/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/vehicles/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/vehicles/{id}", h.Delete).Methods(http.MethodDelete)
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.svc.ListVehicles(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vehicles)
}

func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var v domain.Vehicle
	if !decodeBody(w, r, &v) {
		return
	}
	if err := h.svc.AddVehicle(r.Context(), &v); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, v)
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.GetVehicle(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, v)
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	var v domain.Vehicle
	if !decodeBody(w, r, &v) {
		return
	}
	v.ID = mux.Vars(r)["id"]
	if err := h.svc.UpdateVehicle(r.Context(), &v); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, v)
}

func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteVehicle(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
