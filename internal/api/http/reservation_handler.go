package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"autoloc-backend/internal/domain"
	"autoloc-backend/internal/service"
)

type ReservationHandler struct {
	svc service.ReservationService
}

func NewReservationHandler(svc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

func (h *ReservationHandler) Register(r *mux.Router) {
	r.HandleFunc("/reservations", h.List).Methods(http.MethodGet)
	r.HandleFunc("/reservations", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/reservations/quote", h.Quote).Methods(http.MethodGet)
	r.HandleFunc("/reservations/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/reservations/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/reservations/{id}/status", h.ChangeStatus).Methods(http.MethodPost)
	r.HandleFunc("/reservations/{id}/payout", h.RecordPayout).Methods(http.MethodPost)
}

func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	if vehicleID := r.URL.Query().Get("vehicle_id"); vehicleID != "" {
		reservations, err := h.svc.ListByVehicle(r.Context(), vehicleID)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, reservations)
		return
	}
	reservations, err := h.svc.ListReservations(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, reservations)
}

// Quote returns the derived pricing suggestion for a prospective span. The
// client calls this whenever vehicle or dates change and decides itself
// whether to overwrite the price field (it must not when the user already
// edited the price).
func (h *ReservationHandler) Quote(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	quote, err := h.svc.Quote(r.Context(),
		q.Get("vehicle_id"),
		q.Get("start_date"), q.Get("start_time"),
		q.Get("end_date"), q.Get("end_time"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, quote)
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var res domain.Reservation
	if !decodeBody(w, r, &res) {
		return
	}
	created, err := h.svc.CreateReservation(r.Context(), &res)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.GetReservation(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

func (h *ReservationHandler) Update(w http.ResponseWriter, r *http.Request) {
	var res domain.Reservation
	if !decodeBody(w, r, &res) {
		return
	}
	res.ID = mux.Vars(r)["id"]
	updated, err := h.svc.UpdateReservation(r.Context(), &res)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

type changeStatusRequest struct {
	Status domain.ReservationStatus `json:"status"`
}

func (h *ReservationHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	var req changeStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	res, err := h.svc.ChangeStatus(r.Context(), mux.Vars(r)["id"], req.Status)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

type recordPayoutRequest struct {
	Amount       float64 `json:"amount"`
	CreateCharge bool    `json:"create_charge"`
}

func (h *ReservationHandler) RecordPayout(w http.ResponseWriter, r *http.Request) {
	var req recordPayoutRequest
	if !decodeBody(w, r, &req) {
		return
	}
	res, err := h.svc.RecordOwnerPayout(r.Context(), mux.Vars(r)["id"], req.Amount, req.CreateCharge)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}
