package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"autoloc-backend/internal/service"
)

type ReportHandler struct {
	svc service.ReportService
}

func NewReportHandler(svc service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

func (h *ReportHandler) Register(r *mux.Router) {
	r.HandleFunc("/reports/profit", h.MonthlyProfit).Methods(http.MethodGet)
	r.HandleFunc("/reports/owner-statement/{vehicleId}", h.OwnerStatement).Methods(http.MethodGet)
}

// parseMonth reads the ?month=YYYY-MM query parameter, defaulting to the
// current month when absent.
func parseMonth(r *http.Request) (int, time.Month, bool) {
	raw := r.URL.Query().Get("month")
	if raw == "" {
		now := time.Now().UTC()
		return now.Year(), now.Month(), true
	}
	t, err := time.Parse("2006-01", raw)
	if err != nil {
		return 0, 0, false
	}
	return t.Year(), t.Month(), true
}

func (h *ReportHandler) MonthlyProfit(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parseMonth(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "month must be formatted YYYY-MM")
		return
	}
	report, err := h.svc.MonthlyProfit(r.Context(), year, month)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

func (h *ReportHandler) OwnerStatement(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parseMonth(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "month must be formatted YYYY-MM")
		return
	}
	statement, err := h.svc.OwnerStatement(r.Context(), mux.Vars(r)["vehicleId"], year, month)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, statement)
}
