package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"autoloc-backend/internal/service"
	"autoloc-backend/internal/storage"
)

// RouterDeps bundles everything the HTTP surface needs. MockStorage is nil
// in production, which leaves the mock photo endpoints unregistered.
type RouterDeps struct {
	Auth         Authenticator
	Vehicles     service.VehicleService
	Clients      service.ClientService
	Reservations service.ReservationService
	Charges      service.ChargeService
	Inspections  service.InspectionService
	Reports      service.ReportService
	MockStorage  *storage.MockStorage
}

// NewRouter builds the full route tree: unauthenticated health and metrics
// endpoints at the root, the business API under /api/v1 behind auth.
func NewRouter(deps RouterDeps) *mux.Router {
	root := mux.NewRouter()
	root.Use(MetricsMiddleware)

	root.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	root.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	if deps.MockStorage != nil {
		RegisterMockPhotoRoutes(root, deps.MockStorage)
	}

	api := root.PathPrefix("/api/v1").Subrouter()
	api.Use(AuthMiddleware(deps.Auth))

	NewVehicleHandler(deps.Vehicles).Register(api)
	NewClientHandler(deps.Clients).Register(api)
	NewReservationHandler(deps.Reservations).Register(api)
	NewChargeHandler(deps.Charges).Register(api)
	NewInspectionHandler(deps.Inspections).Register(api)
	NewReportHandler(deps.Reports).Register(api)

	return root
}
