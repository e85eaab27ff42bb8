package service

import (
	"context"
	"errors"
	"time"

	"autoloc-backend/internal/domain"
	"autoloc-backend/internal/pricing"
)

// Validation failures surfaced to API handlers. Anything else bubbling out of
// a service is an infrastructure error.
var (
	ErrInvalidDateRange  = errors.New("return must be strictly after pickup")
	ErrTerminalState     = errors.New("reservation is completed or cancelled and can no longer be modified")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrNotRevenueShare   = errors.New("vehicle is not under revenue-share financing")
	ErrInvalidInput      = errors.New("invalid input")
)

type VehicleService interface {
	AddVehicle(ctx context.Context, v *domain.Vehicle) error
	GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, v *domain.Vehicle) error
	DeleteVehicle(ctx context.Context, id string) error
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
}

type ClientService interface {
	AddClient(ctx context.Context, c *domain.Client) error
	GetClient(ctx context.Context, id string) (*domain.Client, error)
	UpdateClient(ctx context.Context, c *domain.Client) error
	DeleteClient(ctx context.Context, id string) error
	ListClients(ctx context.Context) ([]domain.Client, error)
}

type ReservationService interface {
	// Quote computes the suggested price, day count, weekend flag and
	// included mileage for a prospective reservation. Pure read; the caller
	// decides when to merge the suggestion into its editable price field.
	Quote(ctx context.Context, vehicleID, startDate, startTime, endDate, endTime string) (*pricing.Quote, error)

	CreateReservation(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error)
	UpdateReservation(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error)
	ChangeStatus(ctx context.Context, id string, next domain.ReservationStatus) (*domain.Reservation, error)

	// RecordOwnerPayout stores an explicit owner payout override on the
	// reservation and, when createCharge is set, best-effort creates the
	// matching owner-payout charge for reporting. A failure of that side
	// write is logged and swallowed, never returned.
	RecordOwnerPayout(ctx context.Context, reservationID string, amount float64, createCharge bool) (*domain.Reservation, error)

	GetReservation(ctx context.Context, id string) (*domain.Reservation, error)
	ListReservations(ctx context.Context) ([]domain.Reservation, error)
	ListByVehicle(ctx context.Context, vehicleID string) ([]domain.Reservation, error)
}

type ChargeService interface {
	AddCharge(ctx context.Context, c *domain.Charge) error
	GetCharge(ctx context.Context, id string) (*domain.Charge, error)
	UpdateCharge(ctx context.Context, c *domain.Charge) error
	DeleteCharge(ctx context.Context, id string) error
	ListCharges(ctx context.Context) ([]domain.Charge, error)
}

type InspectionService interface {
	RecordInspection(ctx context.Context, ins *domain.Inspection) error
	GetInspection(ctx context.Context, id string) (*domain.Inspection, error)
	ListByReservation(ctx context.Context, reservationID string) ([]domain.Inspection, error)

	// PhotoUploadURL reserves a storage key for an inspection photo and
	// returns a presigned upload URL for it.
	PhotoUploadURL(ctx context.Context, inspectionID, filename, contentType string) (key string, url string, err error)
	PhotoDownloadURL(ctx context.Context, key string) (string, error)
}

// OwnerStatementLine details one reservation's contribution to a monthly
// owner statement.
type OwnerStatementLine struct {
	ReservationID string  `json:"reservation_id"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Days          int     `json:"days"`
	Amount        float64 `json:"amount"`
	Explicit      bool    `json:"explicit"` // true when an override was recorded
}

// OwnerStatement is the monthly payout summary for one revenue-share vehicle.
// OwnerWeekendRate is shown for transparency but never applied by the
// fallback computation.
type OwnerStatement struct {
	VehicleID        string               `json:"vehicle_id"`
	VehicleName      string               `json:"vehicle_name"`
	OwnerName        string               `json:"owner_name"`
	OwnerEmail       string               `json:"owner_email"`
	Year             int                  `json:"year"`
	Month            time.Month           `json:"month"`
	OwnerDailyRate   float64              `json:"owner_daily_rate"`
	OwnerWeekendRate float64              `json:"owner_weekend_rate,omitempty"`
	Lines            []OwnerStatementLine `json:"lines"`
	Total            float64              `json:"total"`
}

type ReportService interface {
	MonthlyProfit(ctx context.Context, year int, month time.Month) (*pricing.MonthlyReport, error)
	OwnerStatement(ctx context.Context, vehicleID string, year int, month time.Month) (*OwnerStatement, error)
}

type EmailService interface {
	SendReservationConfirmation(ctx context.Context, to, clientName, vehicleName, startDate, endDate string, amount float64) error
	SendReturnReminder(ctx context.Context, to, clientName, vehicleName, endDate string) error
	SendOwnerStatement(ctx context.Context, to, ownerName, vehicleName string, year int, month time.Month, total float64) error
}
