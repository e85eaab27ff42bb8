package repository

import (
	"context"
	"errors"
	"time"

	"autoloc-backend/internal/domain"
)

// ErrNotFound is returned by Get operations when no document exists for the
// given ID, regardless of backend.
var ErrNotFound = errors.New("record not found")

type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	Delete(ctx context.Context, id string) error // soft delete
	List(ctx context.Context) ([]domain.Vehicle, error)
}

type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id string) error // soft delete
	List(ctx context.Context) ([]domain.Client, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	Update(ctx context.Context, r *domain.Reservation) error
	List(ctx context.Context) ([]domain.Reservation, error)
	ListByVehicle(ctx context.Context, vehicleID string) ([]domain.Reservation, error)
	ListByMonth(ctx context.Context, year int, month time.Month) ([]domain.Reservation, error)
	ListByStatus(ctx context.Context, status domain.ReservationStatus) ([]domain.Reservation, error)
}

type ChargeRepository interface {
	Create(ctx context.Context, c *domain.Charge) error
	GetByID(ctx context.Context, id string) (*domain.Charge, error)
	Update(ctx context.Context, c *domain.Charge) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Charge, error)
	ListByVehicle(ctx context.Context, vehicleID string) ([]domain.Charge, error)
}

type InspectionRepository interface {
	Create(ctx context.Context, i *domain.Inspection) error
	GetByID(ctx context.Context, id string) (*domain.Inspection, error)
	Update(ctx context.Context, i *domain.Inspection) error
	ListByReservation(ctx context.Context, reservationID string) ([]domain.Inspection, error)
}
