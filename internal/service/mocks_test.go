package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"autoloc-backend/internal/domain"
)

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) Create(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleRepo) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) Update(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockVehicleRepo) List(ctx context.Context) ([]domain.Vehicle, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

// MockClientRepo
type MockClientRepo struct {
	mock.Mock
}

func (m *MockClientRepo) Create(ctx context.Context, c *domain.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockClientRepo) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientRepo) Update(ctx context.Context, c *domain.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockClientRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockClientRepo) List(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Client), args.Error(1)
}

// MockReservationRepo
type MockReservationRepo struct {
	mock.Mock
}

func (m *MockReservationRepo) Create(ctx context.Context, r *domain.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockReservationRepo) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) Update(ctx context.Context, r *domain.Reservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockReservationRepo) List(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) ListByVehicle(ctx context.Context, vehicleID string) ([]domain.Reservation, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) ListByMonth(ctx context.Context, year int, month time.Month) ([]domain.Reservation, error) {
	args := m.Called(ctx, year, month)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) ListByStatus(ctx context.Context, status domain.ReservationStatus) ([]domain.Reservation, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

// MockChargeRepo
type MockChargeRepo struct {
	mock.Mock
}

func (m *MockChargeRepo) Create(ctx context.Context, c *domain.Charge) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockChargeRepo) GetByID(ctx context.Context, id string) (*domain.Charge, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Charge), args.Error(1)
}
func (m *MockChargeRepo) Update(ctx context.Context, c *domain.Charge) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockChargeRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockChargeRepo) List(ctx context.Context) ([]domain.Charge, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Charge), args.Error(1)
}
func (m *MockChargeRepo) ListByVehicle(ctx context.Context, vehicleID string) ([]domain.Charge, error) {
	args := m.Called(ctx, vehicleID)
	return args.Get(0).([]domain.Charge), args.Error(1)
}

// MockInspectionRepo
type MockInspectionRepo struct {
	mock.Mock
}

func (m *MockInspectionRepo) Create(ctx context.Context, i *domain.Inspection) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}
func (m *MockInspectionRepo) GetByID(ctx context.Context, id string) (*domain.Inspection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inspection), args.Error(1)
}
func (m *MockInspectionRepo) Update(ctx context.Context, i *domain.Inspection) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}
func (m *MockInspectionRepo) ListByReservation(ctx context.Context, reservationID string) ([]domain.Inspection, error) {
	args := m.Called(ctx, reservationID)
	return args.Get(0).([]domain.Inspection), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendReservationConfirmation(ctx context.Context, to, clientName, vehicleName, startDate, endDate string, amount float64) error {
	args := m.Called(ctx, to, clientName, vehicleName, startDate, endDate, amount)
	return args.Error(0)
}
func (m *MockEmailService) SendReturnReminder(ctx context.Context, to, clientName, vehicleName, endDate string) error {
	args := m.Called(ctx, to, clientName, vehicleName, endDate)
	return args.Error(0)
}
func (m *MockEmailService) SendOwnerStatement(ctx context.Context, to, ownerName, vehicleName string, year int, month time.Month, total float64) error {
	args := m.Called(ctx, to, ownerName, vehicleName, year, month, total)
	return args.Error(0)
}
