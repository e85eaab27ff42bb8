package service

import (
	"context"
	"time"

	"autoloc-backend/internal/domain"
	"autoloc-backend/internal/pricing"
	"autoloc-backend/internal/repository"
)

type reportService struct {
	vehicleRepo     repository.VehicleRepository
	reservationRepo repository.ReservationRepository
	chargeRepo      repository.ChargeRepository
}

func NewReportService(
	vehicleRepo repository.VehicleRepository,
	reservationRepo repository.ReservationRepository,
	chargeRepo repository.ChargeRepository,
) ReportService {
	return &reportService{
		vehicleRepo:     vehicleRepo,
		reservationRepo: reservationRepo,
		chargeRepo:      chargeRepo,
	}
}

// MonthlyProfit loads fresh snapshots and runs the pure aggregation. There is
// no caching; the report recomputes per request, so it always reflects the
// latest documents.
func (s *reportService) MonthlyProfit(ctx context.Context, year int, month time.Month) (*pricing.MonthlyReport, error) {
	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	reservations, err := s.reservationRepo.ListByMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}
	charges, err := s.chargeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return pricing.BuildMonthlyReport(year, month, vehicles, reservations, charges)
}

func (s *reportService) OwnerStatement(ctx context.Context, vehicleID string, year int, month time.Month) (*OwnerStatement, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.Financing != domain.FinancingRevenueShare {
		return nil, ErrNotRevenueShare
	}

	reservations, err := s.reservationRepo.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	statement := &OwnerStatement{
		VehicleID:        vehicle.ID,
		VehicleName:      vehicle.DisplayName(),
		OwnerName:        vehicle.OwnerName,
		OwnerEmail:       vehicle.OwnerEmail,
		Year:             year,
		Month:            month,
		OwnerDailyRate:   vehicle.OwnerDailyRate,
		OwnerWeekendRate: vehicle.OwnerWeekendRate,
	}

	for i := range reservations {
		r := &reservations[i]
		if !pricing.InMonth(r, year, month) || r.Status == domain.ReservationStatusCancelled {
			continue
		}
		amount, err := pricing.ReservationPayout(vehicle, r)
		if err != nil {
			return nil, err
		}
		days := 0
		if start, err := r.StartsAt(); err == nil {
			if end, err := r.EndsAt(); err == nil {
				days = pricing.RentalDays(start, end)
			}
		}
		statement.Lines = append(statement.Lines, OwnerStatementLine{
			ReservationID: r.ID,
			StartDate:     r.StartDate,
			EndDate:       r.EndDate,
			Days:          days,
			Amount:        amount,
			Explicit:      r.OwnerPayoutOverride != nil,
		})
		statement.Total += amount
	}

	return statement, nil
}
