package service

import (
	"context"
	"fmt"

	"autoloc-backend/internal/domain"
	"autoloc-backend/internal/repository"
)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
}

func NewVehicleService(vehicleRepo repository.VehicleRepository) VehicleService {
	return &vehicleService{vehicleRepo: vehicleRepo}
}

func (s *vehicleService) validate(v *domain.Vehicle) error {
	if v.Make == "" || v.Model == "" {
		return fmt.Errorf("%w: make and model are required", ErrInvalidInput)
	}
	if !v.Financing.Valid() {
		return fmt.Errorf("%w: unknown financing mode %q", ErrInvalidInput, v.Financing)
	}
	if v.DailyRate < 0 || v.WeekendRate < 0 {
		return fmt.Errorf("%w: rates cannot be negative", ErrInvalidInput)
	}
	if v.Financing == domain.FinancingRevenueShare && v.OwnerDailyRate < 0 {
		return fmt.Errorf("%w: owner daily rate cannot be negative", ErrInvalidInput)
	}
	if !v.IncludedKmPerDay.Unlimited && v.IncludedKmPerDay.Km < 0 {
		return fmt.Errorf("%w: included mileage cannot be negative", ErrInvalidInput)
	}
	return nil
}

func (s *vehicleService) AddVehicle(ctx context.Context, v *domain.Vehicle) error {
	if err := s.validate(v); err != nil {
		return err
	}
	if v.Status == "" {
		v.Status = domain.VehicleStatusAvailable
	}
	return s.vehicleRepo.Create(ctx, v)
}

func (s *vehicleService) GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id)
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, v *domain.Vehicle) error {
	if err := s.validate(v); err != nil {
		return err
	}
	existing, err := s.vehicleRepo.GetByID(ctx, v.ID)
	if err != nil {
		return err
	}
	v.CreatedOn = existing.CreatedOn
	return s.vehicleRepo.Update(ctx, v)
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, id string) error {
	return s.vehicleRepo.Delete(ctx, id)
}

func (s *vehicleService) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicleRepo.List(ctx)
}
