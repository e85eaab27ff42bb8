package service

import (
	"context"
	"fmt"

	"autoloc-backend/internal/domain"
	"autoloc-backend/internal/repository"
)

type chargeService struct {
	chargeRepo  repository.ChargeRepository
	vehicleRepo repository.VehicleRepository
}

func NewChargeService(chargeRepo repository.ChargeRepository, vehicleRepo repository.VehicleRepository) ChargeService {
	return &chargeService{chargeRepo: chargeRepo, vehicleRepo: vehicleRepo}
}

func (s *chargeService) validate(ctx context.Context, c *domain.Charge) error {
	if c.Label == "" {
		return fmt.Errorf("%w: label is required", ErrInvalidInput)
	}
	if c.Amount < 0 {
		return fmt.Errorf("%w: amount cannot be negative", ErrInvalidInput)
	}
	if !c.Frequency.Valid() {
		return fmt.Errorf("%w: unknown frequency %q", ErrInvalidInput, c.Frequency)
	}
	if c.VehicleID != "" {
		if _, err := s.vehicleRepo.GetByID(ctx, c.VehicleID); err != nil {
			return err
		}
	}
	return nil
}

func (s *chargeService) AddCharge(ctx context.Context, c *domain.Charge) error {
	if err := s.validate(ctx, c); err != nil {
		return err
	}
	return s.chargeRepo.Create(ctx, c)
}

func (s *chargeService) GetCharge(ctx context.Context, id string) (*domain.Charge, error) {
	return s.chargeRepo.GetByID(ctx, id)
}

func (s *chargeService) UpdateCharge(ctx context.Context, c *domain.Charge) error {
	if err := s.validate(ctx, c); err != nil {
		return err
	}
	existing, err := s.chargeRepo.GetByID(ctx, c.ID)
	if err != nil {
		return err
	}
	c.CreatedOn = existing.CreatedOn
	return s.chargeRepo.Update(ctx, c)
}

func (s *chargeService) DeleteCharge(ctx context.Context, id string) error {
	return s.chargeRepo.Delete(ctx, id)
}

func (s *chargeService) ListCharges(ctx context.Context) ([]domain.Charge, error) {
	return s.chargeRepo.List(ctx)
}
