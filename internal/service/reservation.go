package service

import (
	"context"
	"fmt"

	"autoloc-backend/internal/domain"
	"autoloc-backend/internal/logger"
	"autoloc-backend/internal/pricing"
	"autoloc-backend/internal/repository"
)

type reservationService struct {
	reservationRepo repository.ReservationRepository
	vehicleRepo     repository.VehicleRepository
	clientRepo      repository.ClientRepository
	chargeRepo      repository.ChargeRepository
	emailSvc        EmailService
}

func NewReservationService(
	reservationRepo repository.ReservationRepository,
	vehicleRepo repository.VehicleRepository,
	clientRepo repository.ClientRepository,
	chargeRepo repository.ChargeRepository,
	emailSvc EmailService,
) ReservationService {
	return &reservationService{
		reservationRepo: reservationRepo,
		vehicleRepo:     vehicleRepo,
		clientRepo:      clientRepo,
		chargeRepo:      chargeRepo,
		emailSvc:        emailSvc,
	}
}

func (s *reservationService) Quote(ctx context.Context, vehicleID, startDate, startTime, endDate, endTime string) (*pricing.Quote, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	start, err := domain.CombineDateTime(startDate, startTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	end, err := domain.CombineDateTime(endDate, endTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	q := pricing.QuoteReservation(vehicle, start, end)
	return &q, nil
}

// validateSpan enforces the save-time invariant the pricing core leaves to
// callers: the return instant, date and time combined, must be strictly
// after the pickup instant.
func (s *reservationService) validateSpan(r *domain.Reservation) error {
	start, err := r.StartsAt()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	end, err := r.EndsAt()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !end.After(start) {
		return ErrInvalidDateRange
	}
	return nil
}

func (s *reservationService) CreateReservation(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, r.VehicleID)
	if err != nil {
		return nil, err
	}
	client, err := s.clientRepo.GetByID(ctx, r.ClientID)
	if err != nil {
		return nil, err
	}
	if err := s.validateSpan(r); err != nil {
		return nil, err
	}

	if r.Status == "" {
		r.Status = domain.ReservationStatusPlanned
	}
	if r.Status != domain.ReservationStatusPlanned {
		return nil, fmt.Errorf("%w: new reservations start as %s", ErrInvalidInput, domain.ReservationStatusPlanned)
	}

	// Seed the price from the suggestion unless the caller explicitly edited
	// it. The flag, not value equality, decides ownership of the field.
	if !r.PriceEdited {
		start, _ := r.StartsAt()
		end, _ := r.EndsAt()
		r.RentalAmount = pricing.SuggestedPrice(vehicle, start, end)
	}

	if err := s.reservationRepo.Create(ctx, r); err != nil {
		return nil, err
	}

	if client.Email != "" {
		if err := s.emailSvc.SendReservationConfirmation(ctx, client.Email, client.FullName(), vehicle.DisplayName(), r.StartDate, r.EndDate, r.RentalAmount); err != nil {
			logger.Warn("Failed to send reservation confirmation", "reservation_id", r.ID, "error", err)
		}
	}

	return r, nil
}

func (s *reservationService) UpdateReservation(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	existing, err := s.reservationRepo.GetByID(ctx, r.ID)
	if err != nil {
		return nil, err
	}
	if existing.Status.IsTerminal() {
		return nil, ErrTerminalState
	}
	if err := s.validateSpan(r); err != nil {
		return nil, err
	}

	// Status changes go through ChangeStatus; edits keep the current one.
	r.Status = existing.Status
	r.CreatedOn = existing.CreatedOn

	if err := s.reservationRepo.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *reservationService) ChangeStatus(ctx context.Context, id string, next domain.ReservationStatus) (*domain.Reservation, error) {
	r, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.Status.IsTerminal() {
		return nil, ErrTerminalState
	}
	if !r.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s → %s", ErrInvalidTransition, r.Status, next)
	}
	r.Status = next
	if err := s.reservationRepo.Update(ctx, r); err != nil {
		return nil, err
	}
	logger.Info("Reservation status changed", "reservation_id", r.ID, "status", next)
	return r, nil
}

func (s *reservationService) RecordOwnerPayout(ctx context.Context, reservationID string, amount float64, createCharge bool) (*domain.Reservation, error) {
	r, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if r.Status == domain.ReservationStatusCancelled {
		return nil, fmt.Errorf("%w: cancelled reservations have no owner payout", ErrInvalidInput)
	}
	vehicle, err := s.vehicleRepo.GetByID(ctx, r.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.Financing != domain.FinancingRevenueShare {
		return nil, ErrNotRevenueShare
	}
	if amount < 0 {
		return nil, fmt.Errorf("%w: payout cannot be negative", ErrInvalidInput)
	}

	r.OwnerPayoutOverride = &amount
	if err := s.reservationRepo.Update(ctx, r); err != nil {
		return nil, err
	}

	// Best-effort companion charge for reporting. The payout itself is
	// already recorded on the reservation; a failure here is logged and
	// swallowed, never propagated, and the update above is not rolled back.
	if createCharge {
		charge := &domain.Charge{
			Label:         fmt.Sprintf("Owner payout %s", vehicle.DisplayName()),
			Amount:        amount,
			Frequency:     domain.FrequencyMonthly,
			VehicleID:     vehicle.ID,
			OwnerPayout:   true,
			ReservationID: r.ID,
		}
		if err := s.chargeRepo.Create(ctx, charge); err != nil {
			logger.Warn("Failed to create owner payout charge",
				"reservation_id", r.ID,
				"vehicle_id", vehicle.ID,
				"amount", amount,
				"error", err)
		}
	}

	return r, nil
}

func (s *reservationService) GetReservation(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.reservationRepo.GetByID(ctx, id)
}

func (s *reservationService) ListReservations(ctx context.Context) ([]domain.Reservation, error) {
	return s.reservationRepo.List(ctx)
}

func (s *reservationService) ListByVehicle(ctx context.Context, vehicleID string) ([]domain.Reservation, error) {
	return s.reservationRepo.ListByVehicle(ctx, vehicleID)
}
