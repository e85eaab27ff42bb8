package service

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"

	"autoloc-backend/internal/domain"
	"autoloc-backend/internal/repository"
	"autoloc-backend/internal/storage"
)

const photoURLExpiry = 15 * time.Minute

type inspectionService struct {
	inspectionRepo  repository.InspectionRepository
	reservationRepo repository.ReservationRepository
	store           storage.Interface
}

func NewInspectionService(
	inspectionRepo repository.InspectionRepository,
	reservationRepo repository.ReservationRepository,
	store storage.Interface,
) InspectionService {
	return &inspectionService{
		inspectionRepo:  inspectionRepo,
		reservationRepo: reservationRepo,
		store:           store,
	}
}

func (s *inspectionService) RecordInspection(ctx context.Context, ins *domain.Inspection) error {
	if ins.Kind != domain.InspectionCheckOut && ins.Kind != domain.InspectionCheckIn {
		return fmt.Errorf("%w: unknown inspection kind %q", ErrInvalidInput, ins.Kind)
	}
	if ins.OdometerKm < 0 {
		return fmt.Errorf("%w: odometer cannot be negative", ErrInvalidInput)
	}
	reservation, err := s.reservationRepo.GetByID(ctx, ins.ReservationID)
	if err != nil {
		return err
	}
	if reservation.Status == domain.ReservationStatusCancelled {
		return fmt.Errorf("%w: cancelled reservations have no inspections", ErrInvalidInput)
	}
	return s.inspectionRepo.Create(ctx, ins)
}

func (s *inspectionService) GetInspection(ctx context.Context, id string) (*domain.Inspection, error) {
	return s.inspectionRepo.GetByID(ctx, id)
}

func (s *inspectionService) ListByReservation(ctx context.Context, reservationID string) ([]domain.Inspection, error) {
	return s.inspectionRepo.ListByReservation(ctx, reservationID)
}

// PhotoUploadURL allocates a storage key under the inspection, records it on
// the inspection document and returns a presigned PUT URL for the client.
func (s *inspectionService) PhotoUploadURL(ctx context.Context, inspectionID, filename, contentType string) (string, string, error) {
	ins, err := s.inspectionRepo.GetByID(ctx, inspectionID)
	if err != nil {
		return "", "", err
	}

	key := fmt.Sprintf("inspections/%s/%s%s", ins.ID, uuid.NewString(), path.Ext(filename))
	url, err := s.store.GeneratePresignedUploadURL(ctx, key, contentType, photoURLExpiry)
	if err != nil {
		return "", "", fmt.Errorf("failed to presign upload: %w", err)
	}

	ins.PhotoKeys = append(ins.PhotoKeys, key)
	if err := s.inspectionRepo.Update(ctx, ins); err != nil {
		return "", "", err
	}
	return key, url, nil
}

func (s *inspectionService) PhotoDownloadURL(ctx context.Context, key string) (string, error) {
	exists, _, err := s.store.FileExists(ctx, key)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", repository.ErrNotFound
	}
	return s.store.GeneratePresignedDownloadURL(ctx, key, photoURLExpiry)
}
