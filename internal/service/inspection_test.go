package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"autoloc-backend/internal/domain"
	"autoloc-backend/internal/repository"
	"autoloc-backend/internal/storage"
)

func newInspectionFixture(t *testing.T) (*MockInspectionRepo, *MockReservationRepo, InspectionService) {
	t.Helper()
	inspectionRepo := new(MockInspectionRepo)
	reservationRepo := new(MockReservationRepo)
	store, err := storage.NewMockStorage("http://localhost:8080", t.TempDir())
	assert.NoError(t, err)
	svc := NewInspectionService(inspectionRepo, reservationRepo, store)
	return inspectionRepo, reservationRepo, svc
}

func TestRecordInspection(t *testing.T) {
	inspectionRepo, reservationRepo, svc := newInspectionFixture(t)
	ctx := context.Background()

	reservationRepo.On("GetByID", ctx, "res-1").Return(&domain.Reservation{
		ID: "res-1", Status: domain.ReservationStatusInProgress,
	}, nil)
	inspectionRepo.On("Create", ctx, mock.Anything).Return(nil)

	err := svc.RecordInspection(ctx, &domain.Inspection{
		ReservationID: "res-1",
		Kind:          domain.InspectionCheckOut,
		OdometerKm:    45210,
		FuelLevel:     domain.FuelFull,
	})
	assert.NoError(t, err)
}

func TestRecordInspection_RejectsUnknownKind(t *testing.T) {
	_, _, svc := newInspectionFixture(t)

	err := svc.RecordInspection(context.Background(), &domain.Inspection{
		ReservationID: "res-1",
		Kind:          "MID_RENTAL",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRecordInspection_RejectsCancelledReservation(t *testing.T) {
	_, reservationRepo, svc := newInspectionFixture(t)
	ctx := context.Background()

	reservationRepo.On("GetByID", ctx, "res-1").Return(&domain.Reservation{
		ID: "res-1", Status: domain.ReservationStatusCancelled,
	}, nil)

	err := svc.RecordInspection(ctx, &domain.Inspection{
		ReservationID: "res-1",
		Kind:          domain.InspectionCheckIn,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPhotoUploadURL(t *testing.T) {
	inspectionRepo, _, svc := newInspectionFixture(t)
	ctx := context.Background()

	ins := &domain.Inspection{ID: "ins-1", ReservationID: "res-1", Kind: domain.InspectionCheckOut}
	inspectionRepo.On("GetByID", ctx, "ins-1").Return(ins, nil)
	inspectionRepo.On("Update", ctx, mock.MatchedBy(func(i *domain.Inspection) bool {
		return len(i.PhotoKeys) == 1
	})).Return(nil)

	key, url, err := svc.PhotoUploadURL(ctx, "ins-1", "front-left.jpg", "image/jpeg")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "inspections/ins-1/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"))
	assert.Contains(t, url, "/api/v1/photos/upload/")
	inspectionRepo.AssertExpectations(t)
}

func TestPhotoDownloadURL_MissingFile(t *testing.T) {
	_, _, svc := newInspectionFixture(t)

	_, err := svc.PhotoDownloadURL(context.Background(), "inspections/ins-1/nope.jpg")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
