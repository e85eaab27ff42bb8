package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"autoloc-backend/internal/domain"
	"autoloc-backend/internal/logger"
	"autoloc-backend/internal/repository"
)

type inspectionRepository struct {
	client *firestore.Client
}

func NewInspectionRepository(client *firestore.Client) repository.InspectionRepository {
	return &inspectionRepository{client: client}
}

func (r *inspectionRepository) Create(ctx context.Context, ins *domain.Inspection) error {
	if ins.ID == "" {
		ins.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	ins.CreatedOn = now
	ins.UpdatedOn = now

	logger.DatabaseCall("create", colInspections, "id", ins.ID)
	_, err := r.client.Collection(colInspections).Doc(ins.ID).Set(ctx, ins)
	return err
}

func (r *inspectionRepository) GetByID(ctx context.Context, id string) (*domain.Inspection, error) {
	snap, err := r.client.Collection(colInspections).Doc(id).Get(ctx)
	if err != nil {
		return nil, notFound(snap, err)
	}
	var ins domain.Inspection
	if err := snap.DataTo(&ins); err != nil {
		return nil, err
	}
	ins.ID = snap.Ref.ID
	return &ins, nil
}

func (r *inspectionRepository) Update(ctx context.Context, ins *domain.Inspection) error {
	ins.UpdatedOn = time.Now().UTC()
	logger.DatabaseCall("update", colInspections, "id", ins.ID)
	_, err := r.client.Collection(colInspections).Doc(ins.ID).Set(ctx, ins)
	return err
}

func (r *inspectionRepository) ListByReservation(ctx context.Context, reservationID string) ([]domain.Inspection, error) {
	iter := r.client.Collection(colInspections).Where("reservation_id", "==", reservationID).Documents(ctx)
	defer iter.Stop()

	var inspections []domain.Inspection
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var ins domain.Inspection
		if err := snap.DataTo(&ins); err != nil {
			return nil, err
		}
		ins.ID = snap.Ref.ID
		inspections = append(inspections, ins)
	}
	return inspections, nil
}
