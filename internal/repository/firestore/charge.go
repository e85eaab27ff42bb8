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

type chargeRepository struct {
	client *firestore.Client
}

func NewChargeRepository(client *firestore.Client) repository.ChargeRepository {
	return &chargeRepository{client: client}
}

func (r *chargeRepository) Create(ctx context.Context, c *domain.Charge) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	c.CreatedOn = now
	c.UpdatedOn = now

	logger.DatabaseCall("create", colCharges, "id", c.ID)
	_, err := r.client.Collection(colCharges).Doc(c.ID).Set(ctx, c)
	return err
}

func (r *chargeRepository) GetByID(ctx context.Context, id string) (*domain.Charge, error) {
	snap, err := r.client.Collection(colCharges).Doc(id).Get(ctx)
	if err != nil {
		return nil, notFound(snap, err)
	}
	var c domain.Charge
	if err := snap.DataTo(&c); err != nil {
		return nil, err
	}
	c.ID = snap.Ref.ID
	return &c, nil
}

func (r *chargeRepository) Update(ctx context.Context, c *domain.Charge) error {
	c.UpdatedOn = time.Now().UTC()
	logger.DatabaseCall("update", colCharges, "id", c.ID)
	_, err := r.client.Collection(colCharges).Doc(c.ID).Set(ctx, c)
	return err
}

func (r *chargeRepository) Delete(ctx context.Context, id string) error {
	logger.DatabaseCall("delete", colCharges, "id", id)
	_, err := r.client.Collection(colCharges).Doc(id).Delete(ctx)
	return err
}

func (r *chargeRepository) List(ctx context.Context) ([]domain.Charge, error) {
	return r.collect(r.client.Collection(colCharges).Documents(ctx))
}

func (r *chargeRepository) ListByVehicle(ctx context.Context, vehicleID string) ([]domain.Charge, error) {
	q := r.client.Collection(colCharges).Where("vehicle_id", "==", vehicleID)
	return r.collect(q.Documents(ctx))
}

func (r *chargeRepository) collect(iter *firestore.DocumentIterator) ([]domain.Charge, error) {
	defer iter.Stop()

	var charges []domain.Charge
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var c domain.Charge
		if err := snap.DataTo(&c); err != nil {
			return nil, err
		}
		c.ID = snap.Ref.ID
		charges = append(charges, c)
	}
	return charges, nil
}
