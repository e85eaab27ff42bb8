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

type clientRepository struct {
	client *firestore.Client
}

func NewClientRepository(client *firestore.Client) repository.ClientRepository {
	return &clientRepository{client: client}
}

func (r *clientRepository) Create(ctx context.Context, c *domain.Client) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	c.CreatedOn = now
	c.UpdatedOn = now

	logger.DatabaseCall("create", colClients, "id", c.ID)
	_, err := r.client.Collection(colClients).Doc(c.ID).Set(ctx, c)
	return err
}

func (r *clientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	snap, err := r.client.Collection(colClients).Doc(id).Get(ctx)
	if err != nil {
		return nil, notFound(snap, err)
	}
	var c domain.Client
	if err := snap.DataTo(&c); err != nil {
		return nil, err
	}
	c.ID = snap.Ref.ID
	return &c, nil
}

func (r *clientRepository) Update(ctx context.Context, c *domain.Client) error {
	c.UpdatedOn = time.Now().UTC()
	logger.DatabaseCall("update", colClients, "id", c.ID)
	_, err := r.client.Collection(colClients).Doc(c.ID).Set(ctx, c)
	return err
}

func (r *clientRepository) Delete(ctx context.Context, id string) error {
	c, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	c.DeletedOn = &now
	return r.Update(ctx, c)
}

func (r *clientRepository) List(ctx context.Context) ([]domain.Client, error) {
	iter := r.client.Collection(colClients).Documents(ctx)
	defer iter.Stop()

	var clients []domain.Client
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var c domain.Client
		if err := snap.DataTo(&c); err != nil {
			return nil, err
		}
		if c.DeletedOn != nil {
			continue
		}
		c.ID = snap.Ref.ID
		clients = append(clients, c)
	}
	return clients, nil
}
