package service

import (
	"context"
	"fmt"

	"autoloc-backend/internal/domain"
	"autoloc-backend/internal/repository"
)

type clientService struct {
	clientRepo repository.ClientRepository
}

func NewClientService(clientRepo repository.ClientRepository) ClientService {
	return &clientService{clientRepo: clientRepo}
}

func (s *clientService) AddClient(ctx context.Context, c *domain.Client) error {
	if c.LastName == "" {
		return fmt.Errorf("%w: last name is required", ErrInvalidInput)
	}
	return s.clientRepo.Create(ctx, c)
}

func (s *clientService) GetClient(ctx context.Context, id string) (*domain.Client, error) {
	return s.clientRepo.GetByID(ctx, id)
}

func (s *clientService) UpdateClient(ctx context.Context, c *domain.Client) error {
	if c.LastName == "" {
		return fmt.Errorf("%w: last name is required", ErrInvalidInput)
	}
	existing, err := s.clientRepo.GetByID(ctx, c.ID)
	if err != nil {
		return err
	}
	c.CreatedOn = existing.CreatedOn
	return s.clientRepo.Update(ctx, c)
}

func (s *clientService) DeleteClient(ctx context.Context, id string) error {
	return s.clientRepo.Delete(ctx, id)
}

func (s *clientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clientRepo.List(ctx)
}
