package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dcastro/clientadmin/internal/domain"
	"github.com/dcastro/clientadmin/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientService struct {
	clients repository.ClientRepository
	auditor *auditor
}

func NewClientService(clients repository.ClientRepository, audit repository.AuditRepository) *ClientService {
	return &ClientService{
		clients: clients,
		auditor: &auditor{repo: audit},
	}
}

type CreateClientInput struct {
	Name     string
	LastName string
	Address  string
	DNI      string
	Email    string
	Phone    string
}

type UpdateClientInput struct {
	Name     *string
	LastName *string
	Address  *string
	DNI      *string
	Email    *string
	Phone    *string
}

func (s *ClientService) List(ctx context.Context) ([]*domain.Client, error) {
	return s.clients.List(ctx)
}

func (s *ClientService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

func (s *ClientService) Create(ctx context.Context, input CreateClientInput) (*domain.Client, error) {
	now := time.Now()
	client := &domain.Client{
		ID:        uuid.New(),
		Name:      input.Name,
		LastName:  input.LastName,
		Address:   input.Address,
		DNI:       input.DNI,
		Email:     input.Email,
		Phone:     input.Phone,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.clients.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	s.auditor.record(ctx, domain.AuditEventCreate, "clients", client.ID, nil)
	return client, nil
}

func (s *ClientService) Update(ctx context.Context, id uuid.UUID, input UpdateClientInput) (*domain.Client, error) {
	client, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	before := *client

	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.LastName != nil {
		client.LastName = *input.LastName
	}
	if input.Address != nil {
		client.Address = *input.Address
	}
	if input.DNI != nil {
		client.DNI = *input.DNI
	}
	if input.Email != nil {
		client.Email = *input.Email
	}
	if input.Phone != nil {
		client.Phone = *input.Phone
	}

	if err := s.clients.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}

	s.auditor.record(ctx, domain.AuditEventUpdate, "clients", client.ID, diffChanges(&before, client))
	return client, nil
}

func (s *ClientService) Deactivate(ctx context.Context, id uuid.UUID) error {
	client, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	client.IsActive = false
	if err := s.clients.Update(ctx, client); err != nil {
		return fmt.Errorf("deactivate client: %w", err)
	}

	s.auditor.record(ctx, domain.AuditEventDelete, "clients", id, nil)
	return nil
}
