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

type OrderService struct {
	orders  repository.OrderRepository
	clients repository.ClientRepository
	auditor *auditor
}

func NewOrderService(orders repository.OrderRepository, clients repository.ClientRepository, audit repository.AuditRepository) *OrderService {
	return &OrderService{
		orders:  orders,
		clients: clients,
		auditor: &auditor{repo: audit},
	}
}

type CreateOrderInput struct {
	DateOrder          time.Time
	NumberOrder        int
	ConsumptionAccount float64
	Balance            float64
	Total              float64
	ClientID           uuid.UUID
}

type UpdateOrderInput struct {
	ConsumptionAccount *float64
	Balance            *float64
	Total              *float64
	PaymentState       *domain.PaymentState
}

func (s *OrderService) List(ctx context.Context) ([]*domain.Order, error) {
	return s.orders.List(ctx)
}

func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) Create(ctx context.Context, input CreateOrderInput) (*domain.Order, error) {
	if _, err := s.clients.GetByID(ctx, input.ClientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("check client: %w", err)
	}

	if _, err := s.orders.GetByNumber(ctx, input.NumberOrder); err == nil {
		return nil, domain.ErrOrderNumberExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check order number: %w", err)
	}

	dateOrder := input.DateOrder
	if dateOrder.IsZero() {
		dateOrder = time.Now()
	}

	now := time.Now()
	order := &domain.Order{
		ID:                 uuid.New(),
		DateOrder:          dateOrder,
		NumberOrder:        input.NumberOrder,
		ConsumptionAccount: input.ConsumptionAccount,
		Balance:            input.Balance,
		Total:              input.Total,
		PaymentState:       domain.PaymentStatePending,
		IsActive:           true,
		ClientID:           input.ClientID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.auditor.record(ctx, domain.AuditEventCreate, "orders", order.ID, nil)
	return order, nil
}

func (s *OrderService) Update(ctx context.Context, id uuid.UUID, input UpdateOrderInput) (*domain.Order, error) {
	order, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.PaymentState != nil && !input.PaymentState.IsValid() {
		return nil, domain.ErrInvalidPaymentState
	}

	// Relations stay out of the audit diff.
	before := *order
	before.Client = nil

	if input.ConsumptionAccount != nil {
		order.ConsumptionAccount = *input.ConsumptionAccount
	}
	if input.Balance != nil {
		order.Balance = *input.Balance
	}
	if input.Total != nil {
		order.Total = *input.Total
	}
	if input.PaymentState != nil {
		order.PaymentState = *input.PaymentState
	}
	order.Client = nil

	if err := s.orders.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}

	s.auditor.record(ctx, domain.AuditEventUpdate, "orders", order.ID, diffChanges(&before, order))
	return order, nil
}

func (s *OrderService) Deactivate(ctx context.Context, id uuid.UUID) error {
	order, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	order.IsActive = false
	order.Client = nil
	if err := s.orders.Update(ctx, order); err != nil {
		return fmt.Errorf("deactivate order: %w", err)
	}

	s.auditor.record(ctx, domain.AuditEventDelete, "orders", id, nil)
	return nil
}
