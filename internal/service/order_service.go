package service

import (
	"context"
	"errors"

	"aura/internal/domain"
	"aura/internal/repository"
)

// OrderService операции админки над заказами: список, правка, статус,
// удаление. Заказы создаются только через CheckoutService
type OrderService struct {
	orders repository.OrderRepository
}

func NewOrderService(orders repository.OrderRepository) *OrderService {
	return &OrderService{orders: orders}
}

var ErrBadStatus = errors.New("unknown order status")

// List заказы от новых к старым
func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

func (s *OrderService) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return s.orders.GetByID(ctx, id)
}

// SetStatus выставляет статус заказа. Проверяется только принадлежность
// значению набора, направление перехода не ограничено
func (s *OrderService) SetStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	if !domain.ValidStatus(status) {
		return nil, ErrBadStatus
	}
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Status = status
	if err := s.orders.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// Update полная правка заказа админом
func (s *OrderService) Update(ctx context.Context, o domain.Order) (*domain.Order, error) {
	if o.ID == "" || o.CustomerInfo.FullName == "" || o.CustomerInfo.Phone == "" {
		return nil, ErrInvalidInput
	}
	if !domain.ValidStatus(o.Status) {
		return nil, ErrBadStatus
	}
	cp := o
	if err := s.orders.Update(ctx, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	return s.orders.Delete(ctx, id)
}
