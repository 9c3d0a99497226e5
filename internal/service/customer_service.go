package service

import (
	"context"
	"sort"

	"aura/internal/domain"
	"aura/internal/repository"
)

// CustomerService производное представление клиентов: отдельной
// сущности в хранилище нет, клиент — это группа заказов с одним
// телефоном
type CustomerService struct {
	orders repository.OrderRepository
}

func NewCustomerService(orders repository.OrderRepository) *CustomerService {
	return &CustomerService{orders: orders}
}

// Customer группа заказов одного телефона
type Customer struct {
	Info       domain.CustomerInfo `json:"info"`
	Orders     []domain.Order      `json:"orders"`
	OrderCount int                 `json:"order_count"`
	TotalSpent int64               `json:"total_spent"`
}

// CustomerUpdate правка контактных полей, применяется ко всем заказам группы
type CustomerUpdate struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	District string `json:"district"`
}

// List собирает клиентов группировкой заказов по телефону. Контактные
// данные берутся из самого свежего заказа группы
func (s *CustomerService) List(ctx context.Context) ([]Customer, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	byPhone := make(map[string]*Customer)
	for _, o := range orders {
		phone := o.CustomerInfo.Phone
		c, ok := byPhone[phone]
		if !ok {
			// orders come newest first, the first hit carries current info
			c = &Customer{Info: o.CustomerInfo}
			byPhone[phone] = c
		}
		c.Orders = append(c.Orders, o)
		c.OrderCount++
		c.TotalSpent += o.Total
	}
	out := make([]Customer, 0, len(byPhone))
	for _, c := range byPhone {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Info.Phone < out[j].Info.Phone })
	return out, nil
}

// Update правит контактные поля каждого заказа с данным телефоном.
// Записи идут последовательно без транзакции: при ошибке в середине
// уже пройденные заказы остаются обновлёнными
func (s *CustomerService) Update(ctx context.Context, phone string, upd CustomerUpdate) error {
	if phone == "" || upd.FullName == "" || upd.District == "" {
		return ErrInvalidInput
	}
	orders, err := s.ordersByPhone(ctx, phone)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		return repository.ErrNotFound
	}
	for _, o := range orders {
		o.CustomerInfo.FullName = upd.FullName
		o.CustomerInfo.Email = upd.Email
		o.CustomerInfo.District = upd.District
		if err := s.orders.Update(ctx, &o); err != nil {
			return err
		}
	}
	return nil
}

// Delete удаляет все заказы клиента, по одному
func (s *CustomerService) Delete(ctx context.Context, phone string) error {
	if phone == "" {
		return ErrInvalidInput
	}
	orders, err := s.ordersByPhone(ctx, phone)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		return repository.ErrNotFound
	}
	for _, o := range orders {
		if err := s.orders.Delete(ctx, o.ID); err != nil {
			return err
		}
	}
	return nil
}

func (s *CustomerService) ordersByPhone(ctx context.Context, phone string) ([]domain.Order, error) {
	all, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Order, 0)
	for _, o := range all {
		if o.CustomerInfo.Phone == phone {
			out = append(out, o)
		}
	}
	return out, nil
}
