package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"aura/internal/cart"
	"aura/internal/domain"
	"aura/internal/email"
	"aura/internal/repository"
)

// CheckoutService оформление заказа: Editing → Submitting → Success/Failed.
// Письмо уходит синхронно, запись заказа — фоновой задачей, ошибка
// которой логируется и не показывается покупателю
type CheckoutService struct {
	carts  *cart.Store
	orders repository.OrderRepository
	mailer email.Mailer
	// единственный канал для ошибок фоновой записи заказа
	errLog *log.Logger
}

func NewCheckoutService(carts *cart.Store, orders repository.OrderRepository, mailer email.Mailer, errLog *log.Logger) *CheckoutService {
	return &CheckoutService{carts: carts, orders: orders, mailer: mailer, errLog: errLog}
}

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrMissingName     = errors.New("full name is required")
	ErrMissingPhone    = errors.New("phone is required")
	ErrMissingDistrict = errors.New("district is required")
	ErrEmailSend       = errors.New("order notification failed")
)

// Confirmation результат успешного оформления. Reference — случайный
// код для экрана подтверждения, не идентификатор записи заказа
type Confirmation struct {
	Reference string `json:"reference"`
	Total     int64  `json:"total"`
}

// Submit выполняет весь проход: валидация, письмо, фоновая запись,
// очистка корзины. При ошибке письма корзина не трогается и заказ
// не создаётся — покупатель может повторить отправку
func (s *CheckoutService) Submit(ctx context.Context, cartID string, info domain.CustomerInfo) (*Confirmation, error) {
	state := s.carts.Get(cartID)
	if len(state.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if err := validateCustomer(info); err != nil {
		return nil, err
	}

	items := FormatItems(state.Items)
	err := s.mailer.SendOrder(ctx, email.OrderEmail{
		CustomerName:     info.FullName,
		CustomerEmail:    info.Email,
		CustomerPhone:    info.Phone,
		CustomerDistrict: info.District,
		CustomerComment:  info.Comment,
		OrderItems:       items,
		OrderTotal:       fmt.Sprintf("%d FDJ", state.Total),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmailSend, err)
	}

	order := domain.Order{
		CustomerInfo: info,
		Items:        items,
		Total:        state.Total,
		Status:       domain.OrderStatusNew,
	}
	go s.persist(order)

	s.carts.Clear(cartID)
	return &Confirmation{Reference: newReference(), Total: order.Total}, nil
}

// persist пишет заказ вне запроса; неудача не видна покупателю,
// но всегда попадает в журнал
func (s *CheckoutService) persist(o domain.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.orders.Create(ctx, &o); err != nil {
		s.errLog.Printf("order persist failed (customer %s): %v", o.CustomerInfo.Phone, err)
	}
}

func validateCustomer(info domain.CustomerInfo) error {
	if strings.TrimSpace(info.FullName) == "" {
		return ErrMissingName
	}
	if strings.TrimSpace(info.Phone) == "" {
		return ErrMissingPhone
	}
	if strings.TrimSpace(info.District) == "" {
		return ErrMissingDistrict
	}
	return nil
}

// FormatItems собирает позиции корзины в текстовый блок письма и
// записи заказа
func FormatItems(items []domain.CartItem) string {
	blocks := make([]string, 0, len(items))
	for _, it := range items {
		blocks = append(blocks, fmt.Sprintf(
			"Produit: %s\nTaille: %s\nCouleur: %s\nQuantité: %d\nPrix unitaire: %d FDJ\nSous-total: %d FDJ",
			it.Name, it.SelectedSize, it.SelectedColor, it.Quantity, it.Price, it.Subtotal()))
	}
	return strings.Join(blocks, "\n\n")
}

const referenceAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// newReference случайный код подтверждения из 8 знаков
func newReference() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		// крайне маловероятно; код только для показа покупателю
		return "AURA0000"
	}
	for i, b := range buf {
		buf[i] = referenceAlphabet[int(b)%len(referenceAlphabet)]
	}
	return string(buf)
}
