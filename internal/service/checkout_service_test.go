package service

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"aura/internal/cart"
	"aura/internal/domain"
	"aura/internal/email"
	"aura/internal/repository"
)

type fakeMailer struct {
	err       error
	lastOrder *email.OrderEmail
}

func (m *fakeMailer) SendOrder(ctx context.Context, p email.OrderEmail) error {
	if m.err != nil {
		return m.err
	}
	m.lastOrder = &p
	return nil
}

func (m *fakeMailer) SendContact(ctx context.Context, p email.ContactEmail) error {
	return m.err
}

func checkoutSetup(t *testing.T, mailer email.Mailer) (*CheckoutService, *cart.Store, repository.OrderRepository) {
	t.Helper()
	carts := cart.NewStore()
	orders := repository.NewMemoryOrders(repository.NewMemoryStore())
	svc := NewCheckoutService(carts, orders, mailer, log.New(io.Discard, "", 0))
	return svc, carts, orders
}

func fillCart(carts *cart.Store, sid string) {
	p := domain.Product{ID: "p1", Name: "Chemise lin", Price: 1500, Category: domain.CategoryMen}
	carts.Dispatch(sid, cart.Action{Type: cart.ActionAdd, Product: p, Size: "M", Color: "blanc"})
	carts.Dispatch(sid, cart.Action{Type: cart.ActionAdd, Product: p, Size: "M", Color: "blanc"})
}

func customer() domain.CustomerInfo {
	return domain.CustomerInfo{FullName: "Ali Omar", Phone: "77101010", District: "Balbala"}
}

func waitForOrders(t *testing.T, orders repository.OrderRepository, n int) []domain.Order {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		list, err := orders.List(context.Background())
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(list) >= n {
			return list
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("order persistence did not complete")
	return nil
}

func TestSubmit_Success(t *testing.T) {
	mailer := &fakeMailer{}
	svc, carts, orders := checkoutSetup(t, mailer)
	fillCart(carts, "s1")

	conf, err := svc.Submit(context.Background(), "s1", customer())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(conf.Reference) != 8 || conf.Reference != strings.ToUpper(conf.Reference) {
		t.Fatalf("unexpected reference %q", conf.Reference)
	}
	if conf.Total != 3000 {
		t.Fatalf("expected total 3000, got %d", conf.Total)
	}

	// cart cleared
	if got := carts.Get("s1"); len(got.Items) != 0 || got.Total != 0 {
		t.Fatalf("expected cleared cart, got %+v", got)
	}

	// order persisted in the background with status new
	list := waitForOrders(t, orders, 1)
	o := list[0]
	if o.Status != domain.OrderStatusNew || o.Total != 3000 {
		t.Fatalf("unexpected order: %+v", o)
	}
	if !strings.Contains(o.Items, "Produit: Chemise lin") {
		t.Fatalf("items block missing product: %q", o.Items)
	}
	if o.CustomerInfo.Phone != "77101010" {
		t.Fatalf("customer info not embedded: %+v", o.CustomerInfo)
	}

	// the email carried the same formatted block and total
	if mailer.lastOrder == nil || mailer.lastOrder.OrderTotal != "3000 FDJ" {
		t.Fatalf("unexpected email params: %+v", mailer.lastOrder)
	}
}

func TestSubmit_EmptyCart(t *testing.T) {
	svc, _, _ := checkoutSetup(t, &fakeMailer{})

	if _, err := svc.Submit(context.Background(), "s1", customer()); err != ErrEmptyCart {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestSubmit_MissingRequiredFields(t *testing.T) {
	mailer := &fakeMailer{}
	svc, carts, _ := checkoutSetup(t, mailer)
	fillCart(carts, "s1")

	cases := []struct {
		info domain.CustomerInfo
		want error
	}{
		{domain.CustomerInfo{Phone: "77101010", District: "Balbala"}, ErrMissingName},
		{domain.CustomerInfo{FullName: "Ali", District: "Balbala"}, ErrMissingPhone},
		{domain.CustomerInfo{FullName: "Ali", Phone: "77101010"}, ErrMissingDistrict},
	}
	for _, tc := range cases {
		if _, err := svc.Submit(context.Background(), "s1", tc.info); err != tc.want {
			t.Fatalf("info %+v: expected %v, got %v", tc.info, tc.want, err)
		}
	}
	if mailer.lastOrder != nil {
		t.Fatalf("no email should be sent on validation failure")
	}
}

func TestSubmit_EmailFailureKeepsCart(t *testing.T) {
	svc, carts, orders := checkoutSetup(t, &fakeMailer{err: errors.New("smtp down")})
	fillCart(carts, "s1")

	_, err := svc.Submit(context.Background(), "s1", customer())
	if !errors.Is(err, ErrEmailSend) {
		t.Fatalf("expected ErrEmailSend, got %v", err)
	}

	// cart untouched, nothing persisted: the customer can retry
	if got := carts.Get("s1"); len(got.Items) == 0 {
		t.Fatalf("cart must survive a failed send")
	}
	time.Sleep(50 * time.Millisecond)
	list, _ := orders.List(context.Background())
	if len(list) != 0 {
		t.Fatalf("no order may be written on email failure, got %d", len(list))
	}
}

func TestFormatItems(t *testing.T) {
	items := []domain.CartItem{
		{
			Product:       domain.Product{ID: "p1", Name: "Chemise lin", Price: 1500},
			SelectedSize:  "M",
			SelectedColor: "blanc",
			Quantity:      2,
		},
		{
			Product:       domain.Product{ID: "p2", Name: "Robe", Price: 4000},
			SelectedSize:  "S",
			SelectedColor: "bleu",
			Quantity:      1,
		},
	}
	got := FormatItems(items)

	want := "Produit: Chemise lin\nTaille: M\nCouleur: blanc\nQuantité: 2\nPrix unitaire: 1500 FDJ\nSous-total: 3000 FDJ\n\n" +
		"Produit: Robe\nTaille: S\nCouleur: bleu\nQuantité: 1\nPrix unitaire: 4000 FDJ\nSous-total: 4000 FDJ"
	if got != want {
		t.Fatalf("unexpected block:\n%q", got)
	}
}

func TestContactService(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewContactService(mailer)
	ctx := context.Background()

	if err := svc.Send(ctx, email.ContactEmail{Name: "Ali", Message: "Bonjour"}); err != nil {
		t.Fatalf("send: %v", err)
	}
	if err := svc.Send(ctx, email.ContactEmail{Message: "Bonjour"}); err != ErrMissingName {
		t.Fatalf("expected ErrMissingName, got %v", err)
	}
	if err := svc.Send(ctx, email.ContactEmail{Name: "Ali"}); err != ErrMissingMessage {
		t.Fatalf("expected ErrMissingMessage, got %v", err)
	}

	broken := NewContactService(&fakeMailer{err: errors.New("down")})
	if err := broken.Send(ctx, email.ContactEmail{Name: "Ali", Message: "Bonjour"}); !errors.Is(err, ErrEmailSend) {
		t.Fatalf("expected ErrEmailSend, got %v", err)
	}
}
