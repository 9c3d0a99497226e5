package service

import (
	"context"
	"testing"

	"aura/internal/domain"
	"aura/internal/repository"
)

func seedOrder(t *testing.T, orders repository.OrderRepository, phone string, total int64) domain.Order {
	t.Helper()
	o := domain.Order{
		CustomerInfo: domain.CustomerInfo{FullName: "Ali Omar", Phone: phone, District: "Balbala"},
		Items:        "Produit: Chemise\nTaille: M",
		Total:        total,
		Status:       domain.OrderStatusNew,
	}
	if err := orders.Create(context.Background(), &o); err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return o
}

func TestSetStatus_AnyDirection(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryOrders(repository.NewMemoryStore())
	svc := NewOrderService(repo)
	o := seedOrder(t, repo, "77101010", 1500)

	// forward, then back: both must pass, the status machine is unconstrained
	up, err := svc.SetStatus(ctx, o.ID, domain.OrderStatusCompleted)
	if err != nil {
		t.Fatalf("new -> completed: %v", err)
	}
	if up.Status != domain.OrderStatusCompleted {
		t.Fatalf("unexpected status %q", up.Status)
	}

	back, err := svc.SetStatus(ctx, o.ID, domain.OrderStatusNew)
	if err != nil {
		t.Fatalf("completed -> new: %v", err)
	}
	if back.Status != domain.OrderStatusNew {
		t.Fatalf("unexpected status %q", back.Status)
	}
}

func TestSetStatus_UnknownValue(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryOrders(repository.NewMemoryStore())
	svc := NewOrderService(repo)
	o := seedOrder(t, repo, "77101010", 1500)

	if _, err := svc.SetStatus(ctx, o.ID, "shipped"); err != ErrBadStatus {
		t.Fatalf("expected ErrBadStatus, got %v", err)
	}
}

func TestUpdateOrder(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryOrders(repository.NewMemoryStore())
	svc := NewOrderService(repo)
	o := seedOrder(t, repo, "77101010", 1500)

	o.CustomerInfo.District = "Héron"
	o.Total = 1800
	o.Status = domain.OrderStatusProcessing
	updated, err := svc.Update(ctx, o)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.CustomerInfo.District != "Héron" || updated.Total != 1800 {
		t.Fatalf("edit not applied: %+v", updated)
	}

	o.CustomerInfo.Phone = ""
	if _, err := svc.Update(ctx, o); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestListAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryOrders(repository.NewMemoryStore())
	svc := NewOrderService(repo)
	a := seedOrder(t, repo, "77101010", 1500)
	seedOrder(t, repo, "77202020", 2500)

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(list))
	}

	if err := svc.Delete(ctx, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, a.ID); err != repository.ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
