package repository

import (
	"context"
	"testing"
	"time"

	"aura/internal/domain"
)

func testProduct(name string, cat domain.Category) domain.Product {
	return domain.Product{
		Name:     name,
		Price:    1500,
		Category: cat,
		Sizes:    []string{"M"},
		Colors:   []string{"red"},
	}
}

func TestMemoryStore_ProductCRUD(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	p := testProduct("Robe", domain.CategoryWomen)
	if err := store.Create(ctx, &p); err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == "" {
		t.Fatalf("expected generated id")
	}

	got, err := store.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Robe" {
		t.Fatalf("unexpected product: %+v", got)
	}

	got.Price = 2000
	if err := store.Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	got2, _ := store.GetByID(ctx, p.ID)
	if got2.Price != 2000 {
		t.Fatalf("update not applied: %+v", got2)
	}

	if err := store.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.GetByID(ctx, p.ID); err != ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMemoryStore_NotFound(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if _, err := store.GetByID(ctx, "missing"); err != ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := store.Update(ctx, &domain.Product{ID: "missing"}); err != ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := store.Delete(ctx, "missing"); err != ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMemoryStore_ListFilters(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	men := testProduct("Chemise", domain.CategoryMen)
	women := testProduct("Robe", domain.CategoryWomen)
	women.Featured = true
	_ = store.Create(ctx, &men)
	_ = store.Create(ctx, &women)

	got, err := store.List(ctx, ProductFilter{Category: domain.CategoryWomen})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Robe" {
		t.Fatalf("category filter failed: %+v", got)
	}

	got, _ = store.List(ctx, ProductFilter{FeaturedOnly: true})
	if len(got) != 1 || !got[0].Featured {
		t.Fatalf("featured filter failed: %+v", got)
	}

	got, _ = store.List(ctx, ProductFilter{})
	if len(got) != 2 {
		t.Fatalf("expected both products, got %d", len(got))
	}
}

func TestMemoryStore_ListSortsByPopularity(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	low := testProduct("A", domain.CategoryMen)
	low.Popularity = 1
	high := testProduct("B", domain.CategoryMen)
	high.Popularity = 9
	_ = store.Create(ctx, &low)
	_ = store.Create(ctx, &high)

	got, _ := store.List(ctx, ProductFilter{Sort: SortPopularity})
	if got[0].Name != "B" {
		t.Fatalf("expected most popular first, got %+v", got)
	}
}

func TestMemoryOrders_CRUDAndListOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	orders := NewMemoryOrders(store)

	first := domain.Order{
		CustomerInfo: domain.CustomerInfo{FullName: "Ali", Phone: "77101010", District: "Balbala"},
		Items:        "Produit: Chemise",
		Total:        1500,
		Status:       domain.OrderStatusNew,
	}
	if err := orders.Create(ctx, &first); err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.ID == "" || first.CreatedAt.IsZero() {
		t.Fatalf("expected id and timestamps set: %+v", first)
	}

	// force distinct creation times
	time.Sleep(5 * time.Millisecond)
	second := domain.Order{
		CustomerInfo: domain.CustomerInfo{FullName: "Mariam", Phone: "77202020", District: "Héron"},
		Total:        3000,
		Status:       domain.OrderStatusNew,
	}
	_ = orders.Create(ctx, &second)

	list, err := orders.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].ID != second.ID {
		t.Fatalf("expected newest first, got %+v", list)
	}

	second.Status = domain.OrderStatusCompleted
	if err := orders.Update(ctx, &second); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ := orders.GetByID(ctx, second.ID)
	if got.Status != domain.OrderStatusCompleted {
		t.Fatalf("status not updated: %+v", got)
	}
	if !got.UpdatedAt.After(got.CreatedAt) {
		t.Fatalf("expected UpdatedAt to advance")
	}

	if err := orders.Delete(ctx, first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := orders.GetByID(ctx, first.ID); err != ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
