package service

import (
	"context"
	"testing"

	"aura/internal/domain"
	"aura/internal/repository"
)

func validProduct() domain.Product {
	return domain.Product{
		Name:     "Chemise lin",
		Price:    2500,
		Category: domain.CategoryMen,
		Sizes:    []string{"M", "L"},
		Colors:   []string{"#ffffff"},
		Images:   []string{"https://example.com/1.jpg"},
	}
}

func TestCatalogCreateAndUpdate(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(repository.NewMemoryStore())

	p, err := svc.Create(ctx, validProduct())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == "" {
		t.Fatalf("expected assigned id")
	}

	p.Price = 3000
	updated, err := svc.Update(ctx, *p)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Price != 3000 {
		t.Fatalf("price not updated: %+v", updated)
	}

	if err := svc.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, p.ID); err != repository.ErrNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCatalogValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(repository.NewMemoryStore())

	noColors := validProduct()
	noColors.Colors = nil
	if _, err := svc.Create(ctx, noColors); err != ErrNoColors {
		t.Fatalf("expected ErrNoColors, got %v", err)
	}

	noSizes := validProduct()
	noSizes.Sizes = nil
	if _, err := svc.Create(ctx, noSizes); err != ErrNoSizes {
		t.Fatalf("expected ErrNoSizes, got %v", err)
	}

	freebie := validProduct()
	freebie.Price = 0
	if _, err := svc.Create(ctx, freebie); err != ErrBadPrice {
		t.Fatalf("expected ErrBadPrice, got %v", err)
	}

	badCat := validProduct()
	badCat.Category = "pets"
	if _, err := svc.Create(ctx, badCat); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	// rejected products must not be written
	list, _ := svc.List(ctx, repository.ProductFilter{})
	if len(list) != 0 {
		t.Fatalf("expected no writes, got %d products", len(list))
	}
}
