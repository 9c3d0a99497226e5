package service

import (
	"context"
	"errors"

	"aura/internal/domain"
	"aura/internal/repository"
)

// CatalogService инкапсулирует бизнес-логику вокруг товаров
type CatalogService struct {
	repo repository.ProductRepository
}

func NewCatalogService(repo repository.ProductRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNoSizes      = errors.New("select at least one size")
	ErrNoColors     = errors.New("select at least one color")
	ErrBadPrice     = errors.New("price must be positive")
)

func validateProduct(p domain.Product) error {
	if p.Name == "" || !domain.ValidCategory(p.Category) {
		return ErrInvalidInput
	}
	if p.Price <= 0 {
		return ErrBadPrice
	}
	if len(p.Sizes) == 0 {
		return ErrNoSizes
	}
	if len(p.Colors) == 0 {
		return ErrNoColors
	}
	return nil
}

func (s *CatalogService) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if err := validateProduct(p); err != nil {
		return nil, err
	}
	cp := p
	if err := s.repo.Create(ctx, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

func (s *CatalogService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *CatalogService) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if p.ID == "" {
		return nil, ErrInvalidInput
	}
	if err := validateProduct(p); err != nil {
		return nil, err
	}
	cp := p
	if err := s.repo.Update(ctx, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

func (s *CatalogService) List(ctx context.Context, f repository.ProductFilter) ([]domain.Product, error) {
	return s.repo.List(ctx, f)
}
