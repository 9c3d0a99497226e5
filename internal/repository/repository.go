package repository

import (
	"context"
	"errors"

	"aura/internal/domain"
)

// ErrNotFound возвращается, когда сущность не найдена
var ErrNotFound = errors.New("not found")

// Sort варианты сортировки списка товаров
type Sort string

const (
	SortNewest     Sort = "newest"
	SortPopularity Sort = "popularity"
)

// ProductFilter параметры выборки каталога
type ProductFilter struct {
	Category     domain.Category
	FeaturedOnly bool
	Sort         Sort
}

// ProductRepository интерфейс репозитория товаров
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f ProductFilter) ([]domain.Product, error)
}

// OrderRepository интерфейс репозитория заказов.
// List отдаёт заказы от новых к старым
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	Update(ctx context.Context, o *domain.Order) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Order, error)
}
