package catalog

import (
	"context"

	"zomio-storefront/internal/domain"
)

// Repository holds the product catalog for the current session. The catalog
// is replaced wholesale on fetch and individual products never mutate.
type Repository interface {
	Replace(products []domain.Product)
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

// Source supplies the initial product list. A single fetch either succeeds
// with the full catalog or fails; there is no retry or partial result.
type Source interface {
	Fetch(ctx context.Context) ([]domain.Product, error)
}
