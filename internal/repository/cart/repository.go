package cart

import (
	"context"

	"zomio-storefront/internal/domain"
)

// Repository is the session cart. At most one item exists per distinct
// (product id, selected size) pair; adding a matching pair increments the
// existing quantity. Every mutation is written through to durable storage
// so a restart rehydrates the same cart.
type Repository interface {
	Items(ctx context.Context) ([]domain.CartItem, error)
	Add(ctx context.Context, product domain.Product, quantity int, selectedSize string) (*domain.CartItem, error)
	// Remove deletes the item with the given id; absent ids are a no-op.
	Remove(ctx context.Context, itemID string) error
	// SetQuantity sets the item's quantity; zero or negative removes the
	// item, absent ids are a no-op.
	SetQuantity(ctx context.Context, itemID string, quantity int) error
	Clear(ctx context.Context) error
	TotalPrice(ctx context.Context) (int64, error)
	TotalItems(ctx context.Context) (int, error)
}
