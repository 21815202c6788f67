package cart

import (
	"context"
	"errors"

	"zomio-storefront/internal/domain"
	cartrepo "zomio-storefront/internal/repository/cart"
)

// Service fronts the cart aggregator with input validation. Size membership
// is the caller's responsibility: the storefront only offers declared sizes.
type Service struct {
	repo cartrepo.Repository
}

// New creates a cart Service.
func New(repo cartrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Items returns the current cart lines.
func (s *Service) Items(ctx context.Context) ([]domain.CartItem, error) {
	return s.repo.Items(ctx)
}

// Add puts quantity units of the product (with an optional size) into the
// cart, merging with an existing line for the same product and size.
func (s *Service) Add(ctx context.Context, product domain.Product, quantity int, selectedSize string) (*domain.CartItem, error) {
	if quantity <= 0 {
		return nil, errors.New("quantity must be positive")
	}
	return s.repo.Add(ctx, product, quantity, selectedSize)
}

// Remove deletes a cart line. Unknown ids are a no-op.
func (s *Service) Remove(ctx context.Context, itemID string) error {
	return s.repo.Remove(ctx, itemID)
}

// UpdateQuantity sets a line's quantity; zero or negative removes the line.
func (s *Service) UpdateQuantity(ctx context.Context, itemID string, quantity int) error {
	return s.repo.SetQuantity(ctx, itemID, quantity)
}

// Clear empties the cart.
func (s *Service) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}

// TotalPrice is the sum of price times quantity over all lines.
func (s *Service) TotalPrice(ctx context.Context) (int64, error) {
	return s.repo.TotalPrice(ctx)
}

// TotalItems is the count of units in the cart, not distinct lines.
func (s *Service) TotalItems(ctx context.Context) (int, error) {
	return s.repo.TotalItems(ctx)
}
