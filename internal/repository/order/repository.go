package order

import (
	"context"

	"zomio-storefront/internal/domain"
)

// Repository is the append-only order ledger. Orders are never deleted;
// only status and payment status change after creation. The ledger itself
// accepts any status overwrite — lifecycle rules are enforced a layer up,
// by the admin-facing service.
type Repository interface {
	Append(ctx context.Context, o domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	All(ctx context.Context) ([]domain.Order, error)
	SetStatus(ctx context.Context, id string, status domain.OrderStatus) error
	SetPaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) error
	// ByArea and ByStatus filter on exact match, preserving insertion order.
	ByArea(ctx context.Context, area string) ([]domain.Order, error)
	ByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.Order, error)
	// TotalRevenue sums totalAmount over orders with completed payment.
	TotalRevenue(ctx context.Context) (int64, error)
}
