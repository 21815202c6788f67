package order

import (
	"context"
	"io"
	"log"
	"sync"

	"zomio-storefront/internal/domain"
)

type memoryRepo struct {
	mu     sync.RWMutex
	orders []domain.Order
	logger *log.Logger
}

// NewMemory returns an in-memory ledger preloaded with the given orders.
func NewMemory(initial []domain.Order, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	orders := make([]domain.Order, len(initial))
	for i, o := range initial {
		orders[i] = cloneOrder(o)
	}
	return &memoryRepo{orders: orders, logger: logger}
}

func (r *memoryRepo) Append(_ context.Context, o domain.Order) error {
	r.mu.Lock()
	r.orders = append(r.orders, cloneOrder(o))
	r.mu.Unlock()
	r.logger.Printf("order repo: append id=%s total=%d status=%s", o.ID, o.TotalAmount, o.Status)
	return nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.ID == id {
			found := cloneOrder(o)
			return &found, nil
		}
	}
	r.logger.Printf("order repo: get id=%s not found", id)
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) All(_ context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Order, len(r.orders))
	for i, o := range r.orders {
		out[i] = cloneOrder(o)
	}
	return out, nil
}

func (r *memoryRepo) SetStatus(_ context.Context, id string, status domain.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			r.logger.Printf("order repo: set status id=%s status=%s", id, status)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memoryRepo) SetPaymentStatus(_ context.Context, id string, status domain.PaymentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].PaymentStatus = status
			r.logger.Printf("order repo: set payment id=%s status=%s", id, status)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memoryRepo) ByArea(_ context.Context, area string) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Order
	for _, o := range r.orders {
		if o.CustomerInfo.Area == area {
			out = append(out, cloneOrder(o))
		}
	}
	return out, nil
}

func (r *memoryRepo) ByStatus(_ context.Context, status domain.OrderStatus) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Order
	for _, o := range r.orders {
		if o.Status == status {
			out = append(out, cloneOrder(o))
		}
	}
	return out, nil
}

func (r *memoryRepo) TotalRevenue(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var total int64
	for _, o := range r.orders {
		if o.PaymentStatus == domain.PaymentCompleted {
			total += o.TotalAmount
		}
	}
	return total, nil
}

func cloneOrder(o domain.Order) domain.Order {
	out := o
	out.Items = domain.CloneItems(o.Items)
	return out
}
