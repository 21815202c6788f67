package catalog

import (
	"context"
	"io"
	"log"
	"sync"

	"zomio-storefront/internal/domain"
)

type memoryRepo struct {
	mu       sync.RWMutex
	products []domain.Product
	logger   *log.Logger
}

// NewMemory returns an empty in-memory catalog store.
func NewMemory(logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &memoryRepo{logger: logger}
}

func (r *memoryRepo) Replace(products []domain.Product) {
	copied := make([]domain.Product, len(products))
	for i, p := range products {
		copied[i] = p.Clone()
	}
	r.mu.Lock()
	r.products = copied
	r.mu.Unlock()
	r.logger.Printf("catalog repo: replace count=%d", len(copied))
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Product, len(r.products))
	for i, p := range r.products {
		out[i] = p.Clone()
	}
	return out, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			found := p.Clone()
			return &found, nil
		}
	}
	r.logger.Printf("catalog repo: get id=%s not found", id)
	return nil, domain.ErrNotFound
}
