package cart

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"sync"

	"github.com/google/uuid"

	"zomio-storefront/internal/domain"
	"zomio-storefront/internal/storage"
)

// StateKey is the storage slot holding the serialized cart.
const StateKey = "zomioCart"

type memoryRepo struct {
	mu     sync.Mutex
	items  []domain.CartItem
	kv     storage.KV
	logger *log.Logger
}

// NewMemory returns a cart store rehydrated from kv. A missing or corrupt
// stored value loads as an empty cart.
func NewMemory(kv storage.KV, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	r := &memoryRepo{kv: kv, logger: logger}
	if data, ok := kv.Get(StateKey); ok {
		var items []domain.CartItem
		if err := json.Unmarshal(data, &items); err != nil {
			logger.Printf("cart repo: rehydrate error=%v, starting empty", err)
		} else {
			r.items = items
			logger.Printf("cart repo: rehydrate items=%d", len(items))
		}
	}
	return r
}

func (r *memoryRepo) Items(_ context.Context) ([]domain.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return domain.CloneItems(r.items), nil
}

func (r *memoryRepo) Add(_ context.Context, product domain.Product, quantity int, selectedSize string) (*domain.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].Product.ID == product.ID && r.items[i].SelectedSize == selectedSize {
			r.items[i].Quantity += quantity
			item := r.items[i].Clone()
			if err := r.persist(); err != nil {
				return nil, err
			}
			r.logger.Printf("cart repo: merge item=%s product=%s qty=%d", item.ID, product.ID, item.Quantity)
			return &item, nil
		}
	}

	item := domain.CartItem{
		ID:           uuid.NewString(),
		Product:      product.Clone(),
		Quantity:     quantity,
		SelectedSize: selectedSize,
	}
	r.items = append(r.items, item)
	if err := r.persist(); err != nil {
		return nil, err
	}
	r.logger.Printf("cart repo: add item=%s product=%s qty=%d", item.ID, product.ID, quantity)
	out := item.Clone()
	return &out, nil
}

func (r *memoryRepo) Remove(_ context.Context, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.removeLocked(itemID)
}

func (r *memoryRepo) SetQuantity(_ context.Context, itemID string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if quantity <= 0 {
		return r.removeLocked(itemID)
	}
	for i := range r.items {
		if r.items[i].ID == itemID {
			r.items[i].Quantity = quantity
			return r.persist()
		}
	}
	return nil
}

func (r *memoryRepo) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
	return r.persist()
}

func (r *memoryRepo) TotalPrice(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total int64
	for _, item := range r.items {
		total += item.LineTotal()
	}
	return total, nil
}

func (r *memoryRepo) TotalItems(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := 0
	for _, item := range r.items {
		total += item.Quantity
	}
	return total, nil
}

func (r *memoryRepo) removeLocked(itemID string) error {
	for i := range r.items {
		if r.items[i].ID == itemID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return r.persist()
		}
	}
	return nil
}

func (r *memoryRepo) persist() error {
	items := r.items
	if items == nil {
		items = []domain.CartItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.kv.Set(StateKey, data)
}
