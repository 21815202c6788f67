package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"zomio-storefront/internal/domain"
)

// StaticSource serves a fixed product list, used when no catalog file is
// configured.
type StaticSource struct {
	products []domain.Product
}

// NewStaticSource wraps products as a Source.
func NewStaticSource(products []domain.Product) *StaticSource {
	return &StaticSource{products: products}
}

func (s *StaticSource) Fetch(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(s.products))
	for i, p := range s.products {
		out[i] = p.Clone()
	}
	return out, nil
}

// FileSource reads the catalog from a JSON file, typically written by
// cmd/seed.
type FileSource struct {
	path string
}

// NewFileSource returns a Source reading from path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Fetch(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", s.path, err)
	}
	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", s.path, err)
	}
	return products, nil
}
