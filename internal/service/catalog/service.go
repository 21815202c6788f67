package catalog

import (
	"context"
	"io"
	"log"
	"strings"
	"sync"

	"zomio-storefront/internal/domain"
	catalogrepo "zomio-storefront/internal/repository/catalog"
)

// Service owns the catalog fetch lifecycle and answers product queries.
// Until the first Fetch resolves, callers observe a loading state; a failed
// fetch leaves the catalog empty with the error flag set.
type Service struct {
	repo   catalogrepo.Repository
	source catalogrepo.Source
	logger *log.Logger

	mu      sync.RWMutex
	loading bool
	fetched bool
	lastErr error
}

// New creates a Service over the given store and source.
func New(repo catalogrepo.Repository, source catalogrepo.Source, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, source: source, logger: logger, loading: true}
}

// Fetch performs the single catalog load. Success replaces the catalog and
// clears any previous error; failure empties it and records the error.
// There is no retry beyond calling Fetch again.
func (s *Service) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	products, err := s.source.Fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.fetched = true
	if err != nil {
		s.lastErr = err
		s.repo.Replace(nil)
		s.logger.Printf("catalog svc: fetch error=%v", err)
		return err
	}
	s.lastErr = nil
	s.repo.Replace(products)
	s.logger.Printf("catalog svc: fetch count=%d", len(products))
	return nil
}

// Loading reports whether the initial fetch is still in flight.
func (s *Service) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the error from the last fetch, or nil.
func (s *Service) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Ready reports whether a fetch has completed successfully.
func (s *Service) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetched && s.lastErr == nil
}

// List returns the whole catalog.
func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

// Get returns the product with the given id.
func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// ByCategory returns products tagged with the exact category.
func (s *Service) ByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Product
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

// Featured returns products flagged for the storefront banner.
func (s *Service) Featured(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Product
	for _, p := range products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out, nil
}

// Search matches the query case-insensitively against name, description
// and category.
func (s *Service) Search(ctx context.Context, query string) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	var out []domain.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

// ByArea returns products deliverable to the given area. Products without
// an area list are available everywhere.
func (s *Service) ByArea(ctx context.Context, area string) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Product
	for _, p := range products {
		if p.AvailableIn(area) {
			out = append(out, p)
		}
	}
	return out, nil
}
