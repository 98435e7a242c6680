package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type constError string

func (e constError) Error() string { return string(e) }

// ErrProductNotFound is returned by Get for an unknown ID.
const ErrProductNotFound = constError("product not found")

// Store is the in-memory product table. It is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	products []Product

	queryLatency time.Duration
	saveLatency  time.Duration
	newID        func() string
	now          func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLatency sets the simulated query and save delays.
func WithLatency(query, save time.Duration) Option {
	return func(s *Store) {
		s.queryLatency = query
		s.saveLatency = save
	}
}

// WithIDGenerator replaces the UUID generator used by Save.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// WithClock replaces the time source used for CreatedAt.
func WithClock(fn func() time.Time) Option {
	return func(s *Store) { s.now = fn }
}

// WithProducts preloads the store, typically with SeedProducts().
func WithProducts(products []Product) Option {
	return func(s *Store) {
		s.products = append(s.products, products...)
	}
}

// NewStore returns an empty store with no latency unless options say otherwise.
func NewStore(opts ...Option) *Store {
	s := &Store{
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns a snapshot of every product in insertion order.
func (s *Store) List(ctx context.Context) ([]Product, error) {
	if err := wait(ctx, s.queryLatency); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

// Get returns the product with the given ID.
func (s *Store) Get(ctx context.Context, id string) (Product, error) {
	if err := wait(ctx, s.queryLatency); err != nil {
		return Product{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrProductNotFound
}

// Save appends the given products, assigning each a fresh ID and CreatedAt,
// and returns the stored records. Existing products are never modified.
func (s *Store) Save(ctx context.Context, items []NewProduct) ([]Product, error) {
	if err := wait(ctx, s.saveLatency); err != nil {
		return nil, err
	}
	saved := make([]Product, 0, len(items))
	createdAt := s.now().UTC()
	for _, item := range items {
		saved = append(saved, Product{
			ID:          s.newID(),
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			ImageURL:    item.ImageURL,
			StoreURL:    item.StoreURL,
			Category:    item.Category,
			Brand:       item.Brand,
			Weight:      item.Weight,
			CreatedAt:   createdAt,
		})
	}

	s.mu.Lock()
	s.products = append(s.products, saved...)
	s.mu.Unlock()
	return saved, nil
}

// Len reports the number of stored products without any simulated delay.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// wait sleeps for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
