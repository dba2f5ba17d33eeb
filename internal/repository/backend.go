package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/emmawebdev2005/ShopGenius/internal/domain"
	"github.com/google/uuid"
)

const (
	keyProducts      = "shopgenius_products"
	keyUsers         = "shopgenius_users"
	keyOrders        = "shopgenius_orders"
	keySessionPrefix = "shopgenius_session:"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmptyOrder         = errors.New("order must contain at least one item")
)

// Backend is the storefront's mocked server: catalog, accounts, sessions and
// orders kept as JSON documents in a Store.
type Backend struct {
	store Store
	delay time.Duration
	now   func() time.Time
	newID func() string

	// serializes read-modify-write cycles on the shared documents
	mu sync.Mutex
}

type Option func(*Backend)

// WithDelay simulates network latency on calls that would hit a server.
func WithDelay(d time.Duration) Option {
	return func(b *Backend) { b.delay = d }
}

func WithClock(now func() time.Time) Option {
	return func(b *Backend) { b.now = now }
}

func WithIDGenerator(gen func() string) Option {
	return func(b *Backend) { b.newID = gen }
}

func NewBackend(store Store, opts ...Option) *Backend {
	b := &Backend{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Init seeds the catalog when the store has none and makes sure the users
// document exists.
func (b *Backend) Init(ctx context.Context, seed []domain.Product) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, err := b.store.Get(ctx, keyProducts); errors.Is(err, ErrNotFound) {
		now := b.now()
		for i := range seed {
			if seed[i].CreatedAt.IsZero() {
				seed[i].CreatedAt = now
				seed[i].UpdatedAt = now
			}
		}
		if err := b.save(ctx, keyProducts, seed); err != nil {
			return err
		}
	} else if err != nil {
		return fmt.Errorf("failed to check products: %w", err)
	}

	if _, err := b.store.Get(ctx, keyUsers); errors.Is(err, ErrNotFound) {
		if err := b.save(ctx, keyUsers, []userRecord{}); err != nil {
			return err
		}
	} else if err != nil {
		return fmt.Errorf("failed to check users: %w", err)
	}
	return nil
}

func (b *Backend) wait(ctx context.Context) error {
	if b.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(b.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// load decodes key into v. A missing key leaves v untouched.
func (b *Backend) load(ctx context.Context, key string, v any) error {
	raw, err := b.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

func (b *Backend) save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := b.store.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (b *Backend) products(ctx context.Context) ([]domain.Product, error) {
	products := []domain.Product{}
	if err := b.load(ctx, keyProducts, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (b *Backend) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if err := b.wait(ctx); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.products(ctx)
}

func (b *Backend) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	products, err := b.products(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, ErrProductNotFound
}

// AddProduct assigns an id and puts the product at the front of the catalog.
func (b *Backend) AddProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if err := b.wait(ctx); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	products, err := b.products(ctx)
	if err != nil {
		return nil, err
	}

	now := b.now()
	p.ID = b.newID()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Tags == nil {
		p.Tags = []string{}
	}

	products = append([]domain.Product{p}, products...)
	if err := b.save(ctx, keyProducts, products); err != nil {
		return nil, err
	}
	return &p, nil
}
