package service

import (
	"context"
	"time"

	"github.com/emmawebdev2005/ShopGenius/internal/domain"
	"github.com/emmawebdev2005/ShopGenius/internal/events"
	"github.com/stretchr/testify/mock"
)

// MockBackend stands in for all three gateways.
type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockBackend) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockBackend) AddProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockBackend) CreateOrder(ctx context.Context, userID string, items []domain.CartItem, pricing domain.OrderPricing) (*domain.Order, error) {
	args := m.Called(ctx, userID, items, pricing)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockBackend) ListOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockBackend) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, bool, error) {
	args := m.Called(ctx, orderID, status)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Order), args.Bool(1), args.Error(2)
}

func (m *MockBackend) Register(ctx context.Context, token, name, email, password string) (*domain.User, error) {
	args := m.Called(ctx, token, name, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockBackend) Login(ctx context.Context, token, email, password string) (*domain.User, error) {
	args := m.Called(ctx, token, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockBackend) GetSession(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockBackend) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockBackend) ToggleWishlist(ctx context.Context, userID, productID string) ([]string, error) {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishOrderPlaced(ctx context.Context, event events.OrderPlacedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockAssistant struct {
	mock.Mock
}

func (m *MockAssistant) GenerateListing(ctx context.Context, freeText string) (domain.ListingDraft, error) {
	args := m.Called(ctx, freeText)
	return args.Get(0).(domain.ListingDraft), args.Error(1)
}

func (m *MockAssistant) Chat(ctx context.Context, history []domain.ChatTurn, message string, catalog []domain.Product) string {
	args := m.Called(ctx, history, message, catalog)
	return args.String(0)
}

var (
	lamp    = domain.Product{ID: "1", Title: "Desk Lamp", Price: 40, Category: "Home", Stock: 5}
	mug     = domain.Product{ID: "2", Title: "Mug", Price: 12.5, Category: "Kitchen", Stock: 0}
	shopper = &domain.User{ID: "user-1", Name: "Ada", Email: "ada@example.com", Wishlist: []string{}}
)

func fixedClock() func() time.Time {
	t := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}
