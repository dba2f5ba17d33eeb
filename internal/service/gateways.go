package service

import (
	"context"

	"github.com/emmawebdev2005/ShopGenius/internal/domain"
	"github.com/emmawebdev2005/ShopGenius/internal/events"
)

// CatalogGateway, OrderGateway and AuthGateway are all served by
// *repository.Backend.
type CatalogGateway interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	AddProduct(ctx context.Context, p domain.Product) (*domain.Product, error)
}

type OrderGateway interface {
	CreateOrder(ctx context.Context, userID string, items []domain.CartItem, pricing domain.OrderPricing) (*domain.Order, error)
	ListOrders(ctx context.Context, userID string) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, bool, error)
}

type AuthGateway interface {
	Register(ctx context.Context, token, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, token, email, password string) (*domain.User, error)
	GetSession(ctx context.Context, token string) (*domain.User, error)
	Logout(ctx context.Context, token string) error
	ToggleWishlist(ctx context.Context, userID, productID string) ([]string, error)
}

// ListingGenerator and Chatter are served by *assistant.Assistant.
type ListingGenerator interface {
	GenerateListing(ctx context.Context, freeText string) (domain.ListingDraft, error)
}

type Chatter interface {
	Chat(ctx context.Context, history []domain.ChatTurn, message string, catalog []domain.Product) string
}

type OrderEventPublisher interface {
	PublishOrderPlaced(ctx context.Context, event events.OrderPlacedEvent) error
}

type requestIDKey struct{}

// WithRequestID tags ctx so events emitted on its behalf can be correlated.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
