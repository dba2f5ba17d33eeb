package service

import (
	"context"
	"fmt"

	"github.com/emmawebdev2005/ShopGenius/internal/catalog"
	"github.com/emmawebdev2005/ShopGenius/internal/currency"
	"github.com/emmawebdev2005/ShopGenius/internal/domain"
	"github.com/emmawebdev2005/ShopGenius/internal/pricing"
	"go.uber.org/zap"
)

type CartView struct {
	Items     []domain.CartItem `json:"items"`
	ItemCount int               `json:"item_count"`
	Summary   pricing.Display   `json:"summary"`
}

// Facets are the filter controls derived from the current catalog.
type Facets struct {
	Categories []string `json:"categories"`
	MaxPrice   float64  `json:"max_price"`
}

type StorefrontService struct {
	catalog  CatalogGateway
	orders   OrderGateway
	auth     AuthGateway
	engine   *pricing.Engine
	sessions *SessionManager
	logger   *zap.Logger
}

func NewStorefrontService(
	catalog CatalogGateway,
	orders OrderGateway,
	auth AuthGateway,
	engine *pricing.Engine,
	sessions *SessionManager,
	logger *zap.Logger,
) *StorefrontService {
	return &StorefrontService{
		catalog:  catalog,
		orders:   orders,
		auth:     auth,
		engine:   engine,
		sessions: sessions,
		logger:   logger,
	}
}

// ProductQuery is a shopper's filter. A nil PriceMax means no ceiling was
// chosen and the catalog's own maximum applies.
type ProductQuery struct {
	Query       string
	Category    string
	PriceMax    *float64
	InStockOnly bool
}

func (s *StorefrontService) ListProducts(ctx context.Context, q ProductQuery) ([]domain.Product, error) {
	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		s.logger.Error("Failed to list products", zap.Error(err))
		return nil, err
	}

	criteria := catalog.Criteria{
		Query:       q.Query,
		Category:    q.Category,
		PriceMax:    catalog.MaxPrice(products),
		InStockOnly: q.InStockOnly,
	}
	if q.PriceMax != nil {
		criteria.PriceMax = *q.PriceMax
	}
	return catalog.Filter(products, criteria), nil
}

func (s *StorefrontService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.catalog.GetProduct(ctx, id)
	if err != nil {
		return nil, mapProductErr(err)
	}
	return p, nil
}

func (s *StorefrontService) Facets(ctx context.Context) (Facets, error) {
	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return Facets{}, err
	}
	return Facets{
		Categories: catalog.Categories(products),
		MaxPrice:   catalog.MaxPrice(products),
	}, nil
}

// view must be called with sess.mu held.
func (s *StorefrontService) view(sess *Session) CartView {
	quote := s.engine.Quote(sess.ledger, sess.promo, sess.currency)
	return CartView{
		Items:     sess.ledger.Items(),
		ItemCount: sess.ledger.ItemCount(),
		Summary:   quote.Display(),
	}
}

// mutate runs fn on the session's cart unless a checkout is in flight.
func (s *StorefrontService) mutate(sessionID string, fn func(sess *Session) error) (CartView, error) {
	sess := s.sessions.Get(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.checkingOut {
		return s.view(sess), ErrCheckoutInProgress
	}
	err := fn(sess)
	return s.view(sess), err
}

func (s *StorefrontService) Cart(sessionID string) CartView {
	sess := s.sessions.Get(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.view(sess)
}

// SetCurrency changes the display currency. It does not touch the cart,
// so it is allowed during checkout.
func (s *StorefrontService) SetCurrency(sessionID string, c currency.Currency) CartView {
	sess := s.sessions.Get(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.currency = c
	return s.view(sess)
}

func (s *StorefrontService) AddToCart(ctx context.Context, sessionID, productID string, quantity int) (CartView, error) {
	if quantity < 1 {
		return s.Cart(sessionID), ErrInvalidQuantity
	}
	p, err := s.GetProduct(ctx, productID)
	if err != nil {
		return s.Cart(sessionID), err
	}

	return s.mutate(sessionID, func(sess *Session) error {
		if !p.InStock() {
			return ErrOutOfStock
		}
		sess.ledger.AddQuantity(*p, quantity)
		s.logger.Debug("Added to cart",
			zap.String("product_id", p.ID),
			zap.Int("quantity", sess.ledger.Quantity(p.ID)))
		return nil
	})
}

func (s *StorefrontService) UpdateCartItem(sessionID, productID string, delta int) (CartView, error) {
	return s.mutate(sessionID, func(sess *Session) error {
		sess.ledger.UpdateQuantity(productID, delta)
		return nil
	})
}

func (s *StorefrontService) RemoveFromCart(sessionID, productID string) (CartView, error) {
	return s.mutate(sessionID, func(sess *Session) error {
		sess.ledger.Remove(productID)
		return nil
	})
}

// ApplyPromo replaces the session's promotion. On an invalid code the
// promotion is cleared and the returned view reflects that.
func (s *StorefrontService) ApplyPromo(sessionID, code string) (CartView, error) {
	return s.mutate(sessionID, func(sess *Session) error {
		if err := s.engine.Apply(&sess.promo, code); err != nil {
			s.logger.Info("Rejected promo code", zap.String("code", code))
			return err
		}
		return nil
	})
}

func (s *StorefrontService) Register(ctx context.Context, sessionID, name, email, password string) (*domain.User, error) {
	user, err := s.auth.Register(ctx, sessionID, name, email, password)
	if err != nil {
		return nil, err
	}
	s.logger.Info("User registered", zap.String("user_id", user.ID))
	return user, nil
}

func (s *StorefrontService) Login(ctx context.Context, sessionID, email, password string) (*domain.User, error) {
	user, err := s.auth.Login(ctx, sessionID, email, password)
	if err != nil {
		return nil, err
	}
	s.logger.Info("User logged in", zap.String("user_id", user.ID))
	return user, nil
}

func (s *StorefrontService) Logout(ctx context.Context, sessionID string) error {
	return s.auth.Logout(ctx, sessionID)
}

// CurrentUser returns nil without error for an anonymous session.
func (s *StorefrontService) CurrentUser(ctx context.Context, sessionID string) (*domain.User, error) {
	return s.auth.GetSession(ctx, sessionID)
}

func (s *StorefrontService) ToggleWishlist(ctx context.Context, sessionID, productID string) ([]string, error) {
	user, err := currentUser(ctx, s.auth, sessionID)
	if err != nil {
		return nil, err
	}
	if _, err := s.GetProduct(ctx, productID); err != nil {
		return nil, err
	}
	wishlist, err := s.auth.ToggleWishlist(ctx, user.ID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to update wishlist: %w", err)
	}
	return wishlist, nil
}

func (s *StorefrontService) Orders(ctx context.Context, sessionID string) ([]domain.Order, error) {
	user, err := currentUser(ctx, s.auth, sessionID)
	if err != nil {
		return nil, err
	}
	return s.orders.ListOrders(ctx, user.ID)
}
