package service

import (
	"context"
	"fmt"

	"github.com/emmawebdev2005/ShopGenius/internal/domain"
	"github.com/emmawebdev2005/ShopGenius/internal/events"
	"github.com/emmawebdev2005/ShopGenius/internal/pricing"
	"go.uber.org/zap"
)

type CheckoutService struct {
	auth      AuthGateway
	orders    OrderGateway
	engine    *pricing.Engine
	sessions  *SessionManager
	publisher OrderEventPublisher
	logger    *zap.Logger
}

func NewCheckoutService(
	auth AuthGateway,
	orders OrderGateway,
	engine *pricing.Engine,
	sessions *SessionManager,
	publisher OrderEventPublisher,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		auth:      auth,
		orders:    orders,
		engine:    engine,
		sessions:  sessions,
		publisher: publisher,
		logger:    logger,
	}
}

// Checkout places an order for the session's cart. The cart and promotion
// are cleared only once the order gateway has accepted the order; on failure
// they are left exactly as they were.
func (s *CheckoutService) Checkout(ctx context.Context, sessionID string) (*domain.Order, error) {
	sess := s.sessions.Get(sessionID)
	sess.mu.Lock()
	empty := sess.ledger.IsEmpty()
	sess.mu.Unlock()
	if empty {
		return nil, ErrEmptyCart
	}

	user, err := currentUser(ctx, s.auth, sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	// The cart may have changed while the session was resolved.
	if sess.ledger.IsEmpty() {
		sess.mu.Unlock()
		return nil, ErrEmptyCart
	}
	if sess.checkingOut {
		sess.mu.Unlock()
		return nil, ErrCheckoutInProgress
	}
	sess.checkingOut = true
	items := sess.ledger.Items()
	quote := s.engine.Quote(sess.ledger, sess.promo, sess.currency)
	code := sess.promo.Code
	sess.mu.Unlock()

	order, err := s.orders.CreateOrder(ctx, user.ID, items, domain.OrderPricing{
		Subtotal:  quote.Subtotal,
		Discount:  quote.Discount,
		Total:     quote.PayableUSD(),
		PromoCode: code,
	})

	sess.mu.Lock()
	sess.checkingOut = false
	if err == nil {
		sess.ledger.Clear()
		sess.promo = pricing.Promotion{}
	}
	sess.mu.Unlock()

	if err != nil {
		s.logger.Error("Failed to place order",
			zap.String("user_id", user.ID),
			zap.Int("items", len(items)),
			zap.Error(err))
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	s.logger.Info("Order placed",
		zap.String("order_id", order.ID),
		zap.String("user_id", user.ID),
		zap.String("total_usd", order.Total.StringFixed(2)),
		zap.String("promo_code", code))

	event := events.NewOrderPlacedEvent(order, requestIDFrom(ctx))
	if err := s.publisher.PublishOrderPlaced(ctx, event); err != nil {
		s.logger.Warn("Failed to publish order placed event",
			zap.String("order_id", order.ID),
			zap.Error(err))
	}

	return order, nil
}
