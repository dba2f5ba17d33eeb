package service

import (
	"context"
	"errors"
	"testing"

	"github.com/emmawebdev2005/ShopGenius/internal/domain"
	"github.com/emmawebdev2005/ShopGenius/internal/events"
	"github.com/emmawebdev2005/ShopGenius/internal/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type checkoutFixture struct {
	backend    *MockBackend
	publisher  *MockPublisher
	storefront *StorefrontService
	checkout   *CheckoutService
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()

	backend := new(MockBackend)
	publisher := new(MockPublisher)
	engine := pricing.MustNewEngine(pricing.DefaultCodes)
	sessions := NewSessionManager()
	logger := zaptest.NewLogger(t)

	return &checkoutFixture{
		backend:    backend,
		publisher:  publisher,
		storefront: NewStorefrontService(backend, backend, backend, engine, sessions, logger),
		checkout:   NewCheckoutService(backend, backend, engine, sessions, publisher, logger),
	}
}

// fillCart puts two lamps in the cart with GENIUS20 applied: 80 - 16 = 64.
func (f *checkoutFixture) fillCart(t *testing.T) {
	t.Helper()
	f.backend.On("GetProduct", mock.Anything, "1").Return(&lamp, nil).Once()
	_, err := f.storefront.AddToCart(context.Background(), "sess", "1", 2)
	require.NoError(t, err)
	_, err = f.storefront.ApplyPromo("sess", "GENIUS20")
	require.NoError(t, err)
}

func pricingIs(subtotal, discount, total int64, code string) interface{} {
	return mock.MatchedBy(func(p domain.OrderPricing) bool {
		return p.Subtotal.Equal(decimal.NewFromInt(subtotal)) &&
			p.Discount.Equal(decimal.NewFromInt(discount)) &&
			p.Total.Equal(decimal.NewFromInt(total)) &&
			p.PromoCode == code
	})
}

func TestCheckout_Success(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t)

	placed := &domain.Order{
		ID:       "order-1",
		UserID:   "user-1",
		Total:    decimal.NewFromInt(64),
		Status:   domain.StatusProcessing,
		Subtotal: decimal.NewFromInt(80),
		Discount: decimal.NewFromInt(16),
	}
	f.backend.On("GetSession", mock.Anything, "sess").Return(shopper, nil).Once()
	f.backend.On("CreateOrder", mock.Anything, "user-1",
		mock.MatchedBy(func(items []domain.CartItem) bool {
			return len(items) == 1 && items[0].ID == "1" && items[0].Quantity == 2
		}),
		pricingIs(80, 16, 64, "GENIUS20"),
	).Return(placed, nil).Once()
	f.publisher.On("PublishOrderPlaced", mock.Anything, mock.MatchedBy(func(e events.OrderPlacedEvent) bool {
		return e.OrderID == "order-1" && e.RequestID == "req-7"
	})).Return(nil).Once()

	ctx := WithRequestID(context.Background(), "req-7")
	order, err := f.checkout.Checkout(ctx, "sess")
	require.NoError(t, err)
	assert.Equal(t, "order-1", order.ID)

	view := f.storefront.Cart("sess")
	assert.Empty(t, view.Items)
	assert.Empty(t, view.Summary.Code, "promotion is cleared with the cart")

	f.backend.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func TestCheckout_Preconditions(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.fillCart(t)
		f.backend.On("GetSession", mock.Anything, "sess").Return(nil, nil).Once()

		_, err := f.checkout.Checkout(context.Background(), "sess")
		assert.ErrorIs(t, err, ErrNotAuthenticated)
		f.backend.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		assert.Equal(t, 2, f.storefront.Cart("sess").ItemCount)
	})

	t.Run("empty_cart", func(t *testing.T) {
		f := newCheckoutFixture(t)
		f.backend.On("GetSession", mock.Anything, "sess").Return(shopper, nil).Maybe()

		_, err := f.checkout.Checkout(context.Background(), "sess")
		assert.ErrorIs(t, err, ErrEmptyCart)
		f.backend.AssertNotCalled(t, "GetSession", mock.Anything, mock.Anything)
		f.backend.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCheckout_GatewayFailureKeepsCart(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t)

	boom := errors.New("backend unavailable")
	f.backend.On("GetSession", mock.Anything, "sess").Return(shopper, nil).Once()
	f.backend.On("CreateOrder", mock.Anything, "user-1", mock.Anything, mock.Anything).Return(nil, boom).Once()

	_, err := f.checkout.Checkout(context.Background(), "sess")
	assert.ErrorIs(t, err, boom)

	view := f.storefront.Cart("sess")
	assert.Equal(t, 2, view.ItemCount)
	assert.Equal(t, "GENIUS20", view.Summary.Code)
	f.publisher.AssertNotCalled(t, "PublishOrderPlaced", mock.Anything, mock.Anything)

	// The guard is released, so the shopper can retry.
	_, err = f.storefront.RemoveFromCart("sess", "nothing")
	assert.NoError(t, err)
}

func TestCheckout_PublishFailureIsNotFatal(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t)

	f.backend.On("GetSession", mock.Anything, "sess").Return(shopper, nil).Once()
	f.backend.On("CreateOrder", mock.Anything, "user-1", mock.Anything, mock.Anything).
		Return(&domain.Order{ID: "order-2", UserID: "user-1"}, nil).Once()
	f.publisher.On("PublishOrderPlaced", mock.Anything, mock.Anything).Return(errors.New("kafka down")).Once()

	order, err := f.checkout.Checkout(context.Background(), "sess")
	require.NoError(t, err)
	assert.Equal(t, "order-2", order.ID)
	assert.Zero(t, f.storefront.Cart("sess").ItemCount)
}

func TestCheckout_InFlightGuard(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t)

	started := make(chan struct{})
	release := make(chan struct{})
	f.backend.On("GetSession", mock.Anything, "sess").Return(shopper, nil).Twice()
	f.backend.On("CreateOrder", mock.Anything, "user-1", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return(&domain.Order{ID: "order-3", UserID: "user-1"}, nil).Once()
	f.publisher.On("PublishOrderPlaced", mock.Anything, mock.Anything).Return(nil).Once()

	done := make(chan error, 1)
	go func() {
		_, err := f.checkout.Checkout(context.Background(), "sess")
		done <- err
	}()

	<-started
	f.backend.On("GetProduct", mock.Anything, "1").Return(&lamp, nil).Once()
	_, err := f.checkout.Checkout(context.Background(), "sess")
	assert.ErrorIs(t, err, ErrCheckoutInProgress)

	_, err = f.storefront.AddToCart(context.Background(), "sess", "1", 1)
	assert.ErrorIs(t, err, ErrCheckoutInProgress)

	close(release)
	require.NoError(t, <-done)
	f.backend.AssertNumberOfCalls(t, "CreateOrder", 1)
}
