package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/emmawebdev2005/ShopGenius/internal/domain"
)

func (b *Backend) orders(ctx context.Context) ([]domain.Order, error) {
	orders := []domain.Order{}
	if err := b.load(ctx, keyOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// CreateOrder records an order and decrements stock for each line, clamped at 0.
// Stock is written before the order itself, so a failure on the second write
// leaves stock already decremented.
func (b *Backend) CreateOrder(ctx context.Context, userID string, items []domain.CartItem, pricing domain.OrderPricing) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, it := range items {
		if it.Quantity < 1 {
			return nil, fmt.Errorf("order item quantity for product %s must be at least 1, got %d", it.ID, it.Quantity)
		}
	}
	if err := b.wait(ctx); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	products, err := b.products(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(products))
	for i, p := range products {
		index[p.ID] = i
	}
	for _, it := range items {
		if _, ok := index[it.ID]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, it.ID)
		}
	}

	now := b.now()
	for _, it := range items {
		p := &products[index[it.ID]]
		p.Stock = max(0, p.Stock-it.Quantity)
		p.UpdatedAt = now
	}
	if err := b.save(ctx, keyProducts, products); err != nil {
		return nil, err
	}

	snapshot := make([]domain.CartItem, len(items))
	copy(snapshot, items)

	order := domain.Order{
		ID:        b.newID(),
		UserID:    userID,
		Items:     snapshot,
		Subtotal:  pricing.Subtotal,
		Discount:  pricing.Discount,
		Total:     pricing.Total,
		PromoCode: pricing.PromoCode,
		Status:    domain.StatusProcessing,
		CreatedAt: now,
		UpdatedAt: now,
	}

	orders, err := b.orders(ctx)
	if err != nil {
		return nil, err
	}
	orders = append(orders, order)
	if err := b.save(ctx, keyOrders, orders); err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders returns the user's orders, newest first.
func (b *Backend) ListOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	orders, err := b.orders(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Order, 0)
	for _, o := range orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// UpdateOrderStatus moves an order forward. It reports whether anything changed.
func (b *Backend) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	orders, err := b.orders(ctx)
	if err != nil {
		return nil, false, err
	}

	for i := range orders {
		if orders[i].ID != orderID {
			continue
		}
		changed, err := orders[i].Advance(status, b.now())
		if err != nil {
			return nil, false, err
		}
		if changed {
			if err := b.save(ctx, keyOrders, orders); err != nil {
				return nil, false, err
			}
		}
		o := orders[i]
		return &o, changed, nil
	}
	return nil, false, ErrOrderNotFound
}
