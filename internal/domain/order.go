package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
)

var ErrInvalidStatusTransition = errors.New("invalid order status transition")

// statusRank orders the lifecycle; transitions only ever increase it.
var statusRank = map[OrderStatus]int{
	StatusProcessing: 0,
	StatusShipped:    1,
	StatusDelivered:  2,
}

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

type Order struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Items     []CartItem      `json:"items"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Discount  decimal.Decimal `json:"discount"`
	Total     decimal.Decimal `json:"total"`
	PromoCode string          `json:"promo_code,omitempty"`
	Status    OrderStatus     `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// OrderPricing is what checkout hands to the order gateway. All amounts are USD.
type OrderPricing struct {
	Subtotal  decimal.Decimal
	Discount  decimal.Decimal
	Total     decimal.Decimal
	PromoCode string
}

// Advance moves the order forward to next. Re-applying the current status is a no-op.
func (o *Order) Advance(next OrderStatus, now time.Time) (changed bool, err error) {
	to, ok := statusRank[next]
	if !ok {
		return false, fmt.Errorf("%w: unknown status %q", ErrInvalidStatusTransition, next)
	}
	from, ok := statusRank[o.Status]
	if !ok {
		return false, fmt.Errorf("%w: order %s has unknown status %q", ErrInvalidStatusTransition, o.ID, o.Status)
	}
	if to == from {
		return false, nil
	}
	if to < from {
		return false, fmt.Errorf("%w: from %s to %s", ErrInvalidStatusTransition, o.Status, next)
	}
	o.Status = next
	o.UpdatedAt = now
	return true, nil
}
