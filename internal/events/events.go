package events

import (
	"time"

	"github.com/emmawebdev2005/ShopGenius/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderPlacedEvent is published once per successful checkout.
type OrderPlacedEvent struct {
	EventID   string             `json:"event_id"`
	OrderID   string             `json:"order_id"`
	UserID    string             `json:"user_id"`
	Subtotal  decimal.Decimal    `json:"subtotal"`
	Discount  decimal.Decimal    `json:"discount"`
	Total     decimal.Decimal    `json:"total"`
	PromoCode string             `json:"promo_code,omitempty"`
	Items     []OrderItem        `json:"items"`
	Status    domain.OrderStatus `json:"status"`
	Timestamp time.Time          `json:"timestamp"`
	RequestID string             `json:"request_id,omitempty"`
}

type OrderItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// OrderStatusChangedEvent comes from fulfilment and drives status transitions.
type OrderStatusChangedEvent struct {
	EventID   string             `json:"event_id"`
	OrderID   string             `json:"order_id"`
	Status    domain.OrderStatus `json:"status"`
	Timestamp time.Time          `json:"timestamp"`
}

func NewOrderPlacedEvent(o *domain.Order, requestID string) OrderPlacedEvent {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			ProductID:   it.ID,
			ProductName: it.Title,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}
	return OrderPlacedEvent{
		EventID:   uuid.NewString(),
		OrderID:   o.ID,
		UserID:    o.UserID,
		Subtotal:  o.Subtotal,
		Discount:  o.Discount,
		Total:     o.Total,
		PromoCode: o.PromoCode,
		Items:     items,
		Status:    o.Status,
		Timestamp: o.CreatedAt,
		RequestID: requestID,
	}
}
