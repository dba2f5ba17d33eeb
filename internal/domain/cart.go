package domain

import "github.com/shopspring/decimal"

// CartItem is a line item: a product snapshot taken when it entered the cart
// and a quantity that never drops below 1.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

func (i CartItem) LineTotal() decimal.Decimal {
	return i.UnitPrice().Mul(decimal.NewFromInt(int64(i.Quantity)))
}
