// Package cart holds a shopper's line items.
//
// A Ledger is not safe for concurrent use; callers serialize access per session.
package cart

import (
	"fmt"

	"github.com/emmawebdev2005/ShopGenius/internal/domain"
	"github.com/shopspring/decimal"
)

type Ledger struct {
	items []domain.CartItem
}

func NewLedger() *Ledger {
	return &Ledger{}
}

func (l *Ledger) indexOf(id string) int {
	for i := range l.items {
		if l.items[i].ID == id {
			return i
		}
	}
	return -1
}

// Add puts one unit of p in the cart, incrementing an existing line instead of
// appending a duplicate.
func (l *Ledger) Add(p domain.Product) {
	l.AddQuantity(p, 1)
}

// AddQuantity adds n units of p. n below 1 is a caller bug.
func (l *Ledger) AddQuantity(p domain.Product, n int) {
	if n < 1 {
		panic(fmt.Sprintf("cart: add quantity %d for product %s", n, p.ID))
	}
	if i := l.indexOf(p.ID); i >= 0 {
		l.items[i].Quantity += n
		return
	}
	l.items = append(l.items, domain.CartItem{Product: p, Quantity: n})
}

// Remove deletes the line for id. Unknown ids are ignored.
func (l *Ledger) Remove(id string) {
	i := l.indexOf(id)
	if i < 0 {
		return
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
}

// UpdateQuantity shifts a line's quantity by delta, clamped at 1.
// Unknown ids are ignored; use Remove to drop a line.
func (l *Ledger) UpdateQuantity(id string, delta int) {
	i := l.indexOf(id)
	if i < 0 {
		return
	}
	l.items[i].Quantity = max(1, l.items[i].Quantity+delta)
}

func (l *Ledger) Quantity(id string) int {
	if i := l.indexOf(id); i >= 0 {
		return l.items[i].Quantity
	}
	return 0
}

// Subtotal is the exact USD sum of all line totals.
func (l *Ledger) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range l.items {
		sum = sum.Add(it.LineTotal())
	}
	return sum
}

// ItemCount is the total number of units, not distinct lines.
func (l *Ledger) ItemCount() int {
	n := 0
	for _, it := range l.items {
		n += it.Quantity
	}
	return n
}

// Items returns a copy of the lines in insertion order.
func (l *Ledger) Items() []domain.CartItem {
	out := make([]domain.CartItem, len(l.items))
	copy(out, l.items)
	return out
}

func (l *Ledger) Len() int {
	return len(l.items)
}

func (l *Ledger) IsEmpty() bool {
	return len(l.items) == 0
}

func (l *Ledger) Clear() {
	l.items = nil
}
