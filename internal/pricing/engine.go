// Package pricing turns a cart subtotal into a payable quote.
package pricing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emmawebdev2005/ShopGenius/internal/currency"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPromoCode = errors.New("invalid promo code")
	ErrInvalidDiscount  = errors.New("discount fraction must be in [0, 1)")
)

// DefaultCodes is the storefront's promo table. Keys are matched case-insensitively.
var DefaultCodes = map[string]decimal.Decimal{
	"GENIUS20":  decimal.RequireFromString("0.20"),
	"WELCOME10": decimal.RequireFromString("0.10"),
}

// Subtotaler is anything with a USD subtotal, typically a cart ledger.
type Subtotaler interface {
	Subtotal() decimal.Decimal
}

// Promotion is the single active promo code. The zero value means none.
type Promotion struct {
	Code     string
	Fraction decimal.Decimal
}

func (p Promotion) Active() bool {
	return p.Code != ""
}

type Quote struct {
	Subtotal decimal.Decimal   `json:"subtotal"`
	Discount decimal.Decimal   `json:"discount"`
	Total    decimal.Decimal   `json:"total"`
	Currency currency.Currency `json:"currency"`
	Symbol   string            `json:"symbol"`
	Code     string            `json:"promo_code,omitempty"`
}

// PayableUSD is the post-discount amount before display conversion.
func (q Quote) PayableUSD() decimal.Decimal {
	return q.Subtotal.Sub(q.Discount)
}

// Display is a quote rendered for presentation: every amount rounded once.
type Display struct {
	Subtotal string `json:"subtotal"`
	Discount string `json:"discount"`
	Total    string `json:"total"`
	Currency string `json:"currency"`
	Symbol   string `json:"symbol"`
	Code     string `json:"promo_code,omitempty"`
}

// Display shows subtotal and discount in USD, and the total in the quote's currency.
func (q Quote) Display() Display {
	return Display{
		Subtotal: q.Subtotal.StringFixed(2),
		Discount: q.Discount.StringFixed(2),
		Total:    q.Total.StringFixed(q.Currency.Decimals()),
		Currency: q.Currency.String(),
		Symbol:   q.Symbol,
		Code:     q.Code,
	}
}

type Engine struct {
	codes map[string]decimal.Decimal
}

func NewEngine(codes map[string]decimal.Decimal) (*Engine, error) {
	one := decimal.NewFromInt(1)
	normalized := make(map[string]decimal.Decimal, len(codes))
	for code, f := range codes {
		if f.IsNegative() || f.GreaterThanOrEqual(one) {
			return nil, fmt.Errorf("%w: %s=%s", ErrInvalidDiscount, code, f)
		}
		normalized[normalize(code)] = f
	}
	return &Engine{codes: normalized}, nil
}

// MustNewEngine is NewEngine for static tables.
func MustNewEngine(codes map[string]decimal.Decimal) *Engine {
	e, err := NewEngine(codes)
	if err != nil {
		panic(err)
	}
	return e
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Lookup returns the discount fraction for code.
func (e *Engine) Lookup(code string) (decimal.Decimal, bool) {
	f, ok := e.codes[normalize(code)]
	return f, ok
}

// Apply replaces the active promotion with code. An unknown code clears the
// promotion and reports ErrInvalidPromoCode; an empty code just clears it.
func (e *Engine) Apply(p *Promotion, code string) error {
	if strings.TrimSpace(code) == "" {
		*p = Promotion{}
		return nil
	}
	f, ok := e.Lookup(code)
	if !ok {
		*p = Promotion{}
		return fmt.Errorf("%w: %q", ErrInvalidPromoCode, code)
	}
	*p = Promotion{Code: normalize(code), Fraction: f}
	return nil
}

// Quote prices src under promotion p and converts the total into c.
// It panics if c is not a supported currency.
func (e *Engine) Quote(src Subtotaler, p Promotion, c currency.Currency) Quote {
	subtotal := src.Subtotal()
	discount := decimal.Zero
	if p.Active() {
		discount = subtotal.Mul(p.Fraction)
	}
	total, symbol := currency.ToDisplay(subtotal.Sub(discount), c)
	return Quote{
		Subtotal: subtotal,
		Discount: discount,
		Total:    total,
		Currency: c,
		Symbol:   symbol,
		Code:     p.Code,
	}
}
