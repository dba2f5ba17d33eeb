// Package currency converts authoritative USD amounts into display currencies.
// Conversion is presentation only; stored prices stay in USD.
package currency

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	JPY Currency = "JPY"
)

var ErrUnknownCurrency = errors.New("unknown currency")

type rate struct {
	perUSD   decimal.Decimal
	symbol   string
	decimals int32
}

var table = map[Currency]rate{
	USD: {perUSD: decimal.NewFromInt(1), symbol: "$", decimals: 2},
	EUR: {perUSD: decimal.RequireFromString("0.92"), symbol: "€", decimals: 2},
	GBP: {perUSD: decimal.RequireFromString("0.79"), symbol: "£", decimals: 2},
	JPY: {perUSD: decimal.NewFromInt(150), symbol: "¥", decimals: 0},
}

var order = []Currency{USD, EUR, GBP, JPY}

// All returns every supported currency in declaration order.
func All() []Currency {
	out := make([]Currency, len(order))
	copy(out, order)
	return out
}

// Parse is the boundary check for currency codes coming from callers.
// An empty string means USD.
func Parse(s string) (Currency, error) {
	if s == "" {
		return USD, nil
	}
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := table[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, s)
	}
	return c, nil
}

func (c Currency) String() string {
	return string(c)
}

func (c Currency) Valid() bool {
	_, ok := table[c]
	return ok
}

func (c Currency) lookup() rate {
	r, ok := table[c]
	if !ok {
		panic(fmt.Sprintf("currency: no rate for %q", string(c)))
	}
	return r
}

// Rate returns units of c per 1 USD. Panics on a currency outside the enum.
func (c Currency) Rate() decimal.Decimal {
	return c.lookup().perUSD
}

func (c Currency) Symbol() string {
	return c.lookup().symbol
}

// Decimals is the number of fraction digits shown for c.
func (c Currency) Decimals() int32 {
	return c.lookup().decimals
}

// ToDisplay converts a USD amount to c at full precision.
func ToDisplay(amountUSD decimal.Decimal, c Currency) (decimal.Decimal, string) {
	r := c.lookup()
	return amountUSD.Mul(r.perUSD), r.symbol
}

// Format converts and renders an amount, rounding only here.
func Format(amountUSD decimal.Decimal, c Currency) string {
	v, sym := ToDisplay(amountUSD, c)
	return sym + v.StringFixed(c.Decimals())
}
