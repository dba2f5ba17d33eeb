package pricing

import (
	"testing"

	"github.com/emmawebdev2005/ShopGenius/internal/currency"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSubtotal string

func (f fixedSubtotal) Subtotal() decimal.Decimal {
	return decimal.RequireFromString(string(f))
}

func TestEngine_QuoteWithPromo(t *testing.T) {
	e := MustNewEngine(DefaultCodes)

	var promo Promotion
	require.NoError(t, e.Apply(&promo, "genius20"))

	q := e.Quote(fixedSubtotal("100.00"), promo, currency.USD)
	assert.Equal(t, "20.00", q.Discount.StringFixed(2))
	assert.Equal(t, "80.00", q.Total.StringFixed(2))
	assert.Equal(t, "80.00", q.PayableUSD().StringFixed(2))
	assert.Equal(t, "$", q.Symbol)
	assert.Equal(t, "GENIUS20", q.Code)
}

func TestEngine_InvalidCodeResetsDiscount(t *testing.T) {
	e := MustNewEngine(DefaultCodes)

	var promo Promotion
	require.NoError(t, e.Apply(&promo, "GENIUS20"))

	err := e.Apply(&promo, "bogus")
	require.ErrorIs(t, err, ErrInvalidPromoCode)
	assert.False(t, promo.Active())

	q := e.Quote(fixedSubtotal("100.00"), promo, currency.USD)
	assert.True(t, q.Discount.IsZero())
	assert.Equal(t, "100.00", q.Total.StringFixed(2))
}

func TestEngine_NewCodeReplacesPrevious(t *testing.T) {
	e := MustNewEngine(DefaultCodes)

	var promo Promotion
	require.NoError(t, e.Apply(&promo, "GENIUS20"))
	require.NoError(t, e.Apply(&promo, "welcome10"))

	q := e.Quote(fixedSubtotal("100"), promo, currency.USD)
	assert.Equal(t, "10.00", q.Discount.StringFixed(2))
	assert.Equal(t, "90.00", q.Total.StringFixed(2))
}

func TestEngine_EmptyCodeClears(t *testing.T) {
	e := MustNewEngine(DefaultCodes)

	var promo Promotion
	require.NoError(t, e.Apply(&promo, "GENIUS20"))
	require.NoError(t, e.Apply(&promo, "  "))
	assert.Equal(t, Promotion{}, promo)
}

func TestEngine_QuoteConvertsCurrency(t *testing.T) {
	e := MustNewEngine(DefaultCodes)
	promo := Promotion{}
	require.NoError(t, e.Apply(&promo, "GENIUS20"))

	q := e.Quote(fixedSubtotal("100"), promo, currency.EUR)
	assert.Equal(t, "73.60", q.Total.StringFixed(2))
	assert.Equal(t, "€", q.Symbol)
	assert.Equal(t, "80.00", q.PayableUSD().StringFixed(2))

	d := q.Display()
	assert.Equal(t, Display{Subtotal: "100.00", Discount: "20.00", Total: "73.60", Currency: "EUR", Symbol: "€", Code: "GENIUS20"}, d)
}

func TestEngine_QuoteIsIdempotent(t *testing.T) {
	e := MustNewEngine(DefaultCodes)
	promo := Promotion{}
	require.NoError(t, e.Apply(&promo, "GENIUS20"))
	src := fixedSubtotal("249.99")

	first := e.Quote(src, promo, currency.GBP)
	second := e.Quote(src, promo, currency.GBP)
	assert.True(t, first.Total.Equal(second.Total))
	assert.True(t, first.Discount.Equal(second.Discount))
	assert.Equal(t, first.Display(), second.Display())
}

func TestNewEngine_RejectsBadFractions(t *testing.T) {
	_, err := NewEngine(map[string]decimal.Decimal{"FREE": decimal.NewFromInt(1)})
	require.ErrorIs(t, err, ErrInvalidDiscount)

	_, err = NewEngine(map[string]decimal.Decimal{"NEG": decimal.RequireFromString("-0.1")})
	require.ErrorIs(t, err, ErrInvalidDiscount)
}

func TestEngine_QuoteUnknownCurrencyPanics(t *testing.T) {
	e := MustNewEngine(DefaultCodes)
	assert.Panics(t, func() {
		e.Quote(fixedSubtotal("1"), Promotion{}, currency.Currency("XYZ"))
	})
}
