package internal

import (
	"strings"

	"github.com/shopspring/decimal"
)

const priceDecimals = 2

var one = decimal.NewFromInt(1)

type RateReader interface {
	Rate(ccy CurrencyCode) (decimal.Decimal, bool)
}

// PriceConverter turns stored prices into the base currency using whatever
// rates are cached right now. It never does I/O.
type PriceConverter struct {
	rates RateReader
}

func NewPriceConverter(rates RateReader) *PriceConverter {
	return &PriceConverter{rates: rates}
}

// RateToBase returns 1 for the base currency and the cached rate for a
// foreign one. ok is false when the rate is unknown.
func (c *PriceConverter) RateToBase(ccy CurrencyCode) (decimal.Decimal, bool) {
	if ccy == BaseCurrency {
		return one, true
	}
	if !ccy.IsForeign() {
		return decimal.Decimal{}, false
	}
	r, ok := c.rates.Rate(ccy)
	if !ok || !r.IsPositive() {
		return decimal.Decimal{}, false
	}
	return r, true
}

// Convert returns amount*rate rounded to 2 places, half away from zero.
func (c *PriceConverter) Convert(amount decimal.Decimal, ccy CurrencyCode) (decimal.Decimal, bool) {
	rate, ok := c.RateToBase(ccy)
	if !ok {
		return decimal.Decimal{}, false
	}
	return amount.Mul(rate).Round(priceDecimals), true
}

// ConvertString is Convert for raw stored values. Anything that is not a
// finite decimal yields no value.
func (c *PriceConverter) ConvertString(amount, ccy string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return c.Convert(d, CurrencyCode(strings.ToUpper(strings.TrimSpace(ccy))))
}

// ConvertNull is ConvertString shaped for JSON responses, where an unknown
// price is rendered as null.
func (c *PriceConverter) ConvertNull(amount, ccy string) decimal.NullDecimal {
	d, ok := c.ConvertString(amount, ccy)
	return decimal.NullDecimal{Decimal: d, Valid: ok}
}
