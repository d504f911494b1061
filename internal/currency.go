package internal

import (
	"bytes"
	"fmt"
	"strings"
)

type CurrencyCode string

func NewCurrencyCode(s string) (CurrencyCode, error) {
	ccy := CurrencyCode(strings.ToUpper(strings.TrimSpace(s)))
	if !ccy.IsSupported() {
		return "", fmt.Errorf("unsupported currency %q", s)
	}
	return ccy, nil
}

const (
	UAH CurrencyCode = "UAH"
	USD CurrencyCode = "USD"
	EUR CurrencyCode = "EUR"
)

// BaseCurrency is the currency all storefront prices are displayed in.
const BaseCurrency = UAH

var supportedSet = map[CurrencyCode]struct{}{
	UAH: {}, USD: {}, EUR: {},
}

// ForeignCurrencies returns the non-base currencies in reconciliation order.
func ForeignCurrencies() []CurrencyCode {
	return []CurrencyCode{USD, EUR}
}

func (c CurrencyCode) IsSupported() bool {
	_, ok := supportedSet[c]
	return ok
}

func (c CurrencyCode) IsForeign() bool {
	return c.IsSupported() && c != BaseCurrency
}

func (c CurrencyCode) String() string { return string(c) }

func (c CurrencyCode) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", c.String())), nil
}

func (c *CurrencyCode) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	s := strings.Trim(string(b), "\"")
	ccy, err := NewCurrencyCode(s)
	if err != nil {
		return err
	}
	*c = ccy
	return nil
}
