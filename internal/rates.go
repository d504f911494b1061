package internal

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type RateSource string

const (
	SourceNBU    RateSource = "NBU"
	SourcePrivat RateSource = "PRIVAT"
)

// RateQuote is a reconciled rate: units of base currency per 1 unit of Currency.
type RateQuote struct {
	Currency   CurrencyCode    `json:"currency"`
	RateToBase decimal.Decimal `json:"rateToBase"`
	FetchedAt  time.Time       `json:"fetchedAt"`
	Source     RateSource      `json:"source"`
}

// CurrencyComparison holds both providers' raw values for one currency and
// what reconciliation made of them. Nil means "no value".
type CurrencyComparison struct {
	NBU    *decimal.Decimal `json:"nbu"`
	Privat *decimal.Decimal `json:"privat"`
	Best   *decimal.Decimal `json:"best"`
	Source RateSource       `json:"source,omitempty"`
}

type RateComparison struct {
	FetchedAt  time.Time                           `json:"fetchedAt"`
	Currencies map[CurrencyCode]CurrencyComparison `json:"currencies"`
}

// RateProvider fetches raw quotes from one upstream source, normalized to
// base currency per unit of a supported foreign currency.
type RateProvider interface {
	Source() RateSource
	FetchRates(ctx context.Context) (map[CurrencyCode]decimal.Decimal, error)
}

type RateHistoryStorage interface {
	AppendRates(ctx context.Context, quotes []RateQuote) error
	RecentRates(ctx context.Context, limit int) ([]RateQuote, error)
}

// ChooseBest reconciles two providers' quotes per foreign currency. The smaller
// rate wins (cheaper for the buyer); ties go to NBU. A missing map is treated
// as a failed provider. Non-positive winners are dropped from best but kept
// in the comparison.
func ChooseBest(nbu, privat map[CurrencyCode]decimal.Decimal, at time.Time) (map[CurrencyCode]RateQuote, RateComparison) {
	best := make(map[CurrencyCode]RateQuote)
	cmp := RateComparison{
		FetchedAt:  at,
		Currencies: make(map[CurrencyCode]CurrencyComparison),
	}

	for _, ccy := range ForeignCurrencies() {
		n, hasN := nbu[ccy]
		p, hasP := privat[ccy]

		var (
			chosen decimal.Decimal
			source RateSource
			found  bool
		)
		switch {
		case hasN && hasP:
			found = true
			if p.LessThan(n) {
				chosen, source = p, SourcePrivat
			} else {
				chosen, source = n, SourceNBU
			}
		case hasN:
			found = true
			chosen, source = n, SourceNBU
		case hasP:
			found = true
			chosen, source = p, SourcePrivat
		}

		entry := CurrencyComparison{}
		if hasN {
			entry.NBU = ptr(n)
		}
		if hasP {
			entry.Privat = ptr(p)
		}
		if found {
			entry.Best = ptr(chosen)
			entry.Source = source
		}
		cmp.Currencies[ccy] = entry

		if found && chosen.IsPositive() {
			best[ccy] = RateQuote{
				Currency:   ccy,
				RateToBase: chosen,
				FetchedAt:  at,
				Source:     source,
			}
		}
	}

	return best, cmp
}

func ptr(d decimal.Decimal) *decimal.Decimal { return &d }

// ParseProviderRate accepts a JSON number or string, with "," or "." as the
// decimal separator. Only positive values are accepted.
func ParseProviderRate(raw []byte) (decimal.Decimal, bool) {
	s := strings.TrimSpace(string(raw))
	s = strings.Trim(s, "\"")
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" || s == "null" {
		return decimal.Decimal{}, false
	}

	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() {
		return decimal.Decimal{}, false
	}
	return d, true
}
