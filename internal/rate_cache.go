package internal

import (
	"maps"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
)

// RateSnapshot is an immutable view of the cache. Callers must not mutate Rates.
type RateSnapshot struct {
	Rates          map[CurrencyCode]decimal.Decimal
	UpdatedAt      time.Time
	LastComparison *RateComparison
}

// RateCache keeps the best known rate per foreign currency. Readers get a
// consistent snapshot without locking; writers swap in a fresh copy.
type RateCache struct {
	mu   sync.Mutex // serializes writers
	snap atomic.Pointer[RateSnapshot]
}

func NewRateCache() *RateCache {
	c := &RateCache{}
	c.snap.Store(&RateSnapshot{Rates: map[CurrencyCode]decimal.Decimal{}})
	return c
}

func (c *RateCache) Rate(ccy CurrencyCode) (decimal.Decimal, bool) {
	r, ok := c.snap.Load().Rates[ccy]
	return r, ok
}

// Snapshot returns a copy safe for callers to keep and modify.
func (c *RateCache) Snapshot() RateSnapshot {
	s := c.snap.Load()
	out := RateSnapshot{
		Rates:     maps.Clone(s.Rates),
		UpdatedAt: s.UpdatedAt,
	}
	if s.LastComparison != nil {
		cmp := *s.LastComparison
		cmp.Currencies = maps.Clone(s.LastComparison.Currencies)
		out.LastComparison = &cmp
	}
	return out
}

// Load replaces all rates, used on cold start.
func (c *RateCache) Load(rates map[CurrencyCode]decimal.Decimal, updatedAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := maps.Clone(rates)
	if next == nil {
		next = map[CurrencyCode]decimal.Decimal{}
	}

	old := c.snap.Load()
	c.snap.Store(&RateSnapshot{
		Rates:          next,
		UpdatedAt:      updatedAt,
		LastComparison: old.LastComparison,
	})
}

// Merge overwrites the given currencies and keeps every other entry as is.
func (c *RateCache) Merge(rates map[CurrencyCode]decimal.Decimal, updatedAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.snap.Load()
	next := maps.Clone(old.Rates)
	maps.Copy(next, rates)

	c.snap.Store(&RateSnapshot{
		Rates:          next,
		UpdatedAt:      updatedAt,
		LastComparison: old.LastComparison,
	})
}

func (c *RateCache) SetComparison(cmp RateComparison) {
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.snap.Load()
	c.snap.Store(&RateSnapshot{
		Rates:          old.Rates,
		UpdatedAt:      old.UpdatedAt,
		LastComparison: &cmp,
	})
}
