package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultProviderTimeout = 10 * time.Second
	DefaultColdStartLimit  = 50
)

// ReconcileResult is the outcome of one cycle. OK is false when nothing was
// chosen or persisting failed; Rates then holds the untouched cache contents.
type ReconcileResult struct {
	OK         bool                             `json:"ok"`
	UpdatedAt  time.Time                        `json:"updatedAt"`
	Rates      map[CurrencyCode]decimal.Decimal `json:"ratesToBase"`
	Comparison RateComparison                   `json:"compare"`
	Error      string                           `json:"error,omitempty"`
}

// ReconcileObserver receives cycle outcomes, typically to export metrics.
type ReconcileObserver interface {
	ObserveProviderFailure(source RateSource)
	ObserveCycle(result ReconcileResult)
}

type RateEngineOption func(*RateEngine)

func WithProviderTimeout(d time.Duration) RateEngineOption {
	return func(e *RateEngine) {
		if d > 0 {
			e.providerTimeout = d
		}
	}
}

func WithColdStartLimit(n int) RateEngineOption {
	return func(e *RateEngine) {
		if n > 0 {
			e.coldStartLimit = n
		}
	}
}

func WithObserver(o ReconcileObserver) RateEngineOption {
	return func(e *RateEngine) { e.observer = o }
}

func WithClock(now func() time.Time) RateEngineOption {
	return func(e *RateEngine) { e.now = now }
}

func WithLogger(l *slog.Logger) RateEngineOption {
	return func(e *RateEngine) { e.logger = l }
}

type RateEngine struct {
	nbu     RateProvider
	privat  RateProvider
	storage RateHistoryStorage
	cache   *RateCache

	providerTimeout time.Duration
	coldStartLimit  int
	observer        ReconcileObserver
	now             func() time.Time
	logger          *slog.Logger

	cycleMu sync.Mutex
}

func NewRateEngine(nbu, privat RateProvider, storage RateHistoryStorage, cache *RateCache, opts ...RateEngineOption) *RateEngine {
	e := &RateEngine{
		nbu:             nbu,
		privat:          privat,
		storage:         storage,
		cache:           cache,
		providerTimeout: DefaultProviderTimeout,
		coldStartLimit:  DefaultColdStartLimit,
		now:             time.Now,
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ColdStart fills the cache from persisted history. Rows may come in any
// order; the newest row per currency wins.
func (e *RateEngine) ColdStart(ctx context.Context) error {
	rows, err := e.storage.RecentRates(ctx, e.coldStartLimit)
	if err != nil {
		return fmt.Errorf("load recent rates: %w", err)
	}

	rates := make(map[CurrencyCode]decimal.Decimal)
	seenAt := make(map[CurrencyCode]time.Time)
	var newest time.Time

	for _, r := range rows {
		if r.FetchedAt.After(newest) {
			newest = r.FetchedAt
		}
		if !r.Currency.IsForeign() || !r.RateToBase.IsPositive() {
			continue
		}
		if at, ok := seenAt[r.Currency]; ok && !r.FetchedAt.After(at) {
			continue
		}
		rates[r.Currency] = r.RateToBase
		seenAt[r.Currency] = r.FetchedAt
	}

	e.cache.Load(rates, newest)
	e.logger.Info("rates cache warmed from history",
		slog.Int("rows", len(rows)),
		slog.Int("currencies", len(rates)),
		slog.Time("updated_at", newest),
	)
	return nil
}

type fetchOutcome struct {
	rates map[CurrencyCode]decimal.Decimal
	err   error
}

// ReconcileCycle fetches both providers, picks the best rate per currency,
// persists it and updates the cache. It never fails; problems are reported
// in the result.
func (e *RateEngine) ReconcileCycle(ctx context.Context) ReconcileResult {
	e.cycleMu.Lock()
	defer e.cycleMu.Unlock()

	now := e.now()

	var nbu, privat fetchOutcome
	var g errgroup.Group
	g.Go(func() error {
		nbu = e.fetch(ctx, e.nbu)
		return nil
	})
	g.Go(func() error {
		privat = e.fetch(ctx, e.privat)
		return nil
	})
	_ = g.Wait()

	best, cmp := ChooseBest(nbu.rates, privat.rates, now)
	e.cache.SetComparison(cmp)

	var result ReconcileResult
	switch {
	case len(best) == 0:
		result = e.degraded(cmp, fmt.Sprintf("both sources failed. NBU: %s; PRIVAT: %s",
			describe(nbu.err), describe(privat.err)))
	default:
		result = e.commit(ctx, best, cmp, now)
	}

	if e.observer != nil {
		e.observer.ObserveCycle(result)
	}
	return result
}

func (e *RateEngine) commit(ctx context.Context, best map[CurrencyCode]RateQuote, cmp RateComparison, now time.Time) ReconcileResult {
	quotes := make([]RateQuote, 0, len(best))
	chosen := make(map[CurrencyCode]decimal.Decimal, len(best))
	for _, ccy := range ForeignCurrencies() {
		q, ok := best[ccy]
		if !ok {
			continue
		}
		quotes = append(quotes, q)
		chosen[ccy] = q.RateToBase
	}

	if err := e.storage.AppendRates(ctx, quotes); err != nil {
		e.logger.Error("persist reconciled rates", slog.String("error", err.Error()))
		return e.degraded(cmp, fmt.Sprintf("persist rates: %v", err))
	}

	e.cache.Merge(chosen, now)
	snap := e.cache.Snapshot()

	e.logger.Info("rates reconciled",
		slog.Any("best", snap.Rates),
		slog.Time("updated_at", snap.UpdatedAt),
	)
	return ReconcileResult{
		OK:         true,
		UpdatedAt:  snap.UpdatedAt,
		Rates:      snap.Rates,
		Comparison: cmp,
	}
}

func (e *RateEngine) degraded(cmp RateComparison, msg string) ReconcileResult {
	snap := e.cache.Snapshot()
	return ReconcileResult{
		OK:         false,
		UpdatedAt:  snap.UpdatedAt,
		Rates:      snap.Rates,
		Comparison: cmp,
		Error:      msg,
	}
}

func (e *RateEngine) fetch(ctx context.Context, p RateProvider) fetchOutcome {
	if p == nil {
		return fetchOutcome{err: errors.New("provider is not configured")}
	}

	fetchCtx, cancel := context.WithTimeout(ctx, e.providerTimeout)
	defer cancel()

	rates, err := p.FetchRates(fetchCtx)
	if err != nil {
		e.logger.Warn("rate provider failed",
			slog.String("source", string(p.Source())),
			slog.String("error", err.Error()),
		)
		if e.observer != nil {
			e.observer.ObserveProviderFailure(p.Source())
		}
		return fetchOutcome{err: err}
	}
	return fetchOutcome{rates: maps.Clone(rates)}
}

func describe(err error) string {
	if err == nil {
		return "ok"
	}
	return strings.TrimSpace(err.Error())
}
