package internal_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	testifymock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"service-storefront/internal"
	"service-storefront/internal/mock"
)

type rates = map[internal.CurrencyCode]decimal.Decimal

type engineFixture struct {
	nbu     *mock.MockRateProvider
	privat  *mock.MockRateProvider
	storage *mock.MockRateHistoryStorage
	cache   *internal.RateCache
	engine  *internal.RateEngine
}

func newEngineFixture(t *testing.T, opts ...internal.RateEngineOption) *engineFixture {
	f := &engineFixture{
		nbu:     mock.NewMockRateProvider(t),
		privat:  mock.NewMockRateProvider(t),
		storage: mock.NewMockRateHistoryStorage(t),
		cache:   internal.NewRateCache(),
	}
	f.nbu.EXPECT().Source().Return(internal.SourceNBU).Maybe()
	f.privat.EXPECT().Source().Return(internal.SourcePrivat).Maybe()

	opts = append([]internal.RateEngineOption{
		internal.WithClock(func() time.Time { return at }),
		internal.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}, opts...)
	f.engine = internal.NewRateEngine(f.nbu, f.privat, f.storage, f.cache, opts...)
	return f
}

func TestRateEngine_ReconcileCycle_Success(t *testing.T) {
	f := newEngineFixture(t)

	f.nbu.EXPECT().FetchRates(testifymock.Anything).
		Return(rates{internal.USD: d("41.25"), internal.EUR: d("46.10")}, nil).Once()
	f.privat.EXPECT().FetchRates(testifymock.Anything).
		Return(rates{internal.USD: d("41.60"), internal.EUR: d("45.95")}, nil).Once()
	f.storage.EXPECT().
		AppendRates(testifymock.Anything, testifymock.MatchedBy(func(q []internal.RateQuote) bool {
			return len(q) == 2 &&
				q[0].Currency == internal.USD && q[0].RateToBase.Equal(d("41.25")) && q[0].Source == internal.SourceNBU &&
				q[1].Currency == internal.EUR && q[1].RateToBase.Equal(d("45.95")) && q[1].Source == internal.SourcePrivat &&
				q[0].FetchedAt.Equal(at)
		})).
		Return(nil).Once()

	res := f.engine.ReconcileCycle(context.Background())

	require.True(t, res.OK, res.Error)
	assert.Empty(t, res.Error)
	assert.Equal(t, at, res.UpdatedAt)
	assert.True(t, res.Rates[internal.USD].Equal(d("41.25")))
	assert.True(t, res.Rates[internal.EUR].Equal(d("45.95")))

	snap := f.cache.Snapshot()
	assert.Equal(t, at, snap.UpdatedAt)
	require.NotNil(t, snap.LastComparison)
	assert.Equal(t, internal.SourcePrivat, snap.LastComparison.Currencies[internal.EUR].Source)
}

func TestRateEngine_ReconcileCycle_TotalFailurePreservesCache(t *testing.T) {
	f := newEngineFixture(t)
	before := at.Add(-3 * time.Hour)
	f.cache.Load(rates{internal.USD: d("40.9"), internal.EUR: d("44.8")}, before)

	f.nbu.EXPECT().FetchRates(testifymock.Anything).Return(nil, errors.New("nbu http 503")).Once()
	f.privat.EXPECT().FetchRates(testifymock.Anything).Return(nil, errors.New("dial tcp: timeout")).Once()

	res := f.engine.ReconcileCycle(context.Background())

	assert.False(t, res.OK)
	assert.Contains(t, res.Error, "NBU: nbu http 503")
	assert.Contains(t, res.Error, "PRIVAT: dial tcp: timeout")
	assert.Equal(t, before, res.UpdatedAt)
	assert.True(t, res.Rates[internal.USD].Equal(d("40.9")))

	snap := f.cache.Snapshot()
	assert.Equal(t, before, snap.UpdatedAt)
	assert.Equal(t, rates{internal.USD: d("40.9"), internal.EUR: d("44.8")}, snap.Rates)
	require.NotNil(t, snap.LastComparison)
	assert.Equal(t, at, snap.LastComparison.FetchedAt)
}

func TestRateEngine_ReconcileCycle_EmptyPayloadsAreFailure(t *testing.T) {
	f := newEngineFixture(t)

	f.nbu.EXPECT().FetchRates(testifymock.Anything).Return(rates{}, nil).Once()
	f.privat.EXPECT().FetchRates(testifymock.Anything).Return(rates{}, nil).Once()

	res := f.engine.ReconcileCycle(context.Background())

	assert.False(t, res.OK)
	assert.Contains(t, res.Error, "NBU: ok; PRIVAT: ok")
	assert.Empty(t, res.Rates)
	assert.True(t, res.UpdatedAt.IsZero())
}

func TestRateEngine_ReconcileCycle_PerCurrencyIndependence(t *testing.T) {
	f := newEngineFixture(t)
	before := at.Add(-time.Hour)
	f.cache.Load(rates{internal.USD: d("40.9"), internal.EUR: d("44.8")}, before)

	f.nbu.EXPECT().FetchRates(testifymock.Anything).Return(rates{internal.USD: d("41.3")}, nil).Once()
	f.privat.EXPECT().FetchRates(testifymock.Anything).Return(nil, errors.New("privatbank http 500")).Once()
	f.storage.EXPECT().
		AppendRates(testifymock.Anything, testifymock.MatchedBy(func(q []internal.RateQuote) bool {
			return len(q) == 1 && q[0].Currency == internal.USD
		})).
		Return(nil).Once()

	res := f.engine.ReconcileCycle(context.Background())

	require.True(t, res.OK)
	usd, _ := f.cache.Rate(internal.USD)
	eur, _ := f.cache.Rate(internal.EUR)
	assert.True(t, usd.Equal(d("41.3")))
	assert.True(t, eur.Equal(d("44.8")))
	assert.Equal(t, at, f.cache.Snapshot().UpdatedAt)
}

func TestRateEngine_ReconcileCycle_PersistFailureLeavesCache(t *testing.T) {
	f := newEngineFixture(t)
	before := at.Add(-time.Hour)
	f.cache.Load(rates{internal.USD: d("40.9")}, before)

	f.nbu.EXPECT().FetchRates(testifymock.Anything).Return(rates{internal.USD: d("41.3")}, nil).Once()
	f.privat.EXPECT().FetchRates(testifymock.Anything).Return(rates{internal.USD: d("41.8")}, nil).Once()
	f.storage.EXPECT().AppendRates(testifymock.Anything, testifymock.Anything).
		Return(errors.New("connection reset")).Once()

	res := f.engine.ReconcileCycle(context.Background())

	assert.False(t, res.OK)
	assert.Contains(t, res.Error, "persist rates: connection reset")
	usd, _ := f.cache.Rate(internal.USD)
	assert.True(t, usd.Equal(d("40.9")))
	assert.Equal(t, before, f.cache.Snapshot().UpdatedAt)
}

func TestRateEngine_ReconcileCycle_FetchesInParallel(t *testing.T) {
	f := newEngineFixture(t)

	var started sync.WaitGroup
	started.Add(2)
	both := make(chan struct{})
	go func() {
		started.Wait()
		close(both)
	}()

	waitForPeer := func(r rates) func(context.Context) (rates, error) {
		return func(ctx context.Context) (rates, error) {
			started.Done()
			select {
			case <-both:
				return r, nil
			case <-time.After(2 * time.Second):
				return nil, errors.New("peer fetch never started")
			}
		}
	}

	f.nbu.EXPECT().FetchRates(testifymock.Anything).RunAndReturn(waitForPeer(rates{internal.USD: d("41")})).Once()
	f.privat.EXPECT().FetchRates(testifymock.Anything).RunAndReturn(waitForPeer(rates{internal.EUR: d("46")})).Once()
	f.storage.EXPECT().AppendRates(testifymock.Anything, testifymock.Anything).Return(nil).Once()

	res := f.engine.ReconcileCycle(context.Background())

	require.True(t, res.OK, res.Error)
	assert.Len(t, res.Rates, 2)
}

func TestRateEngine_ReconcileCycle_ProviderTimeout(t *testing.T) {
	f := newEngineFixture(t, internal.WithProviderTimeout(50*time.Millisecond))

	f.nbu.EXPECT().FetchRates(testifymock.Anything).RunAndReturn(func(ctx context.Context) (rates, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}).Once()
	f.privat.EXPECT().FetchRates(testifymock.Anything).Return(rates{internal.USD: d("41.7")}, nil).Once()
	f.storage.EXPECT().AppendRates(testifymock.Anything, testifymock.Anything).Return(nil).Once()

	start := time.Now()
	res := f.engine.ReconcileCycle(context.Background())

	require.True(t, res.OK, res.Error)
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, internal.SourcePrivat, res.Comparison.Currencies[internal.USD].Source)
}

type recordingObserver struct {
	mu       sync.Mutex
	failures []internal.RateSource
	cycles   []internal.ReconcileResult
}

func (o *recordingObserver) ObserveProviderFailure(s internal.RateSource) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.failures = append(o.failures, s)
}

func (o *recordingObserver) ObserveCycle(r internal.ReconcileResult) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.cycles = append(o.cycles, r)
}

func TestRateEngine_ReconcileCycle_NotifiesObserver(t *testing.T) {
	obs := &recordingObserver{}
	f := newEngineFixture(t, internal.WithObserver(obs))

	f.nbu.EXPECT().FetchRates(testifymock.Anything).Return(nil, errors.New("boom")).Once()
	f.privat.EXPECT().FetchRates(testifymock.Anything).Return(nil, errors.New("boom")).Once()

	f.engine.ReconcileCycle(context.Background())

	assert.ElementsMatch(t, []internal.RateSource{internal.SourceNBU, internal.SourcePrivat}, obs.failures)
	require.Len(t, obs.cycles, 1)
	assert.False(t, obs.cycles[0].OK)
}

func TestRateEngine_ColdStart_NewestPerCurrency(t *testing.T) {
	f := newEngineFixture(t)
	t1 := time.Date(2026, 10, 13, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t1.Add(30 * time.Minute)

	f.storage.EXPECT().RecentRates(testifymock.Anything, internal.DefaultColdStartLimit).
		Return([]internal.RateQuote{
			{Currency: internal.USD, RateToBase: d("41.0"), FetchedAt: t1, Source: internal.SourceNBU},
			{Currency: internal.USD, RateToBase: d("42.0"), FetchedAt: t2, Source: internal.SourcePrivat},
			{Currency: internal.EUR, RateToBase: d("45.0"), FetchedAt: t3, Source: internal.SourceNBU},
		}, nil).Once()

	require.NoError(t, f.engine.ColdStart(context.Background()))

	snap := f.cache.Snapshot()
	assert.Equal(t, rates{internal.USD: d("42.0"), internal.EUR: d("45.0")}, snap.Rates)
	assert.Equal(t, t2, snap.UpdatedAt)
}

func TestRateEngine_ColdStart_NoHistory(t *testing.T) {
	f := newEngineFixture(t, internal.WithColdStartLimit(10))

	f.storage.EXPECT().RecentRates(testifymock.Anything, 10).Return(nil, nil).Once()

	require.NoError(t, f.engine.ColdStart(context.Background()))

	snap := f.cache.Snapshot()
	assert.Empty(t, snap.Rates)
	assert.True(t, snap.UpdatedAt.IsZero())
}

func TestRateEngine_ColdStart_StorageError(t *testing.T) {
	f := newEngineFixture(t)

	f.storage.EXPECT().RecentRates(testifymock.Anything, testifymock.Anything).
		Return(nil, errors.New("database error")).Once()

	err := f.engine.ColdStart(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	assert.Empty(t, f.cache.Snapshot().Rates)
}
