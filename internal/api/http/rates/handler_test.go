package rates_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"service-storefront/internal"
	rateshttp "service-storefront/internal/api/http/rates"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEngine struct {
	calls  int
	result internal.ReconcileResult
}

func (s *stubEngine) ReconcileCycle(ctx context.Context) internal.ReconcileResult {
	s.calls++
	return s.result
}

func passThrough(next http.Handler) http.Handler { return next }

func denyAll(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
}

func TestHandler_GetDebug(t *testing.T) {
	at := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	cache := internal.NewRateCache()
	cache.Load(map[internal.CurrencyCode]decimal.Decimal{internal.USD: decimal.RequireFromString("41.25")}, at)
	cache.SetComparison(internal.RateComparison{FetchedAt: at})

	mux := http.NewServeMux()
	rateshttp.New(cache, &stubEngine{}).Register(mux, passThrough)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rates", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		UpdatedAt       *time.Time        `json:"updatedAt"`
		BestRatesToBase map[string]string `json:"bestRatesToBase"`
		LastComparison  map[string]any    `json:"lastComparison"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.UpdatedAt)
	assert.True(t, at.Equal(*body.UpdatedAt))
	assert.Equal(t, "41.25", body.BestRatesToBase["USD"])
	assert.NotNil(t, body.LastComparison)
}

func TestHandler_GetDebug_EmptyCache(t *testing.T) {
	mux := http.NewServeMux()
	rateshttp.New(internal.NewRateCache(), &stubEngine{}).Register(mux, passThrough)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rates", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"updatedAt":null,"bestRatesToBase":{},"lastComparison":null}`, rec.Body.String())
}

func TestHandler_Refresh(t *testing.T) {
	eng := &stubEngine{result: internal.ReconcileResult{OK: false, Error: "both sources failed"}}
	mux := http.NewServeMux()
	rateshttp.New(internal.NewRateCache(), eng).Register(mux, passThrough)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/rates/refresh", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, eng.calls)
	assert.Contains(t, rec.Body.String(), `"ok":false`)
	assert.Contains(t, rec.Body.String(), "both sources failed")
}

func TestHandler_RequiresAuth(t *testing.T) {
	eng := &stubEngine{}
	mux := http.NewServeMux()
	rateshttp.New(internal.NewRateCache(), eng).Register(mux, denyAll)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/rates/refresh", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, eng.calls)
}

func TestHandler_RefreshMethodNotAllowed(t *testing.T) {
	mux := http.NewServeMux()
	rateshttp.New(internal.NewRateCache(), &stubEngine{}).Register(mux, passThrough)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rates/refresh", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
