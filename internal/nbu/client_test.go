package nbu_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"service-storefront/internal"
	"service-storefront/internal/nbu"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const payload = `[
  {"r030":840,"txt":"Долар США","rate":41.2539,"cc":"USD","exchangedate":"15.10.2026"},
  {"r030":978,"txt":"Євро","rate":"46,1012","cc":"EUR","exchangedate":"15.10.2026"},
  {"r030":826,"txt":"Фунт стерлінгів","rate":55.01,"cc":"GBP","exchangedate":"15.10.2026"},
  {"r030":392,"txt":"Єна","rate":"n/a","cc":"JPY","exchangedate":"15.10.2026"}
]`

func TestClient_FetchRates_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(payload))
		require.NoError(t, err)
	}))
	defer server.Close()

	client := nbu.New(server.URL)
	result, err := client.FetchRates(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
	assert.True(t, result[internal.USD].Equal(decimal.RequireFromString("41.2539")))
	assert.True(t, result[internal.EUR].Equal(decimal.RequireFromString("46.1012")))
	assert.Equal(t, internal.SourceNBU, client.Source())
}

func TestClient_LatestItems_SkipsMalformedEntries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(`[
			{"cc":"USD","rate":41.1,"exchangedate":"15.10.2026"},
			{"cc":"EUR","rate":46.0,"exchangedate":"not a date"},
			{"cc":42,"rate":1.5},
			"garbage"
		]`))
		require.NoError(t, err)
	}))
	defer server.Close()

	items, err := nbu.New(server.URL).LatestItems(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "USD", items[0].CC)
	date, ok := items[0].Date()
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), date.Time)

	assert.Equal(t, "EUR", items[1].CC)
	_, ok = items[1].Date()
	assert.False(t, ok)
}

func TestClient_FetchRates_IgnoresUnusedFieldShapes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(`[
			{"cc":"USD","rate":41.5,"exchangedate":"2026/10/15"},
			{"cc":"EUR","rate":45.1,"r030":"978","txt":null}
		]`))
		require.NoError(t, err)
	}))
	defer server.Close()

	result, err := nbu.New(server.URL).FetchRates(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.True(t, result[internal.USD].Equal(decimal.RequireFromString("41.5")))
	assert.True(t, result[internal.EUR].Equal(decimal.RequireFromString("45.1")))
}

func TestClient_FetchRates_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, err := w.Write([]byte("maintenance"))
		require.NoError(t, err)
	}))
	defer server.Close()

	result, err := nbu.New(server.URL).FetchRates(context.Background())

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "maintenance")
}

func TestClient_FetchRates_MalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(`{"error":"not an array"}`))
		require.NoError(t, err)
	}))
	defer server.Close()

	_, err := nbu.New(server.URL).FetchRates(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal response")
}

func TestClient_FetchRates_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := nbu.New(server.URL).FetchRates(ctx)

	require.Error(t, err)
}

func TestNew_DefaultURL(t *testing.T) {
	assert.Equal(t, nbu.DefaultURL, nbu.New("").BaseURL)
}
