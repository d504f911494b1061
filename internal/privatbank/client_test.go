package privatbank_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"service-storefront/internal"
	"service-storefront/internal/privatbank"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, err := w.Write([]byte(body))
		require.NoError(t, err)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestClient_FetchRates_UsesSale(t *testing.T) {
	server := serve(t, http.StatusOK, `[
		{"ccy":"EUR","base_ccy":"UAH","buy":"45.80000","sale":"46.70000"},
		{"ccy":"USD","base_ccy":"UAH","buy":"41.10000","sale":"41.70000"}
	]`)

	client := privatbank.New(server.URL)
	result, err := client.FetchRates(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
	assert.True(t, result[internal.USD].Equal(decimal.RequireFromString("41.7")))
	assert.True(t, result[internal.EUR].Equal(decimal.RequireFromString("46.7")))
	assert.Equal(t, internal.SourcePrivat, client.Source())
}

func TestClient_FetchRates_FallsBackToBuy(t *testing.T) {
	server := serve(t, http.StatusOK, `[
		{"ccy":"USD","base_ccy":"UAH","buy":"41.10000","sale":""},
		{"ccy":"EUR","base_ccy":"UAH","buy":"45.8"}
	]`)

	result, err := privatbank.New(server.URL).FetchRates(context.Background())

	require.NoError(t, err)
	assert.True(t, result[internal.USD].Equal(decimal.RequireFromString("41.1")))
	assert.True(t, result[internal.EUR].Equal(decimal.RequireFromString("45.8")))
}

func TestClient_FetchRates_IgnoresForeignBasesAndBadEntries(t *testing.T) {
	server := serve(t, http.StatusOK, `[
		{"ccy":"BTC","base_ccy":"USD","buy":"60000","sale":"65000"},
		{"ccy":"USD","base_ccy":"EUR","buy":"0.9","sale":"0.95"},
		{"ccy":"EUR","base_ccy":"UAH","buy":"x","sale":"y"},
		{"ccy":"USD","base_ccy":"uah","buy":"41","sale":"41.5"},
		42
	]`)

	result, err := privatbank.New(server.URL).FetchRates(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.True(t, result[internal.USD].Equal(decimal.RequireFromString("41.5")))
}

func TestClient_FetchRates_HTTPError(t *testing.T) {
	server := serve(t, http.StatusInternalServerError, "internal server error")

	result, err := privatbank.New(server.URL).FetchRates(context.Background())

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "internal server error")
}

func TestClient_FetchRates_MalformedPayload(t *testing.T) {
	server := serve(t, http.StatusOK, `<html>oops</html>`)

	_, err := privatbank.New(server.URL).FetchRates(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal response")
}
