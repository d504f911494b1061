package nbu

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"service-storefront/internal"

	"github.com/shopspring/decimal"
)

const (
	DefaultURL   = "https://bank.gov.ua/NBUStatService/v1/statdirectory/exchange?json"
	maxBodyBytes = 256 << 10
)

// Item is one entry of the NBU official rates list. Only cc and rate are
// needed; the rest stays raw so a bad field elsewhere never drops the entry.
type Item struct {
	CC           string          `json:"cc"`
	Rate         json.RawMessage `json:"rate"`
	Code         json.RawMessage `json:"r030"`
	Name         json.RawMessage `json:"txt"`
	ExchangeDate json.RawMessage `json:"exchangedate"`
}

// Date parses exchangedate. ok is false when it is missing or malformed.
func (it Item) Date() (internal.Date, bool) {
	var d internal.Date
	if len(it.ExchangeDate) == 0 || json.Unmarshal(it.ExchangeDate, &d) != nil || d.IsZero() {
		return internal.Date{}, false
	}
	return d, true
}

type Client struct {
	BaseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	return &Client{
		BaseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

func (c *Client) Source() internal.RateSource { return internal.SourceNBU }

// LatestItems returns the raw list. Entries that fail to decode are skipped.
func (c *Client) LatestItems(ctx context.Context) ([]Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("nbu http %d: %s", resp.StatusCode, string(body))
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	out := make([]Item, 0, len(raw))
	for _, r := range raw {
		var it Item
		if err := json.Unmarshal(r, &it); err != nil {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

// FetchRates returns UAH per unit for every supported foreign currency
// present in the list.
func (c *Client) FetchRates(ctx context.Context) (map[internal.CurrencyCode]decimal.Decimal, error) {
	items, err := c.LatestItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("nbu latest: %w", err)
	}

	out := make(map[internal.CurrencyCode]decimal.Decimal)
	for _, it := range items {
		ccy, err := internal.NewCurrencyCode(it.CC)
		if err != nil || !ccy.IsForeign() {
			continue
		}
		rate, ok := internal.ParseProviderRate(it.Rate)
		if !ok {
			continue
		}
		out[ccy] = rate
	}
	return out, nil
}
