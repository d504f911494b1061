package privatbank

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"service-storefront/internal"

	"github.com/shopspring/decimal"
)

const (
	DefaultURL   = "https://api.privatbank.ua/p24api/pubinfo?exchange&json&coursid=5"
	maxBodyBytes = 32 << 10
)

// Quote is one cash/card exchange quote as PrivatBank publishes it.
type Quote struct {
	CCY     string          `json:"ccy"`
	BaseCCY string          `json:"base_ccy"`
	Buy     json.RawMessage `json:"buy"`
	Sale    json.RawMessage `json:"sale"`
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

func (c *Client) Source() internal.RateSource { return internal.SourcePrivat }

func (c *Client) LatestQuotes(ctx context.Context) ([]Quote, error) {
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
		return nil, fmt.Errorf("privatbank http %d: %s", resp.StatusCode, string(body))
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	out := make([]Quote, 0, len(raw))
	for _, r := range raw {
		var q Quote
		if err := json.Unmarshal(r, &q); err != nil {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

// FetchRates uses the sale price, falling back to buy when sale is missing.
// Quotes against anything but UAH are ignored.
func (c *Client) FetchRates(ctx context.Context) (map[internal.CurrencyCode]decimal.Decimal, error) {
	quotes, err := c.LatestQuotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("privatbank latest: %w", err)
	}

	out := make(map[internal.CurrencyCode]decimal.Decimal)
	for _, q := range quotes {
		if !strings.EqualFold(strings.TrimSpace(q.BaseCCY), string(internal.BaseCurrency)) {
			continue
		}
		ccy, err := internal.NewCurrencyCode(q.CCY)
		if err != nil || !ccy.IsForeign() {
			continue
		}

		rate, ok := internal.ParseProviderRate(q.Sale)
		if !ok {
			rate, ok = internal.ParseProviderRate(q.Buy)
		}
		if !ok {
			continue
		}
		out[ccy] = rate
	}
	return out, nil
}
