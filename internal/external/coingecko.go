package external

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/kjannette/trahn-ticker/internal/config"
	"github.com/kjannette/trahn-ticker/internal/models"
)

const simplePricePath = "/api/v3/simple/price"

// ErrNoAssets is returned when a request is built for an empty id list.
var ErrNoAssets = errors.New("no asset ids given")

// StatusError reports a non-200 response from CoinGecko.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API request failed with status code %d", e.StatusCode)
}

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=external_test -destination=mock_http_client_test.go -source=coingecko.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type CoinGeckoClient struct {
	baseURL    string
	httpClient HTTPClient
}

type Option func(*CoinGeckoClient)

func WithBaseURL(baseURL string) Option {
	return func(c *CoinGeckoClient) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *CoinGeckoClient) {
		c.httpClient = httpClient
	}
}

// NewCoinGeckoClient returns a client for the public simple/price endpoint.
// The default http.Client has no timeout; requests end when the context does.
func NewCoinGeckoClient(opts ...Option) *CoinGeckoClient {
	c := &CoinGeckoClient{
		baseURL:    config.CoinGeckoBaseURL,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BuildRequest constructs the GET for ids, joined in the given order.
func (c *CoinGeckoClient) BuildRequest(ctx context.Context, ids []models.AssetID) (*http.Request, error) {
	if len(ids) == 0 {
		return nil, ErrNoAssets
	}

	joined := make([]string, len(ids))
	for i, id := range ids {
		joined[i] = string(id)
	}

	q := url.Values{}
	q.Set("ids", strings.Join(joined, ","))
	q.Set("vs_currencies", "usd,eur")
	q.Set("include_market_cap", "true")
	q.Set("include_24hr_vol", "true")
	q.Set("include_24hr_change", "true")
	q.Set("include_last_updated_at", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+simplePricePath+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// FetchPrices performs a single request. It never retries; callers treat any
// error as "no data" for the cycle.
func (c *CoinGeckoClient) FetchPrices(ctx context.Context, ids []models.AssetID) (*models.Snapshot, error) {
	req, err := c.BuildRequest(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("coingecko fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var snap models.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &snap, nil
}
