package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vitos/crypto_dashboard/internal/domain"
)

const (
	DefaultBaseURL = "https://api.coingecko.com/api/v3"
	DefaultTimeout = 10 * time.Second

	// PageSize is the fixed number of coins on the markets table.
	PageSize = 20

	apiKeyHeader = "x-cg-demo-api-key"
)

type Client struct {
	baseURL   string
	apiKey    string
	userAgent string
	client    *http.Client
}

type Option func(*Client)

// WithAPIKey sends a CoinGecko demo API key with every request.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchData issues a GET to rawURL and decodes the JSON body into out.
// It does not retry.
func (c *Client) FetchData(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &domain.NetworkError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return &domain.HTTPError{URL: rawURL, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.NetworkError{URL: rawURL, Err: err}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &domain.MalformedDataError{Field: "body", Err: err}
	}
	return nil
}

func (c *Client) marketsURL() string {
	q := url.Values{}
	q.Set("vs_currency", "usd")
	q.Set("order", "market_cap_desc")
	q.Set("per_page", fmt.Sprintf("%d", PageSize))
	q.Set("page", "1")
	q.Set("sparkline", "true")
	return c.baseURL + "/coins/markets?" + q.Encode()
}

func (c *Client) coinURL(id string) string {
	return c.baseURL + "/coins/" + url.PathEscape(id)
}

// ListMarkets returns the top coins by market cap, in upstream order.
func (c *Client) ListMarkets(ctx context.Context) ([]domain.CoinSummary, error) {
	var payload []marketPayload
	if err := c.FetchData(ctx, c.marketsURL(), &payload); err != nil {
		return nil, err
	}
	return decodeMarkets(payload)
}

// GetCoin returns the detail record for id. It is never cached.
func (c *Client) GetCoin(ctx context.Context, id string) (*domain.CoinDetail, error) {
	if strings.TrimSpace(id) == "" {
		return nil, &domain.MalformedDataError{Field: "id"}
	}
	var payload *coinPayload
	if err := c.FetchData(ctx, c.coinURL(id), &payload); err != nil {
		return nil, err
	}
	return decodeCoin(payload)
}
