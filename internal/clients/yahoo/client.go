// Package yahoo provides a market-data client for daily price history and
// fundamental snapshots. The engine treats it as a black box behind the
// provider interfaces; responses are cached in memory with a TTL to keep
// request volume down.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/aristath/advisor/internal/domain"
)

// Defaults for request handling.
const (
	defaultBaseURL  = "https://query1.finance.yahoo.com"
	requestTimeout  = 15 * time.Second
	historyCacheTTL = 15 * time.Minute
	fundsCacheTTL   = 6 * time.Hour
	historyRange    = "1y"
)

// usSymbols are tickers passed through without an exchange suffix; anything
// else defaults to the NSE listing.
var usSymbols = map[string]bool{
	"AAPL": true, "MSFT": true, "GOOGL": true, "AMZN": true, "META": true,
}

// Client fetches OHLCV history and fundamentals.
type Client struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger

	mu    sync.Mutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	data      interface{}
	expiresAt time.Time
}

// NewClient creates a market-data client.
func NewClient(log zerolog.Logger) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: requestTimeout},
		log:     log.With().Str("client", "yahoo").Logger(),
		cache:   make(map[string]cacheEntry),
	}
}

// NewClientWithBaseURL creates a client pointed at a custom endpoint.
// Used by tests to target an httptest server.
func NewClientWithBaseURL(baseURL string, log zerolog.Logger) *Client {
	c := NewClient(log)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// NormalizeTicker appends the NSE suffix for bare Indian tickers.
func NormalizeTicker(ticker string) string {
	if strings.HasSuffix(ticker, ".NS") || strings.HasSuffix(ticker, ".BO") || usSymbols[ticker] {
		return ticker
	}
	return ticker + ".NS"
}

// DailyHistory fetches one year of daily bars for the ticker, oldest first.
func (c *Client) DailyHistory(ctx context.Context, ticker string) (domain.PriceSeries, error) {
	symbol := NormalizeTicker(ticker)
	cacheKey := "history:" + symbol

	if cached, ok := c.getFromCache(cacheKey); ok {
		return cached.(domain.PriceSeries), nil
	}

	url := fmt.Sprintf("%s/v8/finance/chart/%s?range=%s&interval=1d", c.baseURL, symbol, historyRange)

	var payload chartResponse
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, &domain.FetchError{Ticker: ticker, Err: err}
	}

	series, err := payload.toSeries()
	if err != nil {
		return nil, &domain.FetchError{Ticker: ticker, Err: err}
	}

	c.setCache(cacheKey, series, historyCacheTTL)
	return series, nil
}

// Fundamentals fetches the fundamental snapshot for the ticker. Metrics the
// provider does not report come back nil, never zero.
func (c *Client) Fundamentals(ctx context.Context, ticker string) (*domain.FundamentalSnapshot, error) {
	symbol := NormalizeTicker(ticker)
	cacheKey := "fundamentals:" + symbol

	if cached, ok := c.getFromCache(cacheKey); ok {
		snap := cached.(domain.FundamentalSnapshot)
		return &snap, nil
	}

	url := fmt.Sprintf(
		"%s/v10/finance/quoteSummary/%s?modules=assetProfile,summaryDetail,defaultKeyStatistics,financialData,price",
		c.baseURL, symbol,
	)

	var payload quoteSummaryResponse
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, &domain.FetchError{Ticker: ticker, Err: err}
	}

	snap, err := payload.toSnapshot(ticker)
	if err != nil {
		return nil, &domain.FetchError{Ticker: ticker, Err: err}
	}

	c.setCache(cacheKey, *snap, fundsCacheTTL)
	return snap, nil
}

// getJSON performs a GET request and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", "advisor/1.0")

	c.log.Debug().Str("url", url).Msg("Fetching")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) getFromCache(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.cache[key]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.data, true
}

func (c *Client) setCache(key string, data interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[key] = cacheEntry{data: data, expiresAt: time.Now().Add(ttl)}
}

// ClearCache drops all cached responses.
func (c *Client) ClearCache() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string]cacheEntry)
}
