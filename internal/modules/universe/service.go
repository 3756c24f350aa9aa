package universe

import (
	"strings"
	"sync"
	"time"
)

// DefaultTTL is how long a loaded stock list stays fresh.
const DefaultTTL = 24 * time.Hour

// Loader produces the reference stock list.
type Loader func() ([]Stock, error)

// Cache holds the reference stock list with an explicit TTL. The clock is
// injected so expiry is testable without sleeping.
type Cache struct {
	mu        sync.Mutex
	load      Loader
	ttl       time.Duration
	now       func() time.Time
	stocks    []Stock
	loadedAt  time.Time
}

// NewCache creates a stock list cache. A nil loader uses the built-in
// reference universe; a nil clock uses time.Now.
func NewCache(load Loader, ttl time.Duration, now func() time.Time) *Cache {
	if load == nil {
		load = func() ([]Stock, error) { return referenceStocks(), nil }
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Cache{load: load, ttl: ttl, now: now}
}

// Get returns the cached stock list, refreshing it first if it has expired
// or was never loaded.
func (c *Cache) Get() ([]Stock, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stocks == nil || c.now().Sub(c.loadedAt) >= c.ttl {
		if err := c.refreshLocked(); err != nil {
			// Stale data beats no data.
			if c.stocks != nil {
				return c.stocks, nil
			}
			return nil, err
		}
	}
	return c.stocks, nil
}

// Refresh forces a reload regardless of TTL.
func (c *Cache) Refresh() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refreshLocked()
}

// Invalidate drops the cached list so the next Get reloads.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stocks = nil
	c.loadedAt = time.Time{}
}

func (c *Cache) refreshLocked() error {
	stocks, err := c.load()
	if err != nil {
		return err
	}
	c.stocks = stocks
	c.loadedAt = c.now()
	return nil
}

// Service exposes the stock universe to the API layer.
type Service struct {
	cache *Cache
}

// NewService creates a universe service over the given cache.
func NewService(cache *Cache) *Service {
	return &Service{cache: cache}
}

// All returns the full reference universe.
func (s *Service) All() ([]Stock, error) {
	return s.cache.Get()
}

// Search finds stocks matching the query. Exact ticker matches rank first,
// then ticker/name prefix matches, then substring matches (capped at ten).
// Queries shorter than two characters return nothing.
func (s *Service) Search(query string) ([]Stock, error) {
	if len(query) < 2 {
		return nil, nil
	}

	stocks, err := s.cache.Get()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	upper := strings.ToUpper(query)

	var exact []Stock
	for _, st := range stocks {
		base, _, _ := strings.Cut(st.Ticker, ".")
		if base == upper {
			exact = append(exact, st)
		}
	}
	if len(exact) > 0 {
		return exact, nil
	}

	var prefix, contains []Stock
	for _, st := range stocks {
		ticker := strings.ToLower(st.Ticker)
		name := strings.ToLower(st.Name)
		switch {
		case strings.HasPrefix(ticker, q) || strings.HasPrefix(name, q):
			prefix = append(prefix, st)
		case strings.Contains(ticker, q) || strings.Contains(name, q):
			contains = append(contains, st)
		}
	}

	if len(contains) > 10 {
		contains = contains[:10]
	}
	return append(prefix, contains...), nil
}
