package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"marquee/internal/delimited"
	"marquee/internal/logging"
	"marquee/internal/rowcache"
	"marquee/internal/services"
)

// Collection keys appended to the endpoint.
const (
	KeyMovies   = "movies"
	KeySeries   = "series"
	KeyEpisodes = "episodes"
)

// DefaultTimeout bounds a single collection fetch.
const DefaultTimeout = 10 * time.Second

const component = "feed"

// Options configures a Client. Zero values fall back to the defaults.
type Options struct {
	Endpoint   string
	Timeout    time.Duration
	CacheTTL   time.Duration
	UserAgent  string
	HTTPClient *http.Client
	Logger     *slog.Logger
	// Clock stamps and ages cache entries.
	Clock      func() time.Time
}

// Client fetches and caches feed collections.
type Client struct {
	endpoint   string
	timeout    time.Duration
	userAgent  string
	httpClient *http.Client
	cache      *rowcache.Cache
	logger     *slog.Logger
}

// New creates a feed client.
func New(opts Options) (*Client, error) {
	endpoint := strings.TrimRight(strings.TrimSpace(opts.Endpoint), "/")
	if endpoint == "" {
		return nil, services.Wrap(services.ErrConfiguration, component, "init", "feed endpoint required", nil)
	}
	if _, err := url.Parse(endpoint); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, component, "init", "parse feed endpoint", err)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	logger := logging.NewComponentLogger(opts.Logger, component)

	cacheOpts := []rowcache.Option{rowcache.WithLogger(opts.Logger)}
	if opts.Clock != nil {
		cacheOpts = append(cacheOpts, rowcache.WithClock(opts.Clock))
	}

	return &Client{
		endpoint:   endpoint,
		timeout:    timeout,
		userAgent:  strings.TrimSpace(opts.UserAgent),
		httpClient: httpClient,
		cache:      rowcache.New(opts.CacheTTL, cacheOpts...),
		logger:     logger,
	}, nil
}

// Endpoint returns the normalized base URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// URL returns the address fetched for key.
func (c *Client) URL(key string) string {
	return c.endpoint + "/" + url.PathEscape(key)
}

// Collection returns the parsed rows for key, from cache when the entry is
// still fresh and from the network otherwise. Failures are never cached.
func (c *Client) Collection(ctx context.Context, key string) ([]delimited.Row, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, services.Wrap(services.ErrValidation, component, "collection", "collection key required", nil)
	}
	if rows, ok := c.cache.Lookup(key); ok {
		return rows, nil
	}

	rows, err := c.fetch(ctx, key)
	if err != nil {
		return nil, err
	}
	c.cache.Store(key, rows)
	return rows, nil
}

// CacheEntry exposes the cached state of key, fresh or stale.
func (c *Client) CacheEntry(key string) (rowcache.Entry, bool) {
	return c.cache.Entry(key)
}

// CacheTTL returns the freshness window.
func (c *Client) CacheTTL() time.Duration {
	return c.cache.TTL()
}

// RequestIDHeader carries the correlation id of a fetch to the feed.
const RequestIDHeader = "X-Request-ID"

func (c *Client) fetch(ctx context.Context, key string) ([]delimited.Row, error) {
	ctx = withFetchContext(ctx, key)
	requestID, _ := services.RequestIDFromContext(ctx)
	logger := logging.WithContext(ctx, c.logger)

	fetchCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	target := c.URL(key)
	req, err := http.NewRequestWithContext(fetchCtx, http.MethodGet, target, nil)
	if err != nil {
		return nil, services.Wrap(services.ErrTransport, component, "fetch", "build request", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.1")
	req.Header.Set(RequestIDHeader, requestID)

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.classify(ctx, fetchCtx, fmt.Sprintf("request %s (latency=%v)", target, time.Since(requestStart)), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return nil, services.Wrap(services.ErrTransport, component, "fetch", "unexpected status",
			&StatusError{URL: target, StatusCode: resp.StatusCode})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.classify(ctx, fetchCtx, "read body", err)
	}
	rows := delimited.Parse(string(body))

	logger.Debug("fetched collection",
		logging.String("url", target),
		logging.Int("status", resp.StatusCode),
		logging.Int("bytes", len(body)),
		logging.Int("row_count", len(rows)),
		logging.Duration("latency", time.Since(requestStart)))
	return rows, nil
}

// withFetchContext tags ctx with key and a correlation id, keeping an id the
// caller already set.
func withFetchContext(ctx context.Context, key string) context.Context {
	if _, ok := services.RequestIDFromContext(ctx); !ok {
		ctx = services.WithRequestID(ctx, uuid.NewString())
	}
	return services.WithCollection(ctx, key)
}

// classify maps a request failure onto a marker. Cancellation by the caller
// wins over our own deadline.
func (c *Client) classify(parent, fetchCtx context.Context, message string, err error) error {
	switch {
	case parent.Err() != nil:
		return services.Wrap(services.ErrAborted, component, "fetch", message, err)
	case errors.Is(fetchCtx.Err(), context.DeadlineExceeded):
		return services.Wrap(services.ErrTimeout, component, "fetch",
			fmt.Sprintf("%s: no response within %v", message, c.timeout), err)
	default:
		return services.Wrap(services.ErrTransport, component, "fetch", message, err)
	}
}
