package feed

import (
	"context"
	"errors"
	"sync"

	"marquee/internal/catalog"
	"marquee/internal/delimited"
	"marquee/internal/logging"
	"marquee/internal/services"
)

// Snapshot holds the movie and series catalogs fetched together by All.
type Snapshot struct {
	Movies []catalog.Movie  `json:"movies"`
	Series []catalog.Series `json:"series"`
}

// Records flattens the snapshot into one searchable catalog, movies first.
func (s Snapshot) Records() []catalog.Record {
	out := make([]catalog.Record, 0, len(s.Movies)+len(s.Series))
	out = append(out, catalog.Records(s.Movies)...)
	out = append(out, catalog.Records(s.Series)...)
	return out
}

// Movies returns the movie catalog, or an empty slice when the fetch fails.
func (c *Client) Movies(ctx context.Context) []catalog.Movie {
	rows, ok := c.lenient(ctx, KeyMovies)
	if !ok {
		return []catalog.Movie{}
	}
	return catalog.Movies(rows)
}

// Series returns the series catalog, or an empty slice when the fetch fails.
func (c *Client) Series(ctx context.Context) []catalog.Series {
	rows, ok := c.lenient(ctx, KeySeries)
	if !ok {
		return []catalog.Series{}
	}
	return catalog.SeriesList(rows)
}

// Episodes returns every episode, or an empty slice when the fetch fails.
func (c *Client) Episodes(ctx context.Context) []catalog.Episode {
	rows, ok := c.lenient(ctx, KeyEpisodes)
	if !ok {
		return []catalog.Episode{}
	}
	return catalog.Episodes(rows)
}

// All fetches movies and series concurrently. Each side fails independently.
func (c *Client) All(ctx context.Context) Snapshot {
	var (
		wg   sync.WaitGroup
		snap Snapshot
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		snap.Movies = c.Movies(ctx)
	}()
	go func() {
		defer wg.Done()
		snap.Series = c.Series(ctx)
	}()
	wg.Wait()
	return snap
}

// lenient fetches key and logs a failure under the same correlation id the
// request carried.
func (c *Client) lenient(ctx context.Context, key string) ([]delimited.Row, bool) {
	ctx = withFetchContext(ctx, key)
	rows, err := c.Collection(ctx, key)
	if err == nil {
		return rows, true
	}
	logger := logging.WithContext(ctx, c.logger)

	if errors.Is(err, services.ErrAborted) {
		logger.Debug("collection fetch aborted", logging.Error(err))
		return nil, false
	}
	if !services.Retryable(err) {
		logging.ErrorWithContext(logger, "collection request rejected; showing empty catalog", "feed_request_invalid",
			logging.Error(err),
			logging.Bool("retryable", false),
			logging.String(logging.FieldErrorHint, "not retryable; fix the collection key or feed configuration"))
		return nil, false
	}

	hint := "check feed.endpoint and network connectivity"
	var statusErr *StatusError
	switch {
	case errors.Is(err, services.ErrTimeout):
		hint = "feed is slow or unreachable; raise feed.timeout_seconds if this persists"
	case errors.As(err, &statusErr):
		hint = "feed rejected the request; verify the collection exists at the endpoint"
	}
	logging.WarnWithContext(logger, "collection unavailable; showing empty catalog", "feed_fetch_failed",
		logging.Error(err),
		logging.Bool("retryable", true),
		logging.String(logging.FieldErrorHint, hint),
		logging.String(logging.FieldImpact, "catalog section renders empty until the next successful fetch"))
	return nil, false
}
