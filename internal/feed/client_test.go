package feed_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"marquee/internal/feed"
	"marquee/internal/services"
	"marquee/internal/testsupport"
)

const moviesCSV = "title,link,synopsis,cover,category,year\n" +
	"Shrek,https://x/1,An ogre,https://img/1,Animation,2001\n" +
	"\"Matrix, The\",https://x/2,,,Action,1999\n"

func newClient(t *testing.T, endpoint string, clock *testsupport.Clock) *feed.Client {
	t.Helper()
	opts := feed.Options{
		Endpoint:  endpoint + "/",
		Timeout:   2 * time.Second,
		CacheTTL:  5 * time.Minute,
		UserAgent: "marquee-test",
	}
	if clock != nil {
		opts.Clock = clock.Now
	}
	client, err := feed.New(opts)
	if err != nil {
		t.Fatalf("feed.New: %v", err)
	}
	return client
}

func TestNewRequiresEndpoint(t *testing.T) {
	_, err := feed.New(feed.Options{Endpoint: "  "})
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestCollectionParsesRowsAndSendsUserAgent(t *testing.T) {
	srv := testsupport.NewFeedServer(t, map[string]string{feed.KeyMovies: moviesCSV})
	client := newClient(t, srv.URL, nil)

	rows, err := client.Collection(context.Background(), feed.KeyMovies)
	if err != nil {
		t.Fatalf("Collection: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[1].Field(0) != "Matrix, The" {
		t.Fatalf("quoted title = %q", rows[1].Field(0))
	}
	if client.URL(feed.KeyMovies) != srv.URL+"/movies" {
		t.Fatalf("URL = %q", client.URL(feed.KeyMovies))
	}
	if agents := srv.UserAgents(); len(agents) != 1 || agents[0] != "marquee-test" {
		t.Fatalf("user agents = %q", agents)
	}
}

func TestCollectionServesFromCacheWithinTTL(t *testing.T) {
	srv := testsupport.NewFeedServer(t, map[string]string{feed.KeyMovies: moviesCSV})
	clock := testsupport.NewClock()
	client := newClient(t, srv.URL, clock)
	ctx := context.Background()

	for range 3 {
		if _, err := client.Collection(ctx, feed.KeyMovies); err != nil {
			t.Fatalf("Collection: %v", err)
		}
		clock.Advance(time.Minute)
	}
	if got := srv.Hits(feed.KeyMovies); got != 1 {
		t.Fatalf("requests within TTL = %d, want 1", got)
	}

	clock.Advance(3 * time.Minute)
	if _, err := client.Collection(ctx, feed.KeyMovies); err != nil {
		t.Fatalf("Collection after TTL: %v", err)
	}
	if got := srv.Hits(feed.KeyMovies); got != 2 {
		t.Fatalf("requests after TTL = %d, want 2", got)
	}

	entry, ok := client.CacheEntry(feed.KeyMovies)
	if !ok || !entry.FetchedAt.Equal(clock.Now()) {
		t.Fatalf("cache entry = %+v, ok=%v", entry, ok)
	}
}

func TestCollectionKeysAreCachedIndependently(t *testing.T) {
	srv := testsupport.NewFeedServer(t, map[string]string{
		feed.KeyMovies: moviesCSV,
		feed.KeySeries: "h\nDark\n",
	})
	client := newClient(t, srv.URL, nil)
	ctx := context.Background()

	for _, key := range []string{feed.KeyMovies, feed.KeySeries, feed.KeyMovies, feed.KeySeries} {
		if _, err := client.Collection(ctx, key); err != nil {
			t.Fatalf("Collection(%s): %v", key, err)
		}
	}
	if srv.Hits(feed.KeyMovies) != 1 || srv.Hits(feed.KeySeries) != 1 {
		t.Fatalf("unexpected hits: movies=%d series=%d", srv.Hits(feed.KeyMovies), srv.Hits(feed.KeySeries))
	}
}

func TestCollectionStatusErrorIsNotCached(t *testing.T) {
	srv := testsupport.NewFeedServer(t, nil)
	srv.SetStatus(feed.KeyMovies, http.StatusInternalServerError)
	client := newClient(t, srv.URL, nil)
	ctx := context.Background()

	_, err := client.Collection(ctx, feed.KeyMovies)
	if !errors.Is(err, services.ErrTransport) {
		t.Fatalf("expected transport marker, got %v", err)
	}
	var statusErr *feed.StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected StatusError 500, got %v", err)
	}
	if !services.Retryable(err) {
		t.Fatal("status failures should be retryable")
	}

	srv.SetBody(feed.KeyMovies, moviesCSV)
	rows, err := client.Collection(ctx, feed.KeyMovies)
	if err != nil || len(rows) != 2 {
		t.Fatalf("retry after failure: rows=%d err=%v", len(rows), err)
	}
	if srv.Hits(feed.KeyMovies) != 2 {
		t.Fatalf("failure was cached: hits=%d", srv.Hits(feed.KeyMovies))
	}
}

func TestCollectionTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer srv.Close()
	defer close(release)

	client, err := feed.New(feed.Options{Endpoint: srv.URL, Timeout: 50 * time.Millisecond})
	if err != nil {
		t.Fatalf("feed.New: %v", err)
	}
	start := time.Now()
	_, err = client.Collection(context.Background(), feed.KeySeries)
	if !errors.Is(err, services.ErrTimeout) {
		t.Fatalf("expected timeout marker, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("timeout took %v", elapsed)
	}
}

func TestCollectionCallerCancellationIsAborted(t *testing.T) {
	srv := testsupport.NewFeedServer(t, map[string]string{feed.KeyMovies: moviesCSV})
	client := newClient(t, srv.URL, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.Collection(ctx, feed.KeyMovies)
	if !errors.Is(err, services.ErrAborted) {
		t.Fatalf("expected aborted marker, got %v", err)
	}
	if services.Retryable(err) {
		t.Fatal("aborted fetches are not retryable")
	}
}

func TestCollectionRejectsEmptyKey(t *testing.T) {
	client := newClient(t, "http://127.0.0.1:1", nil)
	if _, err := client.Collection(context.Background(), " "); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCollectionUnreachableHostIsTransport(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	client := newClient(t, endpoint, nil)
	_, err := client.Collection(context.Background(), feed.KeyEpisodes)
	if !errors.Is(err, services.ErrTransport) {
		t.Fatalf("expected transport marker, got %v", err)
	}
	var statusErr *feed.StatusError
	if errors.As(err, &statusErr) {
		t.Fatalf("dial failure should not carry a status: %v", err)
	}
}

func TestStatusErrorMessage(t *testing.T) {
	err := &feed.StatusError{URL: "https://x/movies", StatusCode: 404}
	if err.Error() != "HTTP 404 from https://x/movies" {
		t.Fatalf("Error() = %q", err.Error())
	}
	var nilErr *feed.StatusError
	if nilErr.Error() == "" {
		t.Fatal("nil StatusError should still describe itself")
	}
}

func TestConcurrentCollectionCallsAreSafe(t *testing.T) {
	srv := testsupport.NewFeedServer(t, map[string]string{feed.KeyMovies: moviesCSV})
	client := newClient(t, srv.URL, nil)

	var wg sync.WaitGroup
	var failures atomic.Int32
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := client.Collection(context.Background(), feed.KeyMovies); err != nil {
				failures.Add(1)
			}
		}()
	}
	wg.Wait()
	if failures.Load() != 0 {
		t.Fatalf("%d concurrent calls failed", failures.Load())
	}
	if hits := srv.Hits(feed.KeyMovies); hits < 1 || hits > 8 {
		t.Fatalf("unexpected hit count %d", hits)
	}
}
