package search

import (
	"log/slog"
	"slices"
	"sort"
	"sync"
	"time"
	"unicode/utf8"

	"marquee/internal/catalog"
	"marquee/internal/fuzzy"
	"marquee/internal/logging"
	"marquee/internal/textnorm"
)

const (
	DefaultDebounce       = 280 * time.Millisecond
	DefaultMinQueryLength = 2
	DefaultLimit          = 20
	DefaultThreshold      = 10.0
)

// Result is a record with the score it earned for one query. Results are
// never written back into the catalog.
type Result struct {
	Record catalog.Record `json:"record"`
	Score  float64        `json:"score"`
}

// ResultFunc receives debounced results together with the trimmed query that
// produced them.
type ResultFunc func(results []Result, query string)

// Engine holds the catalog snapshot and answers queries against it.
type Engine struct {
	mu       sync.RWMutex
	records  []catalog.Record
	onResult ResultFunc

	debouncer      *Debouncer
	minQueryLength int
	limit          int
	threshold      float64
	logger         *slog.Logger
}

// Option configures an Engine.
type Option func(*engineConfig)

type engineConfig struct {
	debounce       time.Duration
	minQueryLength int
	limit          int
	threshold      float64
	logger         *slog.Logger
}

// WithDebounce overrides the quiet period used by Query.
func WithDebounce(d time.Duration) Option {
	return func(c *engineConfig) { c.debounce = d }
}

// WithMinQueryLength sets the rune count below which a query returns nothing.
func WithMinQueryLength(n int) Option {
	return func(c *engineConfig) {
		if n >= 0 {
			c.minQueryLength = n
		}
	}
}

// WithLimit sets the default number of results.
func WithLimit(n int) Option {
	return func(c *engineConfig) {
		if n > 0 {
			c.limit = n
		}
	}
}

// WithThreshold sets the score a record must exceed to be returned.
func WithThreshold(score float64) Option {
	return func(c *engineConfig) {
		if score >= 0 {
			c.threshold = score
		}
	}
}

// WithLogger attaches a logger; nil keeps the no-op default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *engineConfig) { c.logger = logger }
}

// New installs records and the result callback. onResult may be nil and set
// later with SetResultHandler.
func New(records []catalog.Record, onResult ResultFunc, opts ...Option) *Engine {
	cfg := engineConfig{
		debounce:       DefaultDebounce,
		minQueryLength: DefaultMinQueryLength,
		limit:          DefaultLimit,
		threshold:      DefaultThreshold,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Engine{
		records:        slices.Clone(records),
		onResult:       onResult,
		debouncer:      NewDebouncer(cfg.debounce),
		minQueryLength: cfg.minQueryLength,
		limit:          cfg.limit,
		threshold:      cfg.threshold,
		logger:         logging.NewComponentLogger(cfg.logger, "search"),
	}
}

// UpdateCatalog replaces the snapshot. A pending debounced query is left
// alone and will search whichever snapshot is installed when it fires.
func (e *Engine) UpdateCatalog(records []catalog.Record) {
	snapshot := slices.Clone(records)
	e.mu.Lock()
	e.records = snapshot
	e.mu.Unlock()
	e.logger.Debug("catalog replaced", logging.Int("record_count", len(snapshot)))
}

// SetResultHandler replaces the debounced result callback.
func (e *Engine) SetResultHandler(fn ResultFunc) {
	e.mu.Lock()
	e.onResult = fn
	e.mu.Unlock()
}

// Len returns the number of records in the current snapshot.
func (e *Engine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.records)
}

// Query schedules a debounced search for text. Only the most recent call
// within the quiet period runs; earlier ones are silently dropped.
func (e *Engine) Query(text string) {
	trimmed := textnorm.TrimSpace(text)
	e.debouncer.Schedule(func() {
		results := e.Search(trimmed, 0)
		e.mu.RLock()
		handler := e.onResult
		e.mu.RUnlock()
		if handler != nil {
			handler(results, trimmed)
		}
	})
}

// Immediate searches text synchronously with the default limit.
func (e *Engine) Immediate(text string) []Result {
	return e.Search(textnorm.TrimSpace(text), 0)
}

// Search ranks the snapshot against query. A limit of zero or less uses the
// engine default. Queries shorter than the minimum length return no results.
func (e *Engine) Search(query string, limit int) []Result {
	if limit <= 0 {
		limit = e.limit
	}
	if utf8.RuneCountInString(query) < e.minQueryLength {
		return []Result{}
	}
	compiled := fuzzy.Compile(query)
	if compiled.Empty() {
		return []Result{}
	}

	e.mu.RLock()
	records := e.records
	e.mu.RUnlock()

	start := time.Now()
	results := make([]Result, 0, min(len(records), limit))
	for _, record := range records {
		score := compiled.Relevance(record)
		if score > e.threshold {
			results = append(results, Result{Record: record, Score: score})
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	matched := len(results)
	if len(results) > limit {
		results = results[:limit]
	}

	e.logger.Debug("search completed",
		logging.String("query", query),
		logging.Int("matched", matched),
		logging.Int("returned", len(results)),
		logging.Duration("elapsed", time.Since(start)))
	return results
}

// Close cancels any pending debounced query. Query is a no-op afterwards.
func (e *Engine) Close() {
	e.debouncer.Stop()
}
