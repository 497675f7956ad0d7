package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateFeed(); err != nil {
		return err
	}
	if err := c.validateSearch(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateFeed() error {
	u, err := url.Parse(c.Feed.Endpoint)
	if err != nil {
		return fmt.Errorf("feed.endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("feed.endpoint must be an http(s) URL, got %q", c.Feed.Endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("feed.endpoint must include a host, got %q", c.Feed.Endpoint)
	}
	if c.Feed.TimeoutSeconds <= 0 {
		return errors.New("feed.timeout_seconds must be positive")
	}
	if c.Feed.CacheTTLSeconds <= 0 {
		return errors.New("feed.cache_ttl_seconds must be positive")
	}
	return nil
}

func (c *Config) validateSearch() error {
	if c.Search.DebounceMS < 0 {
		return errors.New("search.debounce_ms must be >= 0")
	}
	if c.Search.MinQueryLength < 0 {
		return errors.New("search.min_query_length must be >= 0")
	}
	if c.Search.ResultLimit <= 0 {
		return errors.New("search.result_limit must be positive")
	}
	if c.Search.ScoreThreshold < 0 || c.Search.ScoreThreshold >= 100 {
		return errors.New("search.score_threshold must be between 0 and 100")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
