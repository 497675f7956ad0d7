package config

import "strings"

func (c *Config) normalize() {
	c.normalizeFeed()
	c.normalizeLogging()
}

func (c *Config) normalizeFeed() {
	c.Feed.Endpoint = strings.TrimRight(strings.TrimSpace(c.Feed.Endpoint), "/")
	if c.Feed.Endpoint == "" {
		c.Feed.Endpoint = defaultFeedEndpoint
	}
	c.Feed.UserAgent = strings.TrimSpace(c.Feed.UserAgent)
	if c.Feed.UserAgent == "" {
		c.Feed.UserAgent = defaultFeedUserAgent
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
