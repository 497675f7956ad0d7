package config

const (
	defaultFeedEndpoint        = "https://feed.example.invalid"
	defaultFeedTimeoutSeconds  = 10
	defaultFeedCacheTTLSeconds = 300
	defaultFeedUserAgent       = "marquee/dev"
	defaultSearchDebounceMS    = 280
	defaultSearchMinQueryLen   = 2
	defaultSearchResultLimit   = 20
	defaultSearchThreshold     = 10
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Feed: Feed{
			Endpoint:        defaultFeedEndpoint,
			TimeoutSeconds:  defaultFeedTimeoutSeconds,
			CacheTTLSeconds: defaultFeedCacheTTLSeconds,
			UserAgent:       defaultFeedUserAgent,
		},
		Search: Search{
			DebounceMS:     defaultSearchDebounceMS,
			MinQueryLength: defaultSearchMinQueryLen,
			ResultLimit:    defaultSearchResultLimit,
			ScoreThreshold: defaultSearchThreshold,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
