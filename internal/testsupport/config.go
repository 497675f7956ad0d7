package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"marquee/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a validated config pointed at endpoint. Logging is quiet
// and the debounce short so timer tests stay fast.
func NewConfig(t testing.TB, endpoint string, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Feed.Endpoint = endpoint
	cfg.Feed.TimeoutSeconds = 5
	cfg.Search.DebounceMS = 5
	cfg.Logging.Level = "error"

	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}

// WithDebounceMS overrides the search debounce.
func WithDebounceMS(ms int) ConfigOption {
	return func(c *config.Config) {
		c.Search.DebounceMS = ms
	}
}

// WithLogLevel overrides the logging level.
func WithLogLevel(level string) ConfigOption {
	return func(c *config.Config) {
		c.Logging.Level = level
	}
}

// WriteConfig encodes cfg as TOML at path, creating parent directories.
func WriteConfig(t testing.TB, path string, cfg *config.Config) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("encode config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config %s: %v", path, err)
	}
}
