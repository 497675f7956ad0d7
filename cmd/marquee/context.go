package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"marquee/internal/config"
	"marquee/internal/feed"
	"marquee/internal/logging"
	"marquee/internal/search"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string
	jsonFlag     *bool

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag *string, jsonFlag *bool) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
		jsonFlag:     jsonFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != nil {
			if level := strings.ToLower(strings.TrimSpace(*c.logLevelFlag)); level != "" {
				cfg.Logging.Level = level
				if err := cfg.Validate(); err != nil {
					c.configErr = fmt.Errorf("--log-level: %w", err)
					return
				}
			}
		}
		c.config = cfg
		c.configPath = resolved
	})
	return c.config, c.configErr
}

func (c *commandContext) jsonOutput() bool {
	return c.jsonFlag != nil && *c.jsonFlag
}

func (c *commandContext) logger(w io.Writer) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return logging.NewFromConfig(cfg, w)
}

// feedClient builds a client for one command invocation. Logs go to the
// command's stderr so stdout stays parseable under --json.
func (c *commandContext) feedClient(cmd *cobra.Command) (*feed.Client, *slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := c.logger(cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}
	client, err := feed.New(feed.Options{
		Endpoint:  cfg.Feed.Endpoint,
		Timeout:   cfg.FeedTimeout(),
		CacheTTL:  cfg.CacheTTL(),
		UserAgent: cfg.Feed.UserAgent,
		Logger:    logger,
	})
	if err != nil {
		return nil, nil, err
	}
	return client, logger, nil
}

func (c *commandContext) searchOptions(logger *slog.Logger) []search.Option {
	cfg := c.config
	if cfg == nil {
		return []search.Option{search.WithLogger(logger)}
	}
	return []search.Option{
		search.WithDebounce(cfg.Debounce()),
		search.WithMinQueryLength(cfg.Search.MinQueryLength),
		search.WithLimit(cfg.Search.ResultLimit),
		search.WithThreshold(cfg.Search.ScoreThreshold),
		search.WithLogger(logger),
	}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
