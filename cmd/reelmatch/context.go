package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"reelmatch/internal/api"
	"reelmatch/internal/config"
	"reelmatch/internal/logging"
	"reelmatch/internal/poster"
)

type globalFlags struct {
	config   string
	catalog  string
	logLevel string
	verbose  bool
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, _, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		if err := c.applyOverrides(cfg); err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
	})
	return c.config, c.configErr
}

func (c *commandContext) applyOverrides(cfg *config.Config) error {
	if catalog := strings.TrimSpace(c.flags.catalog); catalog != "" {
		expanded, err := config.ExpandPath(catalog)
		if err != nil {
			return fmt.Errorf("resolve catalog path: %w", err)
		}
		cfg.Catalog.Path = expanded
	}
	if level := strings.TrimSpace(c.flags.logLevel); level != "" {
		cfg.Logging.Level = strings.ToLower(level)
	}
	if c.flags.verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg.Validate()
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

// openService builds the recommendation workflow and loads the catalog. A
// catalog load failure is not returned: the service then answers every query
// with recommend.ErrIndexNotReady carrying the cause.
func (c *commandContext) openService(ctx context.Context, withPosters bool) (*api.Service, func(), error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, nil, err
	}

	opts := []api.Option{api.WithLogger(logger)}
	if withPosters {
		resolver, err := poster.NewFromConfig(cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, api.WithPosters(resolver))
	}

	cleanup := func() {}
	store, err := api.OpenHistory(cfg)
	switch {
	case err == nil:
		opts = append(opts, api.WithHistory(store))
		cleanup = func() { _ = store.Close() }
	case errors.Is(err, api.ErrHistoryDisabled):
	default:
		logging.WarnWithContext(logger, "history unavailable", "history_open_failed",
			logging.Error(err),
			logging.String(logging.FieldImpact, "queries will not be recorded"),
		)
	}

	svc := api.New(cfg, opts...)
	_ = svc.Reload(ctx)
	return svc, cleanup, nil
}

// posterService builds a workflow that only resolves posters. The catalog is
// not loaded.
func (c *commandContext) posterService() (*api.Service, *config.Config, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, nil, err
	}
	resolver, err := poster.NewFromConfig(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return api.New(cfg, api.WithLogger(logger), api.WithPosters(resolver)), cfg, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
