package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateIndex(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	if err := c.validatePoster(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if strings.TrimSpace(c.Catalog.Path) == "" {
		return errors.New("catalog.path must be set (or pass --catalog)")
	}
	return nil
}

func (c *Config) validateIndex() error {
	if c.Index.MaxFeatures < 0 {
		return errors.New("index.max_features must be >= 0 (0 keeps every term)")
	}
	if c.Index.NgramMax > 3 {
		return errors.New("index.ngram_max must be between 1 and 3")
	}
	return nil
}

func (c *Config) validateRecommend() error {
	if c.Recommend.TopN <= 0 {
		return errors.New("recommend.top_n must be positive")
	}
	return nil
}

func (c *Config) validatePoster() error {
	switch c.Poster.Provider {
	case ProviderTMDB, ProviderOMDb, ProviderNone:
	default:
		return fmt.Errorf("poster.provider: unsupported value %q (want tmdb, omdb, or none)", c.Poster.Provider)
	}
	if err := ensurePositiveMap(map[string]int{
		"poster.timeout_seconds":          c.Poster.TimeoutSeconds,
		"poster.concurrency":              c.Poster.Concurrency,
		"poster.breaker_failures":         c.Poster.BreakerFailures,
		"poster.breaker_cooldown_seconds": c.Poster.BreakerCooldownSeconds,
	}); err != nil {
		return err
	}
	if c.Poster.RequestsPerSecond < 0 {
		return errors.New("poster.requests_per_second must be >= 0 (0 disables pacing)")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
