package poster

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"reelmatch/internal/config"
	"reelmatch/internal/omdb"
	"reelmatch/internal/services"
	"reelmatch/internal/tmdb"
)

// NewFromConfig builds the resolver for the configured provider. Provider
// "none" yields a resolver that only produces placeholders.
func NewFromConfig(cfg *config.Config, logger *slog.Logger) (*Resolver, error) {
	if cfg == nil {
		return nil, services.Wrap(services.ErrConfiguration, "poster", "init", "config is nil", nil)
	}
	timeout := cfg.PosterTimeout()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	opts := []Option{
		WithTimeout(timeout),
		WithLogger(logger),
		WithBreaker(BreakerSettings{
			Failures: cfg.Poster.BreakerFailures,
			Cooldown: time.Duration(cfg.Poster.BreakerCooldownSeconds) * time.Second,
		}),
	}

	var provider Provider
	switch name := cfg.PosterProvider(); name {
	case config.ProviderTMDB:
		client, err := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language,
			tmdb.WithHTTPClient(&http.Client{Timeout: timeout}),
			tmdb.WithImageBaseURL(cfg.TMDB.ImageBaseURL),
			tmdb.WithRateLimit(cfg.Poster.RequestsPerSecond),
		)
		if err != nil {
			return nil, services.Wrap(services.ErrConfiguration, "poster", "init tmdb", "invalid tmdb settings", err)
		}
		provider = NewTMDBProvider(client)
	case config.ProviderOMDb:
		client, err := omdb.New(cfg.OMDb.APIKey, cfg.OMDb.BaseURL,
			omdb.WithHTTPClient(&http.Client{Timeout: timeout}),
			omdb.WithRateLimit(cfg.Poster.RequestsPerSecond),
		)
		if err != nil {
			return nil, services.Wrap(services.ErrConfiguration, "poster", "init omdb", "invalid omdb settings", err)
		}
		provider = NewOMDbProvider(client)
	case config.ProviderNone:
	default:
		return nil, services.Wrap(services.ErrConfiguration, "poster", "init", fmt.Sprintf("unknown provider %q", name), nil)
	}
	return NewResolver(provider, opts...), nil
}
