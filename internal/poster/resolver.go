package poster

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"log/slog"
	"net/http"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"reelmatch/internal/logging"
)

// DefaultTimeout bounds each individual HTTP call.
const DefaultTimeout = 10 * time.Second

// maxImageBytes caps poster downloads.
const maxImageBytes = 16 << 20

// Resolver turns titles into poster images. A nil provider disables lookups
// and every result is a placeholder.
type Resolver struct {
	provider   Provider
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[string]
	logger     *slog.Logger
}

// Option configures a Resolver.
type Option func(*resolverConfig)

type resolverConfig struct {
	httpClient *http.Client
	timeout    time.Duration
	breaker    BreakerSettings
	logger     *slog.Logger
}

// WithHTTPClient overrides the client used for image downloads.
func WithHTTPClient(client *http.Client) Option {
	return func(c *resolverConfig) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the per-download timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *resolverConfig) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithBreaker configures the provider circuit breaker.
func WithBreaker(settings BreakerSettings) Option {
	return func(c *resolverConfig) {
		c.breaker = settings
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *resolverConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewResolver builds a resolver around provider, which may be nil.
func NewResolver(provider Provider, opts ...Option) *Resolver {
	cfg := resolverConfig{timeout: DefaultTimeout, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.httpClient == nil {
		cfg.httpClient = &http.Client{Timeout: cfg.timeout}
	}
	logger := logging.NewComponentLogger(cfg.logger, "poster")
	r := &Resolver{
		provider:   provider,
		httpClient: cfg.httpClient,
		logger:     logger,
	}
	if provider != nil {
		r.breaker = newBreaker(provider.Name(), cfg.breaker, logger)
	}
	return r
}

// Enabled reports whether a provider is configured.
func (r *Resolver) Enabled() bool { return r != nil && r.provider != nil }

// Resolve fetches the poster for title. Failures never escape: they produce a
// placeholder with the matching Reason.
func (r *Resolver) Resolve(ctx context.Context, title string) Result {
	if !r.Enabled() {
		return fallback(title, ReasonProviderDisabled, nil)
	}
	logger := logging.WithContext(ctx, r.logger)

	url, err := r.breaker.Execute(func() (string, error) {
		return r.provider.PosterURL(ctx, title)
	})
	if err != nil {
		reason := classifyLookup(err)
		if reason == ReasonSearchFailed || reason == ReasonCircuitOpen {
			logging.WarnWithContext(logger, "poster lookup failed", "poster_lookup_failed",
				logging.String("title", title),
				logging.String("reason", string(reason)),
				logging.Error(err),
				logging.String(logging.FieldImpact, "placeholder shown instead of poster"),
			)
		} else {
			logger.Debug("no poster available", logging.String("title", title), logging.String("reason", string(reason)))
		}
		return fallback(title, reason, err)
	}

	img, reason, err := r.download(ctx, url)
	if err != nil {
		logging.WarnWithContext(logger, "poster download failed", "poster_download_failed",
			logging.String("title", title),
			logging.String("url", url),
			logging.String("reason", string(reason)),
			logging.Error(err),
			logging.String(logging.FieldImpact, "placeholder shown instead of poster"),
		)
		return fallback(title, reason, err)
	}
	logger.Debug("poster resolved", logging.String("title", title), logging.String("url", url))
	return fetched(title, url, img)
}

func classifyLookup(err error) Reason {
	switch {
	case breakerRejected(err):
		return ReasonCircuitOpen
	case errors.Is(err, ErrNoResults):
		return ReasonNoResults
	case errors.Is(err, ErrNoImage):
		return ReasonNoImage
	default:
		return ReasonSearchFailed
	}
}

func (r *Resolver) download(ctx context.Context, url string) (image.Image, Reason, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, ReasonDownloadFailed, fmt.Errorf("build request: %w", err)
	}
	requestStart := time.Now()
	resp, err := r.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, ReasonDownloadFailed, fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, ReasonDownloadFailed, fmt.Errorf("image download returned %d (latency=%v)", resp.StatusCode, latency)
	}
	img, _, err := image.Decode(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, ReasonDecodeFailed, fmt.Errorf("decode image: %w", err)
	}
	return img, ReasonNone, nil
}
