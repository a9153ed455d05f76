package api

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"sync"
	"time"

	"reelmatch/internal/catalog"
	"reelmatch/internal/config"
	"reelmatch/internal/history"
	"reelmatch/internal/logging"
	"reelmatch/internal/poster"
	"reelmatch/internal/recommend"
	"reelmatch/internal/services"
	"reelmatch/internal/tfidf"
)

// HistoryRecorder persists answered queries.
type HistoryRecorder interface {
	Record(ctx context.Context, entry history.Entry) (history.Entry, error)
}

// Service answers recommendation queries against the loaded catalog.
type Service struct {
	catalogPath string
	indexOpts   tfidf.Options
	topN        int
	concurrency int
	posters     *poster.Resolver
	history     HistoryRecorder
	logger      *slog.Logger

	mu      sync.RWMutex
	index   *recommend.Index
	loadErr error
}

// Option configures a Service.
type Option func(*Service)

// WithPosters enables poster resolution for each recommendation.
func WithPosters(resolver *poster.Resolver) Option {
	return func(s *Service) { s.posters = resolver }
}

// WithHistory records every answered query.
func WithHistory(recorder HistoryRecorder) Option {
	return func(s *Service) { s.history = recorder }
}

// WithLogger attaches a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithIndex installs a prebuilt index instead of loading the catalog.
func WithIndex(index *recommend.Index) Option {
	return func(s *Service) { s.index = index }
}

// WithConcurrency overrides poster.concurrency.
func WithConcurrency(n int) Option {
	return func(s *Service) { s.concurrency = n }
}

// New creates a service from configuration. The catalog is not loaded until
// Reload is called, unless WithIndex supplied one.
func New(cfg *config.Config, opts ...Option) *Service {
	s := &Service{
		indexOpts:   tfidf.DefaultOptions(),
		topN:        recommend.DefaultTopN,
		concurrency: 1,
		logger:      logging.NewNop(),
	}
	if cfg != nil {
		s.catalogPath = cfg.Catalog.Path
		s.indexOpts = IndexOptions(cfg)
		if cfg.Recommend.TopN > 0 {
			s.topN = cfg.Recommend.TopN
		}
		if cfg.Poster.Concurrency > 0 {
			s.concurrency = cfg.Poster.Concurrency
		}
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = logging.NewComponentLogger(s.logger, "recommend")
	return s
}

// IndexOptions maps the [index] config section onto vectorizer options.
func IndexOptions(cfg *config.Config) tfidf.Options {
	return tfidf.Options{
		MaxFeatures: cfg.Index.MaxFeatures,
		NgramMin:    1,
		NgramMax:    cfg.Index.NgramMax,
		StopWords:   cfg.Index.StopWords,
	}
}

// DefaultTopN returns the configured number of recommendations.
func (s *Service) DefaultTopN() int { return s.topN }

// Reload reads the catalog and swaps in a freshly built index. On failure
// the previous index, if any, stays in place and the error is returned.
func (s *Service) Reload(ctx context.Context) error {
	if strings.TrimSpace(s.catalogPath) == "" {
		err := services.Wrap(services.ErrConfiguration, "catalog", "load", "catalog path is not configured", nil)
		s.setLoadErr(err)
		return err
	}
	start := time.Now()
	titles, err := catalog.Load(s.catalogPath)
	if err != nil {
		marker := services.ErrValidation
		if errors.Is(err, fs.ErrNotExist) {
			marker = services.ErrNotFound
		}
		wrapped := services.Wrap(marker, "catalog", "load", s.catalogPath, err)
		s.setLoadErr(wrapped)
		logging.WarnWithContext(logging.WithContext(ctx, s.logger), "catalog load failed", "catalog_load_failed",
			logging.String("path", s.catalogPath),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check catalog.path and the CSV header"),
			logging.String(logging.FieldImpact, "recommendations unavailable"),
		)
		return wrapped
	}
	index, err := recommend.Build(titles, s.indexOpts)
	if err != nil {
		wrapped := services.Wrap(services.ErrConfiguration, "catalog", "index", "build index", err)
		s.setLoadErr(wrapped)
		return wrapped
	}

	s.mu.Lock()
	s.index = index
	s.loadErr = nil
	s.mu.Unlock()

	stats := index.Stats()
	s.logger.Debug("catalog indexed",
		logging.String("path", s.catalogPath),
		logging.Int("titles", stats.Titles),
		logging.Int("vocabulary", stats.Vocabulary),
		logging.Duration("elapsed", time.Since(start)),
	)
	return nil
}

func (s *Service) setLoadErr(err error) {
	s.mu.Lock()
	s.loadErr = err
	s.mu.Unlock()
}

// Index returns the current index, or ErrIndexNotReady wrapping the last
// load failure.
func (s *Service) Index() (*recommend.Index, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.index == nil {
		if s.loadErr != nil {
			return nil, fmt.Errorf("%w: %w", recommend.ErrIndexNotReady, s.loadErr)
		}
		return nil, recommend.ErrIndexNotReady
	}
	return s.index, nil
}

// Stats summarizes the loaded index.
func (s *Service) Stats() (recommend.Stats, error) {
	index, err := s.Index()
	if err != nil {
		return recommend.Stats{}, err
	}
	return index.Stats(), nil
}
