package testsupport

import (
	"path/filepath"
	"testing"

	"reelmatch/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// Posters are disabled so tests never reach the network unless they opt in.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Catalog.Path = filepath.Join(base, "catalog.csv")
	cfgVal.Poster.Enabled = false
	cfgVal.TMDB.APIKey = ""
	cfgVal.OMDb.APIKey = ""

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithCatalogRows writes rows to the config's catalog path.
func WithCatalogRows(rows ...CatalogRow) ConfigOption {
	return func(b *configBuilder) {
		WriteCatalog(b.t, b.cfg.Catalog.Path, rows)
	}
}

// WithTMDB enables TMDB posters against the given endpoints.
func WithTMDB(key, baseURL, imageBaseURL string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Poster.Enabled = true
		b.cfg.Poster.Provider = config.ProviderTMDB
		b.cfg.TMDB.APIKey = key
		b.cfg.TMDB.BaseURL = baseURL
		b.cfg.TMDB.ImageBaseURL = imageBaseURL
		b.cfg.Poster.RequestsPerSecond = 0
	}
}

// WithOMDb enables OMDb posters against the given endpoint.
func WithOMDb(key, baseURL string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Poster.Enabled = true
		b.cfg.Poster.Provider = config.ProviderOMDb
		b.cfg.OMDb.APIKey = key
		b.cfg.OMDb.BaseURL = baseURL
		b.cfg.Poster.RequestsPerSecond = 0
	}
}

// WithHistory toggles query history.
func WithHistory(enabled bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.History.Enabled = enabled
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
