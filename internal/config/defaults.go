package config

// Poster provider names.
const (
	ProviderTMDB = "tmdb"
	ProviderOMDb = "omdb"
	ProviderNone = "none"
)

const (
	defaultConfigPath             = "~/.config/reelmatch/config.toml"
	defaultDataDirFallback        = "~/.local/share/reelmatch"
	defaultLogDir                 = "~/.local/share/reelmatch/logs"
	defaultCatalogPath            = "netflix_titles.csv"
	defaultMaxFeatures            = 5000
	defaultNgramMax               = 2
	defaultTopN                   = 5
	defaultPosterProvider         = ProviderTMDB
	defaultPosterTimeoutSeconds   = 10
	defaultPosterConcurrency      = 1
	defaultPosterRequestsPerSec   = 4.0
	defaultBreakerFailures        = 5
	defaultBreakerCooldownSeconds = 60
	defaultTMDBLanguage           = "en-US"
	defaultTMDBBaseURL            = "https://api.themoviedb.org/3"
	defaultTMDBImageBaseURL       = "https://image.tmdb.org/t/p/w500"
	defaultOMDbBaseURL            = "https://www.omdbapi.com"
	defaultLogFormat              = "console"
	defaultLogLevel               = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir(),
			LogDir:  defaultLogDir,
		},
		Catalog: Catalog{
			Path: defaultCatalogPath,
		},
		Index: Index{
			MaxFeatures: defaultMaxFeatures,
			NgramMax:    defaultNgramMax,
			StopWords:   true,
		},
		Recommend: Recommend{
			TopN: defaultTopN,
		},
		Poster: Poster{
			Enabled:                true,
			Provider:               defaultPosterProvider,
			TimeoutSeconds:         defaultPosterTimeoutSeconds,
			Concurrency:            defaultPosterConcurrency,
			RequestsPerSecond:      defaultPosterRequestsPerSec,
			BreakerFailures:        defaultBreakerFailures,
			BreakerCooldownSeconds: defaultBreakerCooldownSeconds,
		},
		TMDB: TMDB{
			BaseURL:      defaultTMDBBaseURL,
			ImageBaseURL: defaultTMDBImageBaseURL,
			Language:     defaultTMDBLanguage,
		},
		OMDb: OMDb{
			BaseURL: defaultOMDbBaseURL,
		},
		History: History{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
