package preflight

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"reelmatch/internal/catalog"
	"reelmatch/internal/config"
	"reelmatch/internal/omdb"
	"reelmatch/internal/tmdb"
)

// probeTitle is a title every provider knows.
const probeTitle = "The Matrix"

// CheckCatalog verifies the catalog parses and has the required columns.
func CheckCatalog(path string) Result {
	const name = "Catalog"
	titles, err := catalog.Load(path)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d titles)", path, len(titles))}
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckPosterProvider performs one search against the configured provider.
// A provider of "none" is reported as skipped.
func CheckPosterProvider(ctx context.Context, cfg *config.Config) Result {
	const name = "Poster provider"

	checkCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	client := &http.Client{Timeout: 10 * time.Second}

	switch cfg.PosterProvider() {
	case config.ProviderTMDB:
		tc, err := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language, tmdb.WithHTTPClient(client))
		if err != nil {
			return Result{Name: name, Detail: fmt.Sprintf("tmdb (error: %v)", err)}
		}
		resp, err := tc.SearchMulti(checkCtx, probeTitle)
		if err != nil {
			return Result{Name: name, Detail: fmt.Sprintf("tmdb (error: %v)", err)}
		}
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("tmdb reachable (%d results)", len(resp.Results))}
	case config.ProviderOMDb:
		oc, err := omdb.New(cfg.OMDb.APIKey, cfg.OMDb.BaseURL, omdb.WithHTTPClient(client))
		if err != nil {
			return Result{Name: name, Detail: fmt.Sprintf("omdb (error: %v)", err)}
		}
		if _, err := oc.GetByTitle(checkCtx, probeTitle); err != nil {
			return Result{Name: name, Detail: fmt.Sprintf("omdb (error: %v)", err)}
		}
		return Result{Name: name, Passed: true, Detail: "omdb reachable"}
	default:
		return Result{Name: name, Skipped: true, Detail: "disabled; placeholders only"}
	}
}
