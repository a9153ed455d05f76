package preflight

import (
	"context"

	"reelmatch/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name    string
	Passed  bool
	Skipped bool
	Detail  string
}

// RunAll executes the local checks and, when checkAPI is set, the poster
// provider check.
func RunAll(ctx context.Context, cfg *config.Config, checkAPI bool) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckCatalog(cfg.Catalog.Path),
		CheckDirectoryAccess("Data directory", cfg.Paths.DataDir),
		CheckDirectoryAccess("Log directory", cfg.Paths.LogDir),
	}
	if checkAPI {
		results = append(results, CheckPosterProvider(ctx, cfg))
	}
	return results
}
