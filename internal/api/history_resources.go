package api

import (
	"context"
	"errors"
	"fmt"

	"reelmatch/internal/config"
	"reelmatch/internal/history"
)

// ErrHistoryDisabled is returned when history.enabled is false.
var ErrHistoryDisabled = errors.New("query history is disabled")

// OpenHistory validates config and opens the history store.
func OpenHistory(cfg *config.Config) (*history.Store, error) {
	if cfg == nil || !cfg.History.Enabled {
		return nil, ErrHistoryDisabled
	}
	store, err := history.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open history store: %w", err)
	}
	return store, nil
}

// ListHistory returns up to limit entries, newest first.
func ListHistory(ctx context.Context, cfg *config.Config, limit int) ([]HistoryEntry, error) {
	store, err := OpenHistory(cfg)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	entries, err := store.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]HistoryEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, FromHistoryEntry(e))
	}
	return out, nil
}

// ClearHistory removes every entry and returns the number deleted.
func ClearHistory(ctx context.Context, cfg *config.Config) (int64, error) {
	store, err := OpenHistory(cfg)
	if err != nil {
		return 0, err
	}
	defer store.Close()
	return store.Clear(ctx)
}
