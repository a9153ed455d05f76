package api

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"reelmatch/internal/history"
	"reelmatch/internal/logging"
	"reelmatch/internal/poster"
	"reelmatch/internal/recommend"
	"reelmatch/internal/services"
)

// SearchPlaceholder is the hint text shown in an empty search box; submitting
// it unchanged counts as an empty query.
const SearchPlaceholder = "Search for movies or TV shows..."

// Item pairs a ranked match with its poster. Poster is nil when posters are
// disabled for the service.
type Item struct {
	Rank   int
	Match  recommend.Match
	Poster *poster.Result
}

// Recommendation is the answer to one query.
type Recommendation struct {
	ID        string
	Result    recommend.Result
	Items     []Item
	CreatedAt time.Time
}

// Recommend validates query, ranks up to topN similar titles, and resolves
// their posters. Poster failures never fail the query.
func (s *Service) Recommend(ctx context.Context, query string, topN int) (*Recommendation, error) {
	query = strings.TrimSpace(query)
	if query == "" || query == SearchPlaceholder {
		return nil, recommend.ErrEmptyQuery
	}
	index, err := s.Index()
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	ctx = services.WithRequestID(ctx, id)
	ctx = services.WithQuery(ctx, query)
	logger := logging.WithContext(ctx, s.logger)

	result, err := index.Recommend(query, topN)
	if err != nil {
		logger.Debug("query not answered", logging.Error(err))
		return nil, err
	}
	if result.Substring {
		logger.Debug("query resolved by substring", logging.String("resolved", result.Resolved))
	}

	rec := &Recommendation{
		ID:        id,
		Result:    result,
		Items:     make([]Item, len(result.Matches)),
		CreatedAt: time.Now().UTC(),
	}
	for i, m := range result.Matches {
		rec.Items[i] = Item{Rank: i + 1, Match: m}
	}
	if s.posters != nil {
		posters := s.resolvePosters(ctx, result.Titles())
		for i := range rec.Items {
			rec.Items[i].Poster = &posters[i]
		}
	}

	s.recordHistory(ctx, rec)
	logger.Debug("recommendations ready",
		logging.String("resolved", result.Resolved),
		logging.Int("count", len(rec.Items)),
	)
	return rec, nil
}

// Poster resolves a single title's poster. With posters disabled it returns
// a placeholder with ReasonProviderDisabled.
func (s *Service) Poster(ctx context.Context, title string) poster.Result {
	ctx = services.WithRequestID(ctx, uuid.NewString())
	return s.posters.Resolve(ctx, strings.TrimSpace(title))
}

// resolvePosters writes each result into its own slot so order always
// matches titles.
func (s *Service) resolvePosters(ctx context.Context, titles []string) []poster.Result {
	out := make([]poster.Result, len(titles))
	if s.concurrency <= 1 {
		for i, title := range titles {
			out[i] = s.posters.Resolve(ctx, title)
		}
		return out
	}

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, title := range titles {
		i, title := i, title
		g.Go(func() error {
			out[i] = s.posters.Resolve(ctx, title)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (s *Service) recordHistory(ctx context.Context, rec *Recommendation) {
	if s.history == nil {
		return
	}
	_, err := s.history.Record(ctx, history.Entry{
		ID:        rec.ID,
		Query:     rec.Result.Query,
		Resolved:  rec.Result.Resolved,
		Substring: rec.Result.Substring,
		Results:   rec.Result.Titles(),
		CreatedAt: rec.CreatedAt,
	})
	if err != nil {
		logging.WarnWithContext(logging.WithContext(ctx, s.logger), "history record failed", "history_record_failed",
			logging.Error(err),
			logging.String(logging.FieldImpact, "query missing from history"),
		)
	}
}
