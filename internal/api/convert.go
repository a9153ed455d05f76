package api

import (
	"reelmatch/internal/history"
	"reelmatch/internal/poster"
	"reelmatch/internal/recommend"
)

// FromRecommendation converts a workflow answer into its transport form.
// files, when non-nil, holds exported poster paths by item position.
func FromRecommendation(rec *Recommendation, files []string) RecommendationView {
	if rec == nil {
		return RecommendationView{Items: []RecommendationItem{}}
	}
	view := RecommendationView{
		ID:             rec.ID,
		Query:          rec.Result.Query,
		Resolved:       rec.Result.Resolved,
		SubstringMatch: rec.Result.Substring,
		Items:          make([]RecommendationItem, 0, len(rec.Items)),
	}
	if !rec.CreatedAt.IsZero() {
		view.CreatedAt = rec.CreatedAt.UTC().Format(dateTimeFormat)
	}
	for i, item := range rec.Items {
		out := RecommendationItem{
			Rank:  item.Rank,
			Row:   item.Match.Row,
			Title: item.Match.Title,
			Score: item.Match.Score,
		}
		if item.Poster != nil {
			pv := FromPoster(*item.Poster)
			if i < len(files) {
				pv.File = files[i]
			}
			out.Poster = &pv
		}
		view.Items = append(view.Items, out)
	}
	return view
}

// FromPoster converts a poster result.
func FromPoster(res poster.Result) PosterView {
	if res.Ok() {
		return PosterView{Status: "ok", URL: res.URL}
	}
	return PosterView{Status: "placeholder", Reason: string(res.Reason)}
}

// FromHistoryEntry converts a stored history row.
func FromHistoryEntry(e history.Entry) HistoryEntry {
	results := e.Results
	if results == nil {
		results = []string{}
	}
	return HistoryEntry{
		ID:             e.ID,
		Query:          e.Query,
		Resolved:       e.Resolved,
		SubstringMatch: e.Substring,
		Results:        results,
		CreatedAt:      e.CreatedAt.UTC().Format(dateTimeFormat),
	}
}

// FromStats converts index statistics.
func FromStats(path string, stats recommend.Stats) CatalogStats {
	return CatalogStats{
		Path:       path,
		Titles:     stats.Titles,
		Vocabulary: stats.Vocabulary,
		Weights:    stats.Weights,
		BuiltAt:    stats.BuiltAt.UTC().Format(dateTimeFormat),
	}
}
