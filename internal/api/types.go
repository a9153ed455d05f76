package api

// dateTimeFormat is used for RFC3339 timestamps in API payloads.
const dateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// RecommendationView is the transport form of a Recommendation.
type RecommendationView struct {
	ID             string               `json:"id"`
	Query          string               `json:"query"`
	Resolved       string               `json:"resolvedTitle"`
	SubstringMatch bool                 `json:"substringMatch"`
	Items          []RecommendationItem `json:"items"`
	CreatedAt      string               `json:"createdAt,omitempty"`
}

// RecommendationItem is one ranked title.
type RecommendationItem struct {
	Rank   int         `json:"rank"`
	Row    int         `json:"row"`
	Title  string      `json:"title"`
	Score  float64     `json:"score"`
	Poster *PosterView `json:"poster,omitempty"`
}

// PosterView describes how a poster was obtained.
type PosterView struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
	URL    string `json:"url,omitempty"`
	File   string `json:"file,omitempty"`
}

// HistoryEntry is the transport form of a recorded query.
type HistoryEntry struct {
	ID             string   `json:"id"`
	Query          string   `json:"query"`
	Resolved       string   `json:"resolvedTitle"`
	SubstringMatch bool     `json:"substringMatch"`
	Results        []string `json:"results"`
	CreatedAt      string   `json:"createdAt"`
}

// CatalogStats is the transport form of index statistics.
type CatalogStats struct {
	Path       string `json:"path"`
	Titles     int    `json:"titles"`
	Vocabulary int    `json:"vocabulary"`
	Weights    int    `json:"weights"`
	BuiltAt    string `json:"builtAt"`
}
