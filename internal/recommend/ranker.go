package recommend

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// DefaultTopN is the number of recommendations shown when none is requested.
const DefaultTopN = 5

// Match is one ranked recommendation.
type Match struct {
	Row   int
	Title string
	Score float64
}

// Result is the outcome of a resolved query.
type Result struct {
	Query    string
	Resolved string
	Row      int
	// Substring reports that the query matched by case-insensitive substring
	// rather than exact title.
	Substring bool
	Matches   []Match
}

// Titles returns the recommended titles in rank order.
func (r Result) Titles() []string {
	out := make([]string, len(r.Matches))
	for i, m := range r.Matches {
		out[i] = m.Title
	}
	return out
}

// Resolve maps a query to a catalog row: the first exact, case-sensitive title
// match, otherwise the first title containing the query case-insensitively.
func (ix *Index) Resolve(query string) (row int, substring bool, err error) {
	if ix == nil {
		return 0, false, ErrIndexNotReady
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return 0, false, ErrEmptyQuery
	}
	for i, t := range ix.titles {
		if t.Title == query {
			return i, false, nil
		}
	}
	needle := cases.Fold().String(query)
	for i, hay := range ix.folded {
		if strings.Contains(hay, needle) {
			return i, true, nil
		}
	}
	return 0, false, &TitleNotFoundError{Query: query}
}

// Recommend returns up to topN titles most similar to the resolved query,
// ordered by descending cosine similarity with ties going to the earlier row.
// The resolved row itself is never included.
func (ix *Index) Recommend(query string, topN int) (Result, error) {
	row, substring, err := ix.Resolve(query)
	if err != nil {
		return Result{}, err
	}
	result := Result{
		Query:     strings.TrimSpace(query),
		Resolved:  ix.titles[row].Title,
		Row:       row,
		Substring: substring,
		Matches:   []Match{},
	}
	if topN <= 0 {
		return result, nil
	}

	scores := ix.matrix.Similarities(row)
	candidates := make([]int, 0, len(scores)-1)
	for i := range scores {
		if i != row {
			candidates = append(candidates, i)
		}
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		return scores[candidates[a]] > scores[candidates[b]]
	})
	if len(candidates) > topN {
		candidates = candidates[:topN]
	}
	for _, i := range candidates {
		result.Matches = append(result.Matches, Match{Row: i, Title: ix.titles[i].Title, Score: scores[i]})
	}
	return result, nil
}
