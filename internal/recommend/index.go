package recommend

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"

	"reelmatch/internal/catalog"
	"reelmatch/internal/tfidf"
)

// Index is the immutable pairing of a catalog and its term-weight matrix.
// Row i of the matrix describes titles[i]. Any catalog change requires a new
// Build.
type Index struct {
	titles  []catalog.Title
	folded  []string
	matrix  *tfidf.Matrix
	builtAt time.Time
}

// Stats summarizes an index for display.
type Stats struct {
	Titles     int
	Vocabulary int
	Weights    int
	BuiltAt    time.Time
}

// Build vectorizes the combined text of every title.
func Build(titles []catalog.Title, opts tfidf.Options) (*Index, error) {
	owned := make([]catalog.Title, len(titles))
	copy(owned, titles)
	for i := range owned {
		owned[i].Row = i
	}

	matrix, err := tfidf.Fit(catalog.Documents(owned), opts)
	if err != nil {
		return nil, fmt.Errorf("build term matrix: %w", err)
	}

	fold := cases.Fold()
	folded := make([]string, len(owned))
	for i, t := range owned {
		folded[i] = fold.String(t.Title)
	}

	return &Index{
		titles:  owned,
		folded:  folded,
		matrix:  matrix,
		builtAt: time.Now().UTC(),
	}, nil
}

// Len returns the number of catalog titles.
func (ix *Index) Len() int { return len(ix.titles) }

// Title returns the record at row.
func (ix *Index) Title(row int) catalog.Title { return ix.titles[row] }

// Stats reports catalog and vocabulary sizes.
func (ix *Index) Stats() Stats {
	return Stats{
		Titles:     len(ix.titles),
		Vocabulary: ix.matrix.Cols(),
		Weights:    ix.matrix.NNZ(),
		BuiltAt:    ix.builtAt,
	}
}
