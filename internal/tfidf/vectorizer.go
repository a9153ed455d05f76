package tfidf

import (
	"errors"
	"math"
	"sort"
)

// Options configures vocabulary selection.
type Options struct {
	// MaxFeatures caps the vocabulary size; 0 keeps every term.
	MaxFeatures int
	NgramMin    int
	NgramMax    int
	StopWords   bool
}

// DefaultOptions mirrors the settings the recommender was tuned with.
func DefaultOptions() Options {
	return Options{MaxFeatures: 5000, NgramMin: 1, NgramMax: 2, StopWords: true}
}

func (o Options) withDefaults() Options {
	if o.NgramMin <= 0 {
		o.NgramMin = 1
	}
	if o.NgramMax < o.NgramMin {
		o.NgramMax = o.NgramMin
	}
	return o
}

// ErrInvalidOptions reports a negative feature cap.
var ErrInvalidOptions = errors.New("tfidf: invalid options")

// Vocabulary maps terms to matrix columns, in lexical order.
type Vocabulary struct {
	terms []string
	index map[string]int
	idf   []float64
}

// Len returns the number of columns.
func (v *Vocabulary) Len() int { return len(v.terms) }

// Term returns the term for column i.
func (v *Vocabulary) Term(i int) string { return v.terms[i] }

// Lookup returns the column for term.
func (v *Vocabulary) Lookup(term string) (int, bool) {
	i, ok := v.index[term]
	return i, ok
}

// IDF returns the inverse document frequency weight of column i.
func (v *Vocabulary) IDF(i int) float64 { return v.idf[i] }

// Matrix holds one L2-normalized TF-IDF row per document. It is read-only
// after Fit and safe to share between goroutines.
type Matrix struct {
	rows  []Vector
	vocab *Vocabulary
}

// Rows returns the number of documents.
func (m *Matrix) Rows() int { return len(m.rows) }

// Cols returns the vocabulary size.
func (m *Matrix) Cols() int { return m.vocab.Len() }

// Row returns row i. Callers must not modify the returned slices.
func (m *Matrix) Row(i int) Vector { return m.rows[i] }

// Vocabulary returns the fitted vocabulary.
func (m *Matrix) Vocabulary() *Vocabulary { return m.vocab }

// NNZ returns the number of stored weights across all rows.
func (m *Matrix) NNZ() int {
	total := 0
	for _, r := range m.rows {
		total += r.NNZ()
	}
	return total
}

// Similarities returns the cosine similarity between row i and every row,
// including i itself. Rows are unit length so this is a dot product.
func (m *Matrix) Similarities(i int) []float64 {
	query := m.rows[i]
	scores := make([]float64, len(m.rows))
	for j, row := range m.rows {
		scores[j] = query.Dot(row)
	}
	return scores
}

// Fit learns the vocabulary and idf weights from docs and returns their
// weighted matrix. Term selection keeps the MaxFeatures terms with the highest
// corpus-wide count, ties broken lexically; idf uses smoothing:
// ln((1+n)/(1+df)) + 1.
func Fit(docs []string, opts Options) (*Matrix, error) {
	if opts.MaxFeatures < 0 {
		return nil, ErrInvalidOptions
	}
	opts = opts.withDefaults()
	tokenizer := NewTokenizer(opts)

	counts := make([]map[string]int, len(docs))
	corpusCount := make(map[string]int)
	docFreq := make(map[string]int)
	for i, doc := range docs {
		c := make(map[string]int)
		for _, term := range tokenizer.Terms(doc) {
			c[term]++
		}
		for term, n := range c {
			corpusCount[term] += n
			docFreq[term]++
		}
		counts[i] = c
	}

	terms := make([]string, 0, len(corpusCount))
	for term := range corpusCount {
		terms = append(terms, term)
	}
	if opts.MaxFeatures > 0 && len(terms) > opts.MaxFeatures {
		sort.Slice(terms, func(a, b int) bool {
			ca, cb := corpusCount[terms[a]], corpusCount[terms[b]]
			if ca != cb {
				return ca > cb
			}
			return terms[a] < terms[b]
		})
		terms = terms[:opts.MaxFeatures]
	}
	sort.Strings(terms)

	n := float64(len(docs))
	vocab := &Vocabulary{
		terms: terms,
		index: make(map[string]int, len(terms)),
		idf:   make([]float64, len(terms)),
	}
	for col, term := range terms {
		vocab.index[term] = col
		vocab.idf[col] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}

	rows := make([]Vector, len(docs))
	for i, c := range counts {
		rows[i] = vocab.weigh(c)
	}
	return &Matrix{rows: rows, vocab: vocab}, nil
}

func (v *Vocabulary) weigh(counts map[string]int) Vector {
	cols := make([]int, 0, len(counts))
	for term := range counts {
		if col, ok := v.index[term]; ok {
			cols = append(cols, col)
		}
	}
	sort.Ints(cols)
	vec := Vector{Indices: cols, Values: make([]float64, len(cols))}
	for i, col := range cols {
		vec.Values[i] = float64(counts[v.terms[col]]) * v.idf[col]
	}
	vec.normalize()
	return vec
}
