package tfidf

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tokenizer turns a document into its n-gram terms. It is not safe for
// concurrent use because the underlying caser keeps state.
type Tokenizer struct {
	lower     cases.Caser
	stopWords bool
	ngramMin  int
	ngramMax  int
}

// NewTokenizer builds a tokenizer for the n-gram range in opts.
func NewTokenizer(opts Options) *Tokenizer {
	opts = opts.withDefaults()
	return &Tokenizer{
		lower:     cases.Lower(language.Und),
		stopWords: opts.StopWords,
		ngramMin:  opts.NgramMin,
		ngramMax:  opts.NgramMax,
	}
}

// Words lowercases doc and splits it into runs of at least two letters,
// digits, or underscores, dropping stop words when enabled.
func (t *Tokenizer) Words(doc string) []string {
	lowered := t.lower.String(doc)
	fields := strings.FieldsFunc(lowered, func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_')
	})
	words := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) < 2 {
			continue
		}
		if t.stopWords && IsStopWord(f) {
			continue
		}
		words = append(words, f)
	}
	return words
}

// Terms returns the n-grams of doc. Stop words are removed before n-grams are
// formed, so a bigram may span a removed word.
func (t *Tokenizer) Terms(doc string) []string {
	words := t.Words(doc)
	if t.ngramMin == 1 && t.ngramMax == 1 {
		return words
	}
	terms := make([]string, 0, len(words)*(t.ngramMax-t.ngramMin+1))
	for n := t.ngramMin; n <= t.ngramMax; n++ {
		for i := 0; i+n <= len(words); i++ {
			if n == 1 {
				terms = append(terms, words[i])
				continue
			}
			terms = append(terms, strings.Join(words[i:i+n], " "))
		}
	}
	return terms
}
