// Package tfidf builds sparse term-weight matrices from plain-text documents.
//
// Documents are lowercased, split into word tokens, stripped of English stop
// words, and expanded into n-grams. Fit selects a fixed vocabulary, computes
// smoothed idf weights, and returns an immutable Matrix whose rows are unit
// length, so cosine similarity reduces to a sparse dot product.
package tfidf
