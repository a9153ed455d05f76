// Package recommend ranks catalog titles by content similarity.
//
// Build turns a loaded catalog into an immutable Index. Recommend resolves a
// free-text query to one row and returns the closest other titles by cosine
// similarity. Blank queries, a missing index, and unknown titles are reported
// as distinct errors.
package recommend
