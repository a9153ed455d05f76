// Package catalog loads the tabular title catalog into typed records.
//
// The source is a CSV file with a header row; only the presence of the
// required columns is validated. Every missing cell becomes an empty string so
// downstream text processing never sees a null.
package catalog
