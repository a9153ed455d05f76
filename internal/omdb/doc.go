// Package omdb is a minimal client for the Open Movie Database, used as an
// alternative poster source.
package omdb
