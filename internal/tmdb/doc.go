// Package tmdb is a minimal client for The Movie Database search API.
//
// Only the multi search endpoint is used: it covers movies and TV shows in a
// single request, which matches a mixed streaming catalog.
package tmdb
