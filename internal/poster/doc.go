// Package poster resolves poster artwork for catalog titles.
//
// A Resolver asks a Provider (TMDB or OMDb) for an image URL, downloads and
// decodes it, and substitutes a deterministic placeholder on any failure.
// Lookups pass through a circuit breaker so a provider outage stops costing a
// timeout per title. Export writes a result set to disk as numbered PNGs.
package poster
