// Package api is the recommendation workflow behind the CLI.
//
// Service owns the current recommendation index and answers queries: it
// validates the title, ranks similar titles, resolves one poster per result
// (in order, optionally with bounded parallelism), and records the query in
// history. Catalog load failures leave the service without an index; every
// query then reports recommend.ErrIndexNotReady until Reload succeeds.
//
// The transport types in types.go use camelCase JSON tags and are what the
// CLI prints with --json.
package api
