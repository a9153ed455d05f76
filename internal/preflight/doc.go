// Package preflight provides readiness checks for the catalog, local
// directories, and the poster provider.
//
// The CLI "reelmatch config validate" runs the local checks every time and
// the provider check only with --check-api, since it spends one API request.
// Each check reports a Result; none of them abort the program.
package preflight
