// Package history records recommendation queries in a small SQLite database
// so past lookups can be listed from the CLI.
package history
