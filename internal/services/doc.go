// Package services defines shared utilities consumed by the recommendation
// workflow and its external integrations.
//
// Key responsibilities:
//   - Context helpers that stamp correlation identifiers and the active title
//     query for logging.
//   - Structured error markers plus the Wrap helper that classify failures
//     (configuration, validation, external) for the CLI.
//
// Use these helpers when wiring new components so error classification and
// observability stay uniform.
package services
