// Package config loads and merges the application configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are merged in priority order (environment, then flags, then the
// JSON file) using a builder; defaults are applied to any field that remains
// unset, and the final result is validated before use.
package config
