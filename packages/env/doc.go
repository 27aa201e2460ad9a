// Package env models the process environment table used by the
// confirmation chain.
//
// It provides functionality for:
//   - Abstract Table access (process-backed or in-memory)
//   - Variable resolution with mode-suffix fallback and defaults
//   - Loading .env files to seed the table
package env
