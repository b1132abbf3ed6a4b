// Package cli implements the retreats command line: serve, validate and list.
// Flags override the environment, which is read after any .env files.
package cli
