// Package main is the entry point for the retreat catalog server.
//
// The server loads the package catalog once at startup (the embedded seed or
// the files matched by CATALOG_GLOB) and serves it read-only over HTTP
// alongside the contact enquiry endpoint.
//
// Configuration:
//   - Environment variables (12-factor), optionally from .env files
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Serve the embedded catalog
//	./server serve --port 8000
//
//	# Development mode (colored logs, debug level)
//	./server serve --dev
//
//	# Check a catalog definition before deploying it
//	./server validate --catalog 'data/**/*.yaml'
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
