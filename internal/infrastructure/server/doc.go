// Package server assembles the catalog, contact service, middleware and
// routes into a runnable HTTP server with graceful shutdown.
package server
