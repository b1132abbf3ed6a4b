// Package config provides 12-factor configuration management for the retreat catalog backend.
//
// Configuration is loaded from environment variables with sensible defaults.
// A .env file, when present, is applied first and never overrides variables
// already set in the process environment. CLI flags override both.
//
// Configuration Sections:
//   - Server: HTTP server settings (port, host, shutdown timeout, CORS origins)
//   - Logging: Log level and output format
//   - RateLimit: Per-IP rate limiting configuration
//   - Catalog: Definition file glob and image host allow-list
//   - Contact: Enquiry webhook target, timeout and retries
//   - Compression: gzip response encoding
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("Server running on %s\n", cfg.Server.Addr())
//
// Environment Variables:
//   - PORT, HOST, SHUTDOWN_TIMEOUT, CORS_ALLOW_ORIGINS
//   - LOG_LEVEL, LOG_DEV
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED
//   - CATALOG_GLOB, CATALOG_IMAGE_HOSTS
//   - CONTACT_WEBHOOK_URL, CONTACT_TIMEOUT, CONTACT_RETRIES
//   - GZIP_ENABLED
package config
