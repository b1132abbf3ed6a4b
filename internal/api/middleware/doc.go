// Package middleware provides HTTP middleware for the catalog API.
//
// Middleware stack includes:
//   - CORS: Cross-origin resource sharing with configurable origins
//   - RateLimit: Per-IP token bucket rate limiting with idle eviction
//   - Gzip: Response compression via klauspost/compress
//   - RequestLogger: One structured zap line per request
//   - BodyLimit: Request body size cap
//
// Example Usage:
//
//	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
//	router.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))
//	router.Use(middleware.Gzip(middleware.DefaultGzipConfig()))
package middleware
