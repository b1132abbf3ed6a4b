// Package logging provides structured logging using uber/zap.
//
// Two modes are offered:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Catalog misses and rejected enquiries are ordinary outcomes and are
// logged at debug or info, never at error.
//
// Example Usage:
//
//	logger, err := logging.New(logging.DefaultConfig())
//	logger.Info("Catalog loaded", zap.Int("packages", store.Len()))
package logging
