// Package utils holds small shared helpers: content hashing for cache
// validators.
package utils
