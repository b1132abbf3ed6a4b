package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MaxContactSize bounds a contact enquiry payload (in bytes)
const MaxContactSize = 16 * 1024

// BodyLimit caps the request body at maxBytes. Requests that declare a
// larger Content-Length are rejected up front; others fail on read.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
