package middleware

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzip"
)

// GzipConfig defines response compression options.
type GzipConfig struct {
	Level int
	// ExcludedPaths are served uncompressed, e.g. handlers that compress themselves
	ExcludedPaths []string
}

// DefaultGzipConfig returns balanced compression settings.
func DefaultGzipConfig() GzipConfig {
	return GzipConfig{
		Level:         gzip.DefaultCompression,
		ExcludedPaths: []string{"/metrics"},
	}
}

type gzipWriter struct {
	gin.ResponseWriter
	writer *gzip.Writer
	wrote  bool
}

func (g *gzipWriter) Write(data []byte) (int, error) {
	if !g.wrote {
		g.Header().Del("Content-Length")
		g.wrote = true
	}
	return g.writer.Write(data)
}

func (g *gzipWriter) WriteString(s string) (int, error) {
	return g.Write([]byte(s))
}

func (g *gzipWriter) WriteHeader(code int) {
	g.Header().Del("Content-Length")
	g.ResponseWriter.WriteHeader(code)
}

// Gzip compresses responses for clients that accept gzip.
func Gzip(cfg GzipConfig) gin.HandlerFunc {
	excluded := make(map[string]struct{}, len(cfg.ExcludedPaths))
	for _, p := range cfg.ExcludedPaths {
		excluded[p] = struct{}{}
	}

	pool := sync.Pool{
		New: func() any {
			w, err := gzip.NewWriterLevel(nil, cfg.Level)
			if err != nil {
				w = gzip.NewWriter(nil)
			}
			return w
		},
	}

	return func(c *gin.Context) {
		if !acceptsGzip(c.Request) {
			c.Next()
			return
		}
		if _, skip := excluded[c.Request.URL.Path]; skip {
			c.Next()
			return
		}

		gz := pool.Get().(*gzip.Writer)
		gz.Reset(c.Writer)
		defer pool.Put(gz)

		gw := &gzipWriter{ResponseWriter: c.Writer, writer: gz}
		c.Header("Content-Encoding", "gzip")
		c.Writer.Header().Add("Vary", "Accept-Encoding")
		c.Writer = gw

		c.Next()

		if !gw.wrote {
			// Nothing was written; an empty gzip stream would break bodiless statuses
			if !gw.Written() {
				c.Writer.Header().Del("Content-Encoding")
			}
			gz.Reset(nil)
			return
		}
		_ = gz.Close()
	}
}

func acceptsGzip(r *http.Request) bool {
	if r.Method == http.MethodHead {
		return false
	}
	for _, part := range strings.Split(r.Header.Get("Accept-Encoding"), ",") {
		enc, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		if strings.EqualFold(enc, "gzip") {
			return true
		}
	}
	return false
}
