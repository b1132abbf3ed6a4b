package http

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/domain/catalog"
	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/domain/itinerary"
	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/shared/types"
)

var (
	errPackageNotFound = gin.H{"error": "package not found"}
	errTypeNotFound    = gin.H{"error": "retreat type not found"}
)

// Meta is the page metadata for a package detail page
type Meta struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Path        string    `json:"path"`
	OpenGraph   OpenGraph `json:"openGraph"`
}

// OpenGraph carries social sharing metadata
type OpenGraph struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Type        string   `json:"type"`
}

// ListPackages lists package summaries, optionally filtered by ?type=
func (h *Handlers) ListPackages(c *gin.Context) {
	t, ok := h.typeQuery(c)
	if !ok || h.notModified(c) {
		return
	}
	c.JSON(http.StatusOK, catalog.Summaries(h.store.Select(t)))
}

// ListSlugs lists package slugs, optionally filtered by ?type=
func (h *Handlers) ListSlugs(c *gin.Context) {
	t, ok := h.typeQuery(c)
	if !ok || h.notModified(c) {
		return
	}
	c.JSON(http.StatusOK, h.store.Slugs(t))
}

// Stats returns catalog statistics
func (h *Handlers) Stats(c *gin.Context) {
	if h.notModified(c) {
		return
	}
	c.JSON(http.StatusOK, h.store.Stats())
}

// GetPackage returns a full package by slug
func (h *Handlers) GetPackage(c *gin.Context) {
	p, ok := h.lookup(c)
	if !ok || h.notModified(c) {
		return
	}
	c.JSON(http.StatusOK, p)
}

// PackageMeta returns the page metadata for a package
func (h *Handlers) PackageMeta(c *gin.Context) {
	p, ok := h.lookup(c)
	if !ok || h.notModified(c) {
		return
	}

	c.JSON(http.StatusOK, Meta{
		Title:       fmt.Sprintf("%s | %s", p.Title, p.Type.Section()),
		Description: p.ShortSummary,
		Path:        p.Type.BasePath() + "/" + p.Slug,
		OpenGraph: OpenGraph{
			Title:       p.Title,
			Description: p.ShortSummary,
			Images:      []string{p.HeroImage},
			Type:        "website",
		},
	})
}

// PackageItinerary serves the itinerary document as an attachment
func (h *Handlers) PackageItinerary(c *gin.Context) {
	p, ok := h.lookup(c)
	if !ok || h.notModified(c) {
		return
	}

	var buf bytes.Buffer
	if err := itinerary.Render(&buf, p); err != nil {
		h.logger.Error("Failed to render itinerary", zap.String("slug", p.Slug), zap.Error(err))
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render itinerary"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", itinerary.Filename(p)))
	c.Data(http.StatusOK, itinerary.ContentType, buf.Bytes())
}

// ListTypePackages lists the packages of the retreat type in the path
func (h *Handlers) ListTypePackages(c *gin.Context) {
	t, err := catalog.ParseRetreatType(c.Param("type"))
	if err != nil {
		c.JSON(http.StatusNotFound, errTypeNotFound)
		return
	}
	if h.notModified(c) {
		return
	}
	c.JSON(http.StatusOK, catalog.Summaries(h.store.FilterByCategory(t)))
}

// GetTypePackage returns a package only when it belongs to the retreat type in the path
func (h *Handlers) GetTypePackage(c *gin.Context) {
	t, err := catalog.ParseRetreatType(c.Param("type"))
	if err != nil {
		c.JSON(http.StatusNotFound, errTypeNotFound)
		return
	}

	slug := c.Param("slug")
	p, ok := h.store.GetInType(t, slug)
	h.metrics.RecordLookup(ok)
	if !ok {
		h.logger.Debug("Package not found", zap.String("slug", slug), zap.String("type", t.String()))
		c.JSON(http.StatusNotFound, errPackageNotFound)
		return
	}
	if h.notModified(c) {
		return
	}
	c.JSON(http.StatusOK, p)
}

// Calendar lists departures across packages, optionally filtered by ?type=
func (h *Handlers) Calendar(c *gin.Context) {
	t, ok := h.typeQuery(c)
	if !ok || h.notModified(c) {
		return
	}
	c.JSON(http.StatusOK, h.store.Departures(t))
}

// lookup resolves :slug, writing a 404 when absent
func (h *Handlers) lookup(c *gin.Context) (*catalog.Package, bool) {
	slug := c.Param("slug")
	p, ok := h.store.GetBySlug(slug)
	h.metrics.RecordLookup(ok)
	if !ok {
		h.logger.Debug("Package not found", zap.String("slug", slug))
		c.JSON(http.StatusNotFound, errPackageNotFound)
		return nil, false
	}
	return p, true
}

// typeQuery parses the optional ?type= filter, writing a 400 when it is unknown
func (h *Handlers) typeQuery(c *gin.Context) (types.Optional[catalog.RetreatType], bool) {
	raw, present := c.GetQuery("type")
	if !present {
		return types.None[catalog.RetreatType](), true
	}

	t, err := catalog.ParseRetreatType(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
			"valid": catalog.RetreatTypes(),
		})
		return types.None[catalog.RetreatType](), false
	}
	return types.Some(t), true
}

// notModified sets the catalog cache validators and reports whether the
// client's copy is current, in which case a 304 has been written
func (h *Handlers) notModified(c *gin.Context) bool {
	etag := `"` + h.store.Version() + `"`
	c.Header("ETag", etag)
	c.Header("Cache-Control", "public, max-age=300")

	for _, candidate := range strings.Split(c.GetHeader("If-None-Match"), ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == etag || candidate == "*" {
			c.Status(http.StatusNotModified)
			return true
		}
	}
	return false
}
