package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/api/middleware"
	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/domain/catalog"
	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/domain/contact"
	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/infrastructure/monitoring"
)

// Version is reported by the root endpoint
const Version = "1.0.0"

// Handlers contains all HTTP handlers
type Handlers struct {
	store   *catalog.Store
	contact *contact.Service
	metrics *monitoring.Metrics
	logger  *logging.Logger

	contactGuards []gin.HandlerFunc
}

// NewHandlers creates a new handler set
func NewHandlers(store *catalog.Store, contactSvc *contact.Service, metrics *monitoring.Metrics, logger *logging.Logger) *Handlers {
	return &Handlers{
		store:   store,
		contact: contactSvc,
		metrics: metrics,
		logger:  logger.Named("api"),
	}
}

// GuardContact adds middleware run before the contact handler, e.g. a
// process-wide rate limit protecting the enquiry receiver. Call before Register.
func (h *Handlers) GuardContact(mw ...gin.HandlerFunc) *Handlers {
	h.contactGuards = append(h.contactGuards, mw...)
	return h
}

// Register mounts every route on r
func (h *Handlers) Register(r gin.IRouter) {
	r.GET("/", h.Root)
	r.GET("/health", h.Health)

	packages := r.Group("/packages")
	packages.GET("", h.ListPackages)
	packages.GET("/slugs", h.ListSlugs)
	packages.GET("/stats", h.Stats)
	packages.GET("/:slug", h.GetPackage)
	packages.GET("/:slug/meta", h.PackageMeta)
	packages.GET("/:slug/itinerary", h.PackageItinerary)

	r.GET("/types/:type/packages", h.ListTypePackages)
	r.GET("/types/:type/packages/:slug", h.GetTypePackage)

	r.GET("/calendar", h.Calendar)
	contactChain := append([]gin.HandlerFunc{middleware.BodyLimit(middleware.MaxContactSize)}, h.contactGuards...)
	r.POST("/contact", append(contactChain, h.SubmitContact)...)
}

// Root handles the service banner
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "Retreat Catalog",
		"version": Version,
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	counts := make(map[catalog.RetreatType]int, len(catalog.RetreatTypes()))
	for _, t := range catalog.RetreatTypes() {
		counts[t] = len(h.store.FilterByType(t))
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"packages": h.store.Len(),
		"version":  h.store.Version(),
		"types":    counts,
		"requests": h.metrics.Snapshot(),
	})
}

// NotFound handles unmatched routes
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
}
