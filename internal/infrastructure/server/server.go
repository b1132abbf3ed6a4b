package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	api "github.com/GriffinCanCode/RetreatCatalog/backend/internal/api/http"
	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/api/middleware"
	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/domain/catalog"
	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/domain/catalog/loader"
	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/domain/contact"
	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/infrastructure/config"
	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/infrastructure/tracing"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router  *gin.Engine
	store   *catalog.Store
	tracer  *tracing.Tracer
	logger  *logging.Logger
	config  *config.Config
	metrics *monitoring.Metrics
}

// NewServer loads the catalog and assembles the router. A nil logger is
// built from cfg.Logging.
func NewServer(ctx context.Context, cfg *config.Config, logger *logging.Logger) (*Server, error) {
	if logger == nil {
		var err error
		logger, err = NewLogger(cfg.Logging)
		if err != nil {
			return nil, err
		}
	}

	logger.Info("Initializing Retreat Catalog server",
		zap.String("addr", cfg.Server.Addr()),
		zap.String("catalog_glob", cfg.Catalog.Glob),
	)

	res, err := loader.Load(ctx, loader.Options{
		Glob:       cfg.Catalog.Glob,
		ImageHosts: cfg.Catalog.ImageHosts,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	logger.Info("Catalog loaded",
		zap.Int("packages", res.Store.Len()),
		zap.Strings("files", res.Files),
	)

	metrics := monitoring.NewMetrics()
	metrics.SetCatalogPackages(countByType(res.Store))

	tracer := tracing.New("retreat-catalog", logger.Logger)

	contactSvc := contact.NewService(newForwarder(cfg.Contact, logger, metrics), logger)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(tracing.HTTPMiddleware(tracer))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.RequestLogger(logger, "/health", "/metrics"))

	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.Server.AllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.Server.AllowOrigins
	}
	router.Use(middleware.CORS(corsCfg))

	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		rl := middleware.DefaultRateLimitConfig()
		rl.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
		rl.Burst = cfg.RateLimit.Burst
		router.Use(middleware.RateLimit(rl))
	}
	if cfg.Compression.Enabled {
		router.Use(middleware.Gzip(middleware.DefaultGzipConfig()))
	}

	handlers := api.NewHandlers(res.Store, contactSvc, metrics, logger)
	if cfg.Contact.RateLimitRPS > 0 {
		handlers.GuardContact(middleware.GlobalRateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.Contact.RateLimitRPS,
			Burst:             max(cfg.Contact.RateLimitBurst, 1),
		}))
	}
	handlers.Register(router)
	router.GET("/metrics", metrics.GinHandler())
	router.NoRoute(api.NotFound)

	logger.Info("Server initialized successfully")

	return &Server{
		router:  router,
		store:   res.Store,
		tracer:  tracer,
		logger:  logger,
		config:  cfg,
		metrics: metrics,
	}, nil
}

// NewLogger builds the process logger from logging configuration
func NewLogger(cfg config.LogConfig) (*logging.Logger, error) {
	lc := logging.DefaultConfig()
	if cfg.Development {
		lc = logging.DevelopmentConfig()
	}
	if cfg.Level != "" {
		lc.Level = cfg.Level
	}
	logger, err := logging.New(lc)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

func newForwarder(cfg config.ContactConfig, logger *logging.Logger, metrics *monitoring.Metrics) contact.Forwarder {
	if cfg.WebhookURL == "" {
		logger.Info("No contact webhook configured, enquiries will be logged")
		return contact.NewLogForwarder(logger)
	}

	wc := contact.DefaultWebhookConfig(cfg.WebhookURL)
	if cfg.Timeout > 0 {
		wc.Timeout = cfg.Timeout
	}
	if cfg.Retries >= 0 {
		wc.Retries = cfg.Retries
	}
	logger.Info("Contact webhook configured", zap.Duration("timeout", wc.Timeout), zap.Int("retries", wc.Retries))
	return contact.NewWebhookForwarder(wc, logger, metrics)
}

func countByType(store *catalog.Store) map[string]int {
	counts := make(map[string]int, len(catalog.RetreatTypes()))
	for _, t := range catalog.RetreatTypes() {
		counts[t.String()] = len(store.FilterByType(t))
	}
	return counts
}

// Handler exposes the assembled router
func (s *Server) Handler() http.Handler {
	return s.router
}

// Store returns the loaded catalog
func (s *Server) Store() *catalog.Store {
	return s.store
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Server.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.Server.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", zap.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close releases background resources
func (s *Server) Close() error {
	s.tracer.Close()
	_ = s.logger.Sync()
	return nil
}
