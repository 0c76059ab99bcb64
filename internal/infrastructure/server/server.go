package server

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/econcalc/internal/api/http"
	"github.com/GriffinCanCode/econcalc/internal/api/middleware"
	"github.com/GriffinCanCode/econcalc/internal/domain/service"
	"github.com/GriffinCanCode/econcalc/internal/infrastructure/config"
	"github.com/GriffinCanCode/econcalc/internal/infrastructure/logging"
	"github.com/GriffinCanCode/econcalc/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/econcalc/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/econcalc/internal/providers/finance"
)

const readHeaderTimeout = 10 * time.Second

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	handler  nethttp.Handler
	http     *nethttp.Server
	registry *service.Registry
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
	tracer   *tracing.Tracer
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	logger.Info("Initializing calculator server",
		zap.String("addr", cfg.Addr()),
		zap.Bool("rate_limit", cfg.RateLimit.Enabled),
		zap.Bool("rate_limit_global", cfg.RateLimit.Global),
		zap.Bool("compression", cfg.Compression.Enabled),
	)

	metrics := monitoring.NewMetrics()
	tracer := tracing.New("econcalc", logger.Logger)

	registry := service.NewRegistry().WithMetrics(metrics)
	if err := finance.RegisterAll(registry); err != nil {
		tracer.Close()
		return nil, fmt.Errorf("failed to register providers: %w", err)
	}

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(tracing.HTTPMiddleware(tracer))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.CORSConfigFor(cfg.CORS.AllowOrigins)))
	if cfg.RateLimit.Enabled {
		limits := middleware.DefaultRateLimitConfig()
		limits.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
		limits.Burst = cfg.RateLimit.Burst
		if cfg.RateLimit.Global {
			router.Use(middleware.GlobalRateLimit(limits))
		} else {
			router.Use(middleware.RateLimit(limits))
		}
	}

	handlers := http.NewHandlers(registry, metrics, logger)
	http.RegisterRoutes(router, handlers)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	var handler nethttp.Handler = router
	if cfg.Compression.Enabled {
		if handler, err = middleware.Compress(router); err != nil {
			tracer.Close()
			return nil, fmt.Errorf("failed to enable compression: %w", err)
		}
	}

	logger.Info("Server initialized", zap.Int("services", len(registry.List(nil))))

	return &Server{
		router:   router,
		handler:  handler,
		registry: registry,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
		tracer:   tracer,
		http: &nethttp.Server{
			Addr:              cfg.Addr(),
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}, nil
}

// Handler returns the fully wrapped HTTP handler
func (s *Server) Handler() nethttp.Handler {
	return s.handler
}

// Registry returns the service registry
func (s *Server) Registry() *service.Registry {
	return s.registry
}

// Run starts the HTTP server and blocks until it stops
func (s *Server) Run() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests then releases resources
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	err := s.http.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Graceful shutdown failed", zap.Error(err))
		err = fmt.Errorf("failed to shut down: %w", err)
	}
	s.tracer.Close()
	_ = s.logger.Sync()
	return err
}

// Close shuts down with a short grace period
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.Shutdown(ctx)
}

func newLogger(cfg *config.Config) (*logging.Logger, error) {
	logger, err := logging.New(logging.ForSettings(cfg.Logging.Level, cfg.Logging.Development))
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}
