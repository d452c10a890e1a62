package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"mosaic/internal/config"
	"mosaic/internal/logging"
	"mosaic/internal/observability"
)

// Server is the HTTP front end for the assessment service.
type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
	logger     logging.Logger
}

// NewServer builds the router and binds it to an http.Server. The
// structured logger, metrics collector, and tracer provider may each be
// nil, which disables that signal.
func NewServer(cfg config.ServerConfig, handler *APIHandler, obsLogger *observability.Logger, metrics *observability.MetricsCollector, tracer *observability.TracerProvider) *Server {
	logger := logging.FromObservabilityWithComponent(obsLogger, "HTTP")

	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestIDMiddleware())
	engine.Use(ObservabilityMiddleware(obsLogger, metrics, tracer))

	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 0 || (len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", requestIDHeader}
	engine.Use(cors.New(corsConfig))

	registerRoutes(engine, handler)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	}

	return &Server{
		engine:     engine,
		httpServer: httpServer,
		logger:     logger,
	}
}

func registerRoutes(engine *gin.Engine, handler *APIHandler) {
	engine.GET("/healthz", handler.Health)

	api := engine.Group("/api/v1")
	{
		api.GET("/questions", handler.ListQuestions)
		api.GET("/pricing/:category", handler.GetPricing)

		assessments := api.Group("/assessments")
		{
			assessments.POST("", handler.CreateAssessment)
			assessments.GET("", handler.ListAssessments)
			assessments.GET("/:id", handler.GetAssessment)
		}

		api.POST("/checkout", handler.Checkout)
	}
}

// Start begins serving and blocks until the listener closes.
func (s *Server) Start() error {
	s.logger.Info("http server listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server shutting down")
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}
