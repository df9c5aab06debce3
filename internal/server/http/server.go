// Package http hosts the gin HTTP surface: the chat endpoint plus health
// and metrics.
package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"litecal/internal/chat"
	"litecal/internal/logging"
	"litecal/internal/observability"
)

// Version is reported by the health endpoint.
const Version = "0.1.0"

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Host         string
	Port         int
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server wires the router to an http.Server with graceful shutdown.
type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
	logger     logging.Logger
	startTime  time.Time
}

// NewServer builds the router and the underlying http.Server.
func NewServer(orchestrator *chat.Orchestrator, config ServerConfig) *Server {
	if !strings.EqualFold(config.Environment, "development") {
		gin.SetMode(gin.ReleaseMode)
	}
	if config.ReadTimeout <= 0 {
		config.ReadTimeout = 30 * time.Second
	}
	if config.WriteTimeout <= 0 {
		// The chat path blocks on the model round trip; leave headroom
		// above the client timeout.
		config.WriteTimeout = 2 * time.Minute
	}

	s := &Server{
		logger:    logging.NewComponentLogger("HTTPServer"),
		startTime: time.Now(),
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(LoggingMiddleware(s.logger))

	// The original deployment serves browser clients from any origin.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Requested-With"}
	engine.Use(cors.New(corsConfig))

	metrics := observability.NewMetrics()
	engine.Use(metrics.Middleware())

	chatHandler := NewChatHandler(orchestrator)
	engine.POST("/chat", JSONMiddleware(), chatHandler.HandleChat)
	engine.GET("/health", s.handleHealth)
	engine.GET("/metrics", metrics.Handler())

	s.engine = engine
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.Host, config.Port),
		Handler:      engine,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start blocks serving HTTP until Stop is called.
func (s *Server) Start() error {
	s.logger.Info("Server listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}
	return nil
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: Version,
		Uptime:  time.Since(s.startTime).String(),
	})
}
