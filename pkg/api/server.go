// Package api exposes the email classification service over HTTP.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/mailguard/pkg/database"
	"github.com/codeready-toolchain/mailguard/pkg/services"
)

// Server is the HTTP front for the classification pipeline.
type Server struct {
	classification *services.ClassificationService
	dbClient       *database.Client // optional, nil when auditing is disabled
	httpServer     *http.Server
}

// NewServer creates the API server and wires up its routes.
// dbClient may be nil; the health endpoint then skips the database check.
func NewServer(port string, classification *services.ClassificationService, dbClient *database.Client) *Server {
	if classification == nil {
		panic("NewServer: classification service must not be nil")
	}

	s := &Server{
		classification: classification,
		dbClient:       dbClient,
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger())
	router.Use(securityHeaders())

	router.POST("/classify_email", s.classifyEmailHandler)
	router.GET("/health", s.healthHandler)

	s.httpServer = &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Handler returns the underlying HTTP handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start runs the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	slog.Info("HTTP server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the HTTP server, waiting for in-flight
// requests up to the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
