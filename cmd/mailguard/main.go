// Mailguard server masks PII out of support emails, classifies the masked
// text via the NLP sidecar, and serves the result over HTTP.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/codeready-toolchain/mailguard/pkg/api"
	"github.com/codeready-toolchain/mailguard/pkg/config"
	"github.com/codeready-toolchain/mailguard/pkg/database"
	"github.com/codeready-toolchain/mailguard/pkg/masking"
	"github.com/codeready-toolchain/mailguard/pkg/nlp"
	"github.com/codeready-toolchain/mailguard/pkg/services"
	"github.com/codeready-toolchain/mailguard/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// Parse command-line flags
	envFile := flag.String("env-file",
		getEnv("ENV_FILE", ".env"),
		"Path to .env file")
	flag.Parse()

	// Load .env file if present
	if err := godotenv.Load(*envFile); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", *envFile, "error", err)
	} else {
		slog.Info("Loaded environment", "path", *envFile)
	}

	ctx := context.Background()

	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting mailguard",
		"version", version.Full(),
		"http_port", cfg.HTTPPort,
		"nlp_service_addr", cfg.NLPServiceAddr,
		"audit_enabled", cfg.AuditEnabled)

	// 2. Compile the masking rule table. Any invalid pattern aborts startup:
	// a partially loaded rule set would silently leak PII.
	registry, err := masking.NewPatternRegistry(config.BuiltinRules())
	if err != nil {
		slog.Error("Failed to compile masking rules", "error", err)
		os.Exit(1)
	}

	// 3. Create NLP client (recognizer + classifier)
	// Note: grpc.NewClient uses lazy dialing; actual connection happens on first RPC call
	nlpClient, err := nlp.NewClient(cfg.NLPServiceAddr, cfg.NLPTimeout)
	if err != nil {
		slog.Error("Failed to initialize NLP client", "addr", cfg.NLPServiceAddr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := nlpClient.Close(); err != nil {
			slog.Error("Error closing NLP client", "error", err)
		}
	}()
	slog.Info("NLP client initialized", "addr", cfg.NLPServiceAddr)

	// 4. Initialize audit store (optional)
	var dbClient *database.Client
	var auditStore *database.AuditStore
	if cfg.AuditEnabled {
		dbConfig, err := database.LoadConfigFromEnv()
		if err != nil {
			slog.Error("Failed to load database config", "error", err)
			os.Exit(1)
		}
		dbClient, err = database.NewClient(ctx, dbConfig)
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := dbClient.Close(); err != nil {
				slog.Error("Error closing database client", "error", err)
			}
		}()
		auditStore = database.NewAuditStore(dbClient)
		slog.Info("Connected to PostgreSQL database, audit trail enabled")
	}

	// 5. Initialize domain services
	maskingService := masking.NewService(nlpClient, registry)
	classificationService := services.NewClassificationService(maskingService, nlpClient, auditStore)
	slog.Info("Services initialized")

	// 6. Create HTTP server
	httpServer := api.NewServer(cfg.HTTPPort, classificationService, dbClient)

	// 7. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Mailguard started successfully")

	// 8. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 9. Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.GracefulShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
