// Package config holds service settings loaded from the environment and the
// built-in masking rule table.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds process-wide settings. Loaded once at startup, read-only after.
type Config struct {
	// HTTPPort is the port the API server listens on.
	HTTPPort string

	// NLPServiceAddr is the gRPC address of the Python NLP service
	// (named-entity recognizer + text classifier).
	NLPServiceAddr string

	// NLPTimeout bounds each NLP service call.
	NLPTimeout time.Duration

	// AuditEnabled turns on the Postgres audit trail of classification
	// requests. Requires DB_* settings when true.
	AuditEnabled bool

	// GracefulShutdownTimeout bounds server drain on shutdown.
	GracefulShutdownTimeout time.Duration
}

// Load reads settings from the environment, applying defaults.
func Load() (*Config, error) {
	nlpTimeout, err := parseDurationEnv("NLP_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := parseDurationEnv("GRACEFUL_SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	auditEnabled, err := parseBoolEnv("AUDIT_ENABLED", false)
	if err != nil {
		return nil, err
	}

	return &Config{
		HTTPPort:                getEnvOrDefault("HTTP_PORT", "7860"),
		NLPServiceAddr:          getEnvOrDefault("NLP_SERVICE_ADDR", "localhost:50051"),
		NLPTimeout:              nlpTimeout,
		AuditEnabled:            auditEnabled,
		GracefulShutdownTimeout: shutdownTimeout,
	}, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseDurationEnv(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %v", ErrInvalidValue, key, val, err)
	}
	return d, nil
}

func parseBoolEnv(key string, defaultVal bool) (bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q: %v", ErrInvalidValue, key, val, err)
	}
	return b, nil
}
