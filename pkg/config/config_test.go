package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "7860", cfg.HTTPPort)
	assert.Equal(t, "localhost:50051", cfg.NLPServiceAddr)
	assert.Equal(t, 10*time.Second, cfg.NLPTimeout)
	assert.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
	assert.False(t, cfg.AuditEnabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("NLP_SERVICE_ADDR", "nlp:50051")
	t.Setenv("NLP_TIMEOUT", "2s")
	t.Setenv("AUDIT_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.HTTPPort)
	assert.Equal(t, "nlp:50051", cfg.NLPServiceAddr)
	assert.Equal(t, 2*time.Second, cfg.NLPTimeout)
	assert.True(t, cfg.AuditEnabled)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("NLP_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestLoad_InvalidBool(t *testing.T) {
	t.Setenv("AUDIT_ENABLED", "maybe")

	_, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestBuiltinRules_ReturnsCopy(t *testing.T) {
	rules := BuiltinRules()
	require.NotEmpty(t, rules)

	rules[0].Pattern = "mutated"
	assert.NotEqual(t, "mutated", BuiltinRules()[0].Pattern)
}
