package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFallsBackToDefaultJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultJWTSecret, cfg.JWTSecret)
}

func TestLoadUsesJWTSecretFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "not-the-dev-default")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "not-the-dev-default", cfg.JWTSecret)
}
