package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// secret long enough to satisfy the min=32 validation rule
const testJWTSecret = "0123456789abcdef0123456789abcdef"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("READARABIC_DATABASE_URL", "postgres://localhost:5432/readarabic")
	t.Setenv("READARABIC_AUTH_JWT_SECRET", testJWTSecret)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 60, cfg.Auth.TokenLifetimeMinutes)
	assert.Equal(t, 5, cfg.Vocabulary.FreeTierLimit)
	assert.Equal(t, 5, cfg.Dictionary.TimeoutSeconds)
	assert.Equal(t, "https://files.turath.io/books-v3-unobfus", cfg.Content.BaseURL)
	assert.Equal(t, []int64{10}, cfg.Content.CatalogBookIDs)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("READARABIC_DATABASE_URL", "postgres://localhost:5432/readarabic")
	t.Setenv("READARABIC_AUTH_JWT_SECRET", testJWTSecret)
	t.Setenv("READARABIC_SERVER_PORT", "9090")
	t.Setenv("READARABIC_SERVER_LOG_LEVEL", "debug")
	t.Setenv("READARABIC_VOCABULARY_FREE_TIER_LIMIT", "10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 10, cfg.Vocabulary.FreeTierLimit)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing database url",
			env: map[string]string{
				"READARABIC_AUTH_JWT_SECRET": testJWTSecret,
			},
		},
		{
			name: "short jwt secret",
			env: map[string]string{
				"READARABIC_DATABASE_URL":    "postgres://localhost:5432/readarabic",
				"READARABIC_AUTH_JWT_SECRET": "too-short",
			},
		},
		{
			name: "invalid log level",
			env: map[string]string{
				"READARABIC_DATABASE_URL":     "postgres://localhost:5432/readarabic",
				"READARABIC_AUTH_JWT_SECRET":  testJWTSecret,
				"READARABIC_SERVER_LOG_LEVEL": "verbose",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
