package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envVars = []string{
	"LOG_LEVEL", "HTTP_ADDR", "AMQP_URL",
	"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "RUN_MIGRATIONS",
	"REDIS_URL", "THREAD_DEATH_TIMEOUT", "APP_HEADER",
	"GEOCODER_URL", "GEOCODER_DIRECTORY_FILE", "GEOCODER_CACHE_TTL",
	"GEOCODER_MAX_ATTEMPTS", "GEOCODER_ATTEMPT_TIMEOUT",
	"WORKER_COUNT", "WORKER_QUEUE_SIZE",
}

// clearEnv blanks every variable Load reads for the duration of the test.
func clearEnv(t *testing.T) {
	for _, v := range envVars {
		t.Setenv(v, "")
	}
}

func TestLoad_DefaultValues(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.False(t, cfg.RunMigrations)
	assert.Equal(t, "", cfg.RedisURL)
	assert.Equal(t, 7*24*time.Hour, cfg.ThreadDeathTimeout)
	assert.Equal(t, "X-Reuse-App", cfg.AppHeader)
	assert.Equal(t, 24*time.Hour, cfg.GeocoderCacheTTL)
	assert.Equal(t, 3, cfg.GeocoderMaxAttempts)
	assert.Equal(t, 2*time.Second, cfg.GeocoderAttemptTimeout)
	assert.Equal(t, 4, cfg.WorkerCount)
	assert.Equal(t, 16, cfg.WorkerQueueSize)
}

func TestLoad_CustomValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("THREAD_DEATH_TIMEOUT", "72h")
	t.Setenv("APP_HEADER", "X-Free-Stuff")
	t.Setenv("RUN_MIGRATIONS", "true")
	t.Setenv("WORKER_COUNT", "8")
	t.Setenv("GEOCODER_DIRECTORY_FILE", "config/buildings.yaml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 72*time.Hour, cfg.ThreadDeathTimeout)
	assert.Equal(t, "X-Free-Stuff", cfg.AppHeader)
	assert.True(t, cfg.RunMigrations)
	assert.Equal(t, 8, cfg.WorkerCount)
	assert.Equal(t, "config/buildings.yaml", cfg.GeocoderDirectoryFile)
}

func TestLoad_UnparsableValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("THREAD_DEATH_TIMEOUT", "a week")
	t.Setenv("WORKER_COUNT", "many")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7*24*time.Hour, cfg.ThreadDeathTimeout)
	assert.Equal(t, 4, cfg.WorkerCount)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := map[string]string{
		"LOG_LEVEL":             "loud",
		"THREAD_DEATH_TIMEOUT":  "-1h",
		"WORKER_COUNT":          "0",
		"WORKER_QUEUE_SIZE":     "-1",
		"GEOCODER_MAX_ATTEMPTS": "0",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)

			_, err := Load()

			assert.ErrorContains(t, err, key)
		})
	}
}
