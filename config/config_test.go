package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{"POSTGRES_URL": "postgres://u:p@localhost/po"}))
	require.NoError(t, err)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, int64(10), cfg.MaxUploadMB)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 30*time.Second, cfg.ChromePDFTimeout)
	assert.False(t, cfg.Production())
	assert.False(t, cfg.R2.Enabled())
}

func TestFromEnvBuildsURL(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		"DB_HOST":     "db",
		"DB_NAME":     "po",
		"DB_USER":     "admin",
		"DB_PASSWORD": "p@ss",
		"APP_ENV":     "production",
		"LOG_LEVEL":   "debug",
	}))
	require.NoError(t, err)
	assert.Equal(t, "postgres://admin:p%40ss@db:5432/po?sslmode=disable", cfg.PostgresURL)
	assert.True(t, cfg.Production())
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestFromEnvRejects(t *testing.T) {
	_, err := FromEnv(env(map[string]string{}))
	assert.Error(t, err)

	_, err = FromEnv(env(map[string]string{"POSTGRES_URL": "x", "MAX_UPLOAD_MB": "-1"}))
	assert.EqualError(t, err, "MAX_UPLOAD_MB must be a positive integer")

	_, err = FromEnv(env(map[string]string{"POSTGRES_URL": "x", "CHROME_PDF_TIMEOUT": "soon"}))
	assert.Error(t, err)
}

func TestCORSOrigins(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{"POSTGRES_URL": "x", "CORS_ALLOWED_ORIGINS": "https://a.example, https://b.example,"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}
