package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 60*time.Second, cfg.Feed.CacheTTL)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessTTL())
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 10, cfg.Worker.Concurrency)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("FEED_CACHE_TTL", "0s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("DB_PORT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Zero(t, cfg.Feed.CacheTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 5432, cfg.Database.Port)
}

func TestLoad_InvalidFeedTTL(t *testing.T) {
	t.Setenv("FEED_CACHE_TTL", "soon")

	_, err := Load()
	assert.ErrorContains(t, err, "FEED_CACHE_TTL")
}

func TestValidate_Production(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_PASSWORD", "secret")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET")

	t.Setenv("JWT_SECRET", "a-real-secret")
	_, err = Load()
	assert.NoError(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{User: "u", Password: "p", Host: "db", Port: 5432, Database: "blogicum", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@db:5432/blogicum?sslmode=disable", d.DSN())
}
