package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("POSTGRES_URL", "postgres://localhost/test")
	t.Setenv("ALLOWED_ORIGINS", "http://a.example, http://b.example ,")
	t.Setenv("ENV", "production")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres://localhost/test", cfg.PostgresURL)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.AllowedOrigins)
	assert.False(t, cfg.Development())
}

func TestDevelopment(t *testing.T) {
	assert.True(t, Config{Env: "development"}.Development())
	assert.True(t, Config{Env: ""}.Development())
	assert.False(t, Config{Env: "release"}.Development())
	assert.False(t, Config{Env: "production"}.Development())
}
