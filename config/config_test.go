package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnv_Defaults(t *testing.T) {
	cfg := LoadEnv()

	assert.Equal(t, "pgx", cfg.Database.Driver)
	assert.Equal(t, ":8080", cfg.Server.HTTPPort)
	assert.Equal(t, "", cfg.Redis.Addr)
	assert.Equal(t, 3*time.Second, cfg.Synonym.Timeout)
	assert.Equal(t, 24*time.Hour, cfg.Synonym.CacheTTL)
	assert.Equal(t, "https://pubchem.ncbi.nlm.nih.gov", cfg.Synonym.BaseURL)
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_APPLY_SCHEMA", "true")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("SYNONYM_TIMEOUT", "750ms")
	t.Setenv("SYNONYM_RATE_LIMIT", "2.5")

	cfg := LoadEnv()
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.True(t, cfg.Database.ApplySchema)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 750*time.Millisecond, cfg.Synonym.Timeout)
	assert.Equal(t, 2.5, cfg.Synonym.RateLimit)
}

func TestLoadEnv_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("POSTGRES_MAX_OPEN_CONNS", "many")
	t.Setenv("SYNONYM_TIMEOUT", "soon")
	t.Setenv("LOGGER_DISABLE_STACKTRACE", "maybe")

	cfg := LoadEnv()
	assert.Equal(t, 10, cfg.Postgres.MaxOpenConns)
	assert.Equal(t, 3*time.Second, cfg.Synonym.Timeout)
	assert.True(t, cfg.Logger.DisableStacktrace)
}
