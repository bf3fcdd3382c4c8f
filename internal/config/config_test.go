package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/distinct/internal/palette"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, palette.DefaultConfig(), cfg.PaletteConfig())
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	cfg, err := LoadFrom(envMap(map[string]string{
		"DISTINCT_POOL_SIZE":       "2500",
		"DISTINCT_MIN_DELTA":       "0.15",
		"DISTINCT_ADDR":            "0.0.0.0:9000",
		"DISTINCT_READ_TIMEOUT":    "3s",
		"DISTINCT_RATE_LIMIT":      "0",
		"DISTINCT_ALLOWED_ORIGINS": "https://a.example, https://b.example,",
		"DISTINCT_LOG_LEVEL":       "debug",
		"DISTINCT_LOG_JSON":        "true",
		"DISTINCT_MAX_LIGHTNESS":   "   ",
	}))
	require.NoError(t, err)

	assert.Equal(t, 2500, cfg.Generator.PoolSize)
	assert.InDelta(t, 0.15, cfg.Generator.MinDelta, 1e-12)
	assert.InDelta(t, palette.DefaultMaxLightness, cfg.Generator.MaxLightness, 1e-12)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Addr)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Zero(t, cfg.Server.RateLimit)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.True(t, cfg.Logger.JSON)
	require.NoError(t, cfg.Validate())
}

func TestLoadFrom_ParseErrors(t *testing.T) {
	tests := map[string]string{
		"DISTINCT_POOL_SIZE":    "lots",
		"DISTINCT_MIN_DELTA":    "wide",
		"DISTINCT_READ_TIMEOUT": "soon",
		"DISTINCT_LOG_JSON":     "perhaps",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			_, err := LoadFrom(envMap(map[string]string{key: value}))
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{name: "zero pool", modify: func(c *Config) { c.Generator.PoolSize = 0 }},
		{name: "inverted lightness", modify: func(c *Config) { c.Generator.MinLightness, c.Generator.MaxLightness = 0.7, 0.4 }},
		{name: "bad addr", modify: func(c *Config) { c.Server.Addr = "not an address" }},
		{name: "zero burst", modify: func(c *Config) { c.Server.RateBurst = 0 }},
		{name: "negative rate", modify: func(c *Config) { c.Server.RateLimit = -1 }},
		{name: "bad level", modify: func(c *Config) { c.Logger.Level = "chatty" }},
		{name: "empty origin", modify: func(c *Config) { c.Server.AllowedOrigins = []string{""} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestBindFlags(t *testing.T) {
	cfg := Default()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.BindGeneratorFlags(fs)
	cfg.BindServerFlags(fs)

	require.NoError(t, fs.Parse([]string{"--pool-size", "300", "--addr", "127.0.0.1:7000", "--allowed-origins", "https://x.example"}))
	assert.Equal(t, 300, cfg.Generator.PoolSize)
	assert.Equal(t, "127.0.0.1:7000", cfg.Server.Addr)
	assert.Equal(t, []string{"https://x.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, palette.DefaultMinLightness, cfg.Generator.MinLightness)
}
