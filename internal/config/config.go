// Package config provides application configuration with defaults,
// DISTINCT_* environment overrides, command-line flag binding and validation.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/distinct/internal/palette"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "DISTINCT_"

// Config holds the application configuration.
type Config struct {
	Generator GeneratorConfig
	Server    ServerConfig
	Logger    LoggerConfig
}

// GeneratorConfig holds palette generation settings.
type GeneratorConfig struct {
	PoolSize      int     `validate:"min=1,max=1000000"`
	MinDelta      float64 `validate:"gte=0,lte=1"`
	MinLightness  float64 `validate:"gte=0,lt=1"`
	MaxLightness  float64 `validate:"gt=0,lte=1,gtfield=MinLightness"`
	AttemptFactor int     `validate:"min=1"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string        `validate:"required,hostname_port"`
	ReadTimeout     time.Duration `validate:"gt=0"`
	WriteTimeout    time.Duration `validate:"gt=0"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
	RateLimit       float64       `validate:"gte=0"` // requests per second per client, 0 disables
	RateBurst       int           `validate:"min=1"`
	AllowedOrigins  []string      `validate:"dive,required"`
}

// LoggerConfig holds logging settings.
type LoggerConfig struct {
	Level string `validate:"omitempty,oneof=trace debug info warn error off"`
	JSON  bool
}

// Default returns the default configuration.
func Default() Config {
	gen := palette.DefaultConfig()
	return Config{
		Generator: GeneratorConfig{
			PoolSize:      gen.PoolSize,
			MinDelta:      gen.MinDelta,
			MinLightness:  gen.MinLightness,
			MaxLightness:  gen.MaxLightness,
			AttemptFactor: gen.AttemptFactor,
		},
		Server: ServerConfig{
			Addr:            "localhost:8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RateLimit:       5,
			RateBurst:       10,
			AllowedOrigins:  []string{"*"},
		},
		Logger: LoggerConfig{
			Level: "info",
		},
	}
}

// Load returns the defaults overridden by DISTINCT_* environment variables.
func Load() (Config, error) {
	return LoadFrom(os.LookupEnv)
}

// LoadFrom is Load with an injectable environment lookup.
func LoadFrom(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	env := envReader{lookup: lookup}

	env.setInt("POOL_SIZE", &cfg.Generator.PoolSize)
	env.setFloat("MIN_DELTA", &cfg.Generator.MinDelta)
	env.setFloat("MIN_LIGHTNESS", &cfg.Generator.MinLightness)
	env.setFloat("MAX_LIGHTNESS", &cfg.Generator.MaxLightness)
	env.setInt("ATTEMPT_FACTOR", &cfg.Generator.AttemptFactor)

	env.setString("ADDR", &cfg.Server.Addr)
	env.setDuration("READ_TIMEOUT", &cfg.Server.ReadTimeout)
	env.setDuration("WRITE_TIMEOUT", &cfg.Server.WriteTimeout)
	env.setDuration("SHUTDOWN_TIMEOUT", &cfg.Server.ShutdownTimeout)
	env.setFloat("RATE_LIMIT", &cfg.Server.RateLimit)
	env.setInt("RATE_BURST", &cfg.Server.RateBurst)
	env.setList("ALLOWED_ORIGINS", &cfg.Server.AllowedOrigins)

	env.setString("LOG_LEVEL", &cfg.Logger.Level)
	env.setBool("LOG_JSON", &cfg.Logger.JSON)

	if env.err != nil {
		return Config{}, env.err
	}
	return cfg, nil
}

// BindGeneratorFlags registers generator flags on fs with cfg's current values
// as defaults.
func (c *Config) BindGeneratorFlags(fs *pflag.FlagSet) {
	fs.IntVar(&c.Generator.PoolSize, "pool-size", c.Generator.PoolSize, "number of candidate colours to sample")
	fs.Float64Var(&c.Generator.MinDelta, "min-delta", c.Generator.MinDelta, "minimum Oklab separation between palette colours")
	fs.Float64Var(&c.Generator.MinLightness, "min-lightness", c.Generator.MinLightness, "exclusive lower bound on candidate lightness")
	fs.Float64Var(&c.Generator.MaxLightness, "max-lightness", c.Generator.MaxLightness, "exclusive upper bound on candidate lightness")
}

// BindServerFlags registers HTTP server flags on fs.
func (c *Config) BindServerFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Server.Addr, "addr", c.Server.Addr, "listen address")
	fs.Float64Var(&c.Server.RateLimit, "rate-limit", c.Server.RateLimit, "requests per second per client (0 disables)")
	fs.IntVar(&c.Server.RateBurst, "rate-burst", c.Server.RateBurst, "rate limiter burst size")
	fs.StringSliceVar(&c.Server.AllowedOrigins, "allowed-origins", c.Server.AllowedOrigins, "CORS allowed origins")
	fs.BoolVar(&c.Logger.JSON, "log-json", c.Logger.JSON, "emit JSON logs")
}

// Validate checks every field constraint.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// PaletteConfig converts the generator settings for the palette package.
func (c Config) PaletteConfig() palette.Config {
	return palette.Config{
		PoolSize:      c.Generator.PoolSize,
		MinDelta:      c.Generator.MinDelta,
		MinLightness:  c.Generator.MinLightness,
		MaxLightness:  c.Generator.MaxLightness,
		AttemptFactor: c.Generator.AttemptFactor,
	}
}

// envReader reads typed DISTINCT_* variables, keeping the first parse error.
type envReader struct {
	lookup func(string) (string, bool)
	err    error
}

func (e *envReader) get(key string) (string, bool) {
	v, ok := e.lookup(EnvPrefix + key)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}

func (e *envReader) fail(key, value string, err error) {
	if e.err == nil {
		e.err = fmt.Errorf("invalid %s%s=%q: %w", EnvPrefix, key, value, err)
	}
}

func (e *envReader) setString(key string, dst *string) {
	if v, ok := e.get(key); ok {
		*dst = v
	}
}

func (e *envReader) setInt(key string, dst *int) {
	if v, ok := e.get(key); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			e.fail(key, v, err)
			return
		}
		*dst = n
	}
}

func (e *envReader) setFloat(key string, dst *float64) {
	if v, ok := e.get(key); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			e.fail(key, v, err)
			return
		}
		*dst = f
	}
}

func (e *envReader) setBool(key string, dst *bool) {
	if v, ok := e.get(key); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			e.fail(key, v, err)
			return
		}
		*dst = b
	}
}

func (e *envReader) setDuration(key string, dst *time.Duration) {
	if v, ok := e.get(key); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			e.fail(key, v, err)
			return
		}
		*dst = d
	}
}

func (e *envReader) setList(key string, dst *[]string) {
	if v, ok := e.get(key); ok {
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		*dst = out
	}
}
