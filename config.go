package foodhabits

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// Config holds environment-driven settings. Variables are prefixed
// FOODHABITS, e.g. FOODHABITS_API_URL.
type Config struct {
	APIURL      string        `envconfig:"API_URL" default:"http://localhost:5000"`
	DataDir     string        `envconfig:"DATA_DIR"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	LogLevel    string        `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadConfig reads the FOODHABITS_* environment variables.
func LoadConfig() (Config, error) {
	var c Config
	if err := envconfig.Process("FOODHABITS", &c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// NewFromEnv builds a Client from the environment. Explicit options are
// applied after the environment-derived ones and win on conflict.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	base := []Option{WithHTTPTimeout(cfg.HTTPTimeout)}
	if cfg.DataDir != "" {
		base = append(base, WithDataDir(cfg.DataDir))
	}
	return New(cfg.APIURL, append(base, opts...)...)
}
