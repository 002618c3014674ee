package orderful

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envConfig mirrors the ORDERFUL_* environment variables.
type envConfig struct {
	Stream      string        `envconfig:"STREAM"`
	APIKey      string        `envconfig:"API_KEY"`
	BaseURL     string        `envconfig:"BASE_URL"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT"`
}

// NewFromEnv constructs a Client from the environment:
//
//	ORDERFUL_STREAM        stream selector ("LIVE" or a test stream)
//	ORDERFUL_API_KEY       credential
//	ORDERFUL_BASE_URL      override the API endpoint (optional)
//	ORDERFUL_HTTP_TIMEOUT  e.g. "10s" (optional)
//
// Explicit options are applied after the environment-derived ones and win.
// Missing stream or key is not an error; the resulting client reports
// IsEnabled() == false.
func NewFromEnv(opts ...Option) (*Client, error) {
	var cfg envConfig
	if err := envconfig.Process("orderful", &cfg); err != nil {
		return nil, err
	}
	var envOpts []Option
	if cfg.BaseURL != "" {
		envOpts = append(envOpts, WithBaseURL(cfg.BaseURL))
	}
	if cfg.HTTPTimeout > 0 {
		envOpts = append(envOpts, WithHTTPTimeout(cfg.HTTPTimeout))
	}
	return New(cfg.Stream, cfg.APIKey, append(envOpts, opts...)...), nil
}
