package remoteauth

import (
	"github.com/dmitrymomot/remoteauth/pkg/config"
)

// NewFromEnv builds a provider from environment variables (and a .env file
// when present), using the same field layout as New. Options apply on top of
// the loaded configuration.
func NewFromEnv(opts ...Option) (*Provider, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return New(cfg, opts...)
}
