package config

import "context"

type contextKey struct{}

// NewContext returns a context carrying the resolved configuration
func NewContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, contextKey{}, cfg)
}

// FromContext returns the configuration carried by the context, or nil
// when none was attached
func FromContext(ctx context.Context) *Config {
	cfg, _ := ctx.Value(contextKey{}).(*Config)
	return cfg
}
