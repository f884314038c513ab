// Package cmdutil holds helpers shared by the CLI verb packages.
package cmdutil

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aryankumar/panosctl/internal/config"
	"github.com/aryankumar/panosctl/internal/output"
	"github.com/aryankumar/panosctl/internal/panos"
	"github.com/aryankumar/panosctl/internal/util"
)

// ActiveConfig returns the resolved configuration attached by the root
// command, validated for remote operations
func ActiveConfig(ctx context.Context) (*config.Config, error) {
	cfg := config.FromContext(ctx)
	if cfg == nil {
		return nil, fmt.Errorf("configuration not initialized")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Connect resolves configuration and opens an authenticated client
func Connect(ctx context.Context) (*panos.Client, *config.Config, error) {
	cfg, err := ActiveConfig(ctx)
	if err != nil {
		return nil, nil, err
	}

	client, err := panos.Connect(ctx, cfg, slog.Default())
	if err != nil {
		return nil, nil, util.WrapErrorf(err, "failed to connect to %s", cfg.Hostname)
	}
	return client, cfg, nil
}

// Formatter builds an output formatter from the resolved configuration
func Formatter(cfg *config.Config, opts ...output.Option) output.Formatter {
	opts = append([]output.Option{output.WithNoColor(cfg.NoColor)}, opts...)
	return output.NewFormatter(output.Format(cfg.Output), opts...)
}
