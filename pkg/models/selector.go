package models

import (
	"context"

	"github.com/liftoff-labs/liftoff/pkg/config"
)

// Select returns exactly one ready backend for the supplied credentials.
// The priority is a cost/quality preference, not a reachability probe:
//
//  1. API key present       -> direct API backend
//  2. hosted token present  -> managed backend (local-first, hosted fallback)
//  3. neither               -> ConfigurationError
//
// A failure of the chosen backend never triggers selection of the other.
func Select(ctx context.Context, cfg config.Config) (Backend, error) {
	if cfg.APIKey != "" {
		return NewDirectBackend(cfg)
	}
	if cfg.HFToken != "" {
		return NewManagedBackend(ctx, cfg)
	}
	return nil, &ConfigurationError{}
}
