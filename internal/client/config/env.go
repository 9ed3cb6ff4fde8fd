package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// parseEnv overlays cfg with variables found through l. Unset variables
// leave the current values alone.
func parseEnv(cfg *Config, l envconfig.Lookuper) error {
	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   cfg,
		Lookuper: l,
	}); err != nil {
		return fmt.Errorf("config: failed to load environment: %w", err)
	}
	return nil
}
