package cli

import (
	"github.com/caarlos0/env/v11"
)

// Config holds the LIFEBEYOND_* environment defaults for the CLI flags.
//
// These values are read once at startup so visitor-side defaults (a kiosk
// terminal without color, a shared wings directory) can be set without
// repeating flags on every invocation. Flags always win over the environment.
type Config struct {
	WingsDir string `env:"LIFEBEYOND_WINGS_DIR"`
	Format   string `env:"LIFEBEYOND_FORMAT" envDefault:"json"`
	Debug    bool   `env:"LIFEBEYOND_DEBUG"`
	NoColor  bool   `env:"LIFEBEYOND_NO_COLOR"`
}

// LoadConfig loads CLI configuration from the environment and applies
// defensive defaults. Malformed values fall back to the zero default rather
// than aborting startup.
func LoadConfig() Config {
	var cfg Config
	_ = env.Parse(&cfg)
	if cfg.Format == "" {
		cfg.Format = "json"
	}
	return cfg
}
