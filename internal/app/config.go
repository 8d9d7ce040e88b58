package app

import (
	"errors"
	"fmt"
)

// Emit targets.
const (
	EmitDescriptor = "descriptor"
	EmitEsbuild    = "esbuild"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath string // hcl file or directory
	OutputDir  string // overrides output_dir from the configuration

	Format string // json | hcl, for EmitDescriptor
	Emit   string // descriptor | esbuild
	Watch  bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, errors.New("ConfigPath is a required configuration field and cannot be empty")
	}
	if cfg.Format == "" {
		cfg.Format = "json"
	}
	if cfg.Emit == "" {
		cfg.Emit = EmitDescriptor
	}
	switch cfg.Emit {
	case EmitDescriptor, EmitEsbuild:
	default:
		return nil, fmt.Errorf("unknown emit target %q: must be '%s' or '%s'", cfg.Emit, EmitDescriptor, EmitEsbuild)
	}
	switch cfg.Format {
	case "json", "hcl":
	default:
		return nil, fmt.Errorf("unknown format %q: must be 'json' or 'hcl'", cfg.Format)
	}
	return &cfg, nil
}
