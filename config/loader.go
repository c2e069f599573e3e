// SPDX-License-Identifier: MIT
// Package: slitpore/config
//
// loader.go — viper-backed loading.

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SLITPORE"

// envKeys are bound explicitly so that LoadFromEnv sees them without a file.
var envKeys = []string{
	"pore_length", "pore_depth", "x_sheet", "side_dim", "y_sheet",
	"n_sheets", "pore_width", "slit_pore_dim", "x_bulk",
	"n_solvent", "func_percent",
	"kind", "seed", "overlap", "bond_length",
	"log.level", "log.format",
}

// newViper returns a viper with YAML input, the SLITPORE_ prefix and
// "." → "_" key mapping (log.level → SLITPORE_LOG_LEVEL).
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, k := range envKeys {
		_ = v.BindEnv(k)
	}
	v.SetDefault("slit_pore_dim", DefaultSlitPoreDim)
	return v
}

// Load reads the YAML recipe at path, applies environment overrides and
// defaults, and validates the result.
func Load(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}
	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a recipe from SLITPORE_* variables only.
func LoadFromEnv() (*Config, error) {
	return unmarshalAndFinalize(newViper())
}

func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	ApplyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
