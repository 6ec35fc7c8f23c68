// Package config loads the optional JSON configuration for the
// symmetry CLI. All fields are pointers so a config file only overrides
// what it names; defaults fill the rest.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Defaults applied to fields a config file leaves unset.
const (
	DefaultMigrationsDir = "internal/db/migrations"
	DefaultListLimit     = 20
)

// Config is the root CLI configuration. The schema mirrors the CLI
// flags so either source can drive a run.
type Config struct {
	PlotOutput        *string `json:"plot_output,omitempty"`
	ReportOutput      *string `json:"report_output,omitempty"`
	JSONOutput        *string `json:"json_output,omitempty"`
	DBPath            *string `json:"db_path,omitempty"`
	MigrationsDir     *string `json:"migrations_dir,omitempty"`
	IncludeLabels     *bool   `json:"include_labels,omitempty"`
	IncludeBarycenter *bool   `json:"include_barycenter,omitempty"`
	ListLimit         *int    `json:"list_limit,omitempty"`
}

// Load reads path and applies defaults. An empty path returns the
// defaults alone.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.MigrationsDir == nil {
		c.MigrationsDir = ptrString(DefaultMigrationsDir)
	}
	if c.IncludeLabels == nil {
		c.IncludeLabels = ptrBool(false)
	}
	if c.IncludeBarycenter == nil {
		c.IncludeBarycenter = ptrBool(true)
	}
	if c.ListLimit == nil {
		c.ListLimit = ptrInt(DefaultListLimit)
	}
}

func ptrString(v string) *string { return &v }
func ptrBool(v bool) *bool       { return &v }
func ptrInt(v int) *int          { return &v }
