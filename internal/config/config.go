// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads and validates the pipeline configuration file.
package config

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/extractfeature/pkg/types"
)

const (
	// DefaultPath is the configuration file used when none is given.
	DefaultPath = "config.yaml"

	defaultOutputPath = "output.csv"
	defaultCatalogDir = "catalog"
)

// Load reads the YAML configuration at path, applies defaults, and
// validates it.
func Load(path string) (types.PipelineConfig, error) {
	var cfg types.PipelineConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	applyDefaults(&cfg)
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyDefaults(cfg *types.PipelineConfig) {
	if cfg.OutputDataPath == "" {
		cfg.OutputDataPath = defaultOutputPath
	}
	if cfg.CatalogDir == "" {
		cfg.CatalogDir = defaultCatalogDir
	}
}

// Validate checks that the configuration names at least one field and
// that every field carries a recognized type. The fields key is the
// only required key.
func Validate(cfg types.PipelineConfig) error {
	if len(cfg.Fields) == 0 {
		return fmt.Errorf("invalid configuration: missing required key %q", "fields")
	}

	seen := make(map[string]bool, len(cfg.Fields))
	for _, f := range cfg.Fields {
		if f.Name == "" {
			return fmt.Errorf("invalid configuration: field with empty name")
		}
		if !f.Type.Valid() {
			return fmt.Errorf("invalid configuration: field %q has unknown type %q", f.Name, f.Type)
		}
		if seen[f.Name] {
			return fmt.Errorf("invalid configuration: duplicate field %q", f.Name)
		}
		seen[f.Name] = true
	}

	if cfg.InputDataPath == "" {
		return fmt.Errorf("invalid configuration: input_data_path is empty")
	}
	return nil
}
