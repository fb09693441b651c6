// Package config provides configuration loading for the trypmorph CLI. It
// handles loading configuration from YAML files and provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration loaded from YAML.
type Config struct {
	// Analysis parameters for the morphology pipeline.
	Analysis struct {
		// PrefilterRadius is the Gaussian blur sigma applied to the phase
		// mask before skeletonization.
		PrefilterRadius float64 `yaml:"prefilterRadius"`

		// PruneLength is the shortest skeleton branch retained by pruning.
		PruneLength int `yaml:"pruneLength"`

		// MinArea is the minimum convex area for a DNA object.
		MinArea float64 `yaml:"minArea"`

		// KNThresholdArea is the maximum area classified as kinetoplast.
		KNThresholdArea float64 `yaml:"knThresholdArea"`
	} `yaml:"analysis"`

	// Processing parameters.
	Processing struct {
		// NumWorkers is the number of parallel workers for batch runs.
		NumWorkers int `yaml:"numWorkers"`
	} `yaml:"processing"`

	// Output parameters.
	Output struct {
		// Pretty enables indented JSON output.
		Pretty bool `yaml:"pretty"`

		// OverlayPath, when set, is where the annotated overlay JPEG is
		// written.
		OverlayPath string `yaml:"overlayPath"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Analysis.PrefilterRadius = 2.0
	cfg.Analysis.PruneLength = 15
	cfg.Analysis.MinArea = 17
	cfg.Analysis.KNThresholdArea = 250

	cfg.Processing.NumWorkers = runtime.NumCPU()

	cfg.Output.Pretty = false
	cfg.Output.OverlayPath = ""

	return cfg
}

// LoadConfig loads configuration from a YAML file. If the file doesn't
// exist, it returns the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file.
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}
