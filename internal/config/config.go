// Package config provides configuration management for the merge pipeline.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingOutputPath = errors.New("pipeline.output_path is required")
	ErrInvalidWorkers    = errors.New("pipeline.workers must be non-negative")
	ErrInvalidLogLevel   = errors.New("pipeline.logging.level must be one of: debug, info, warn, error")
	ErrMissingIndexDir   = errors.New("index.dir is required")
	ErrInvalidLimit      = errors.New("index.search_limit must be at least 1")
)

// Config represents the complete pipeline configuration.
type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline"`
	Index    IndexConfig    `yaml:"index"`
}

// PipelineConfig contains merge-run settings.
type PipelineConfig struct {
	ReferencePath string        `yaml:"reference_path"`
	CorpusPath    string        `yaml:"corpus_path"`
	OutputPath    string        `yaml:"output_path"`
	Workers       int           `yaml:"workers"`
	Logging       LoggingConfig `yaml:"logging"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// IndexConfig contains search-index settings.
type IndexConfig struct {
	Dir         string `yaml:"dir"`
	SearchLimit int    `yaml:"search_limit"`
}

// DefaultConfig returns the configuration used when no config file is given.
// Input paths stay empty: they must come from flags or the file.
func DefaultConfig() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			OutputPath: "output.tsv",
			Logging:    LoggingConfig{Level: "info"},
		},
		Index: IndexConfig{
			Dir:         "people_index",
			SearchLimit: 10,
		},
	}
}

// LoadConfig loads configuration from a YAML file, applying defaults for
// anything the file leaves unset.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Pipeline.OutputPath == "" {
		return ErrMissingOutputPath
	}

	if c.Pipeline.Workers < 0 {
		return ErrInvalidWorkers
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Pipeline.Logging.Level] {
		return ErrInvalidLogLevel
	}

	if c.Index.Dir == "" {
		return ErrMissingIndexDir
	}

	if c.Index.SearchLimit < 1 {
		return ErrInvalidLimit
	}

	return nil
}

// EffectiveWorkers returns the worker-pool size to use, falling back to the
// CPU count when the configured value is zero.
func (c *Config) EffectiveWorkers() int {
	if c.Pipeline.Workers > 0 {
		return c.Pipeline.Workers
	}

	return runtime.NumCPU()
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Reference: %s, Corpus: %s, Output: %s, Workers: %d}",
		c.Pipeline.ReferencePath,
		c.Pipeline.CorpusPath,
		c.Pipeline.OutputPath,
		c.Pipeline.Workers,
	)
}
