// Package config provides configuration loading and management for the
// shipyard tooling.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/shipyard/export"
	vocab "github.com/c360studio/shipyard/vocabulary/shipyard"
)

// Config represents the complete shipyard configuration
type Config struct {
	Ontology   OntologyConfig   `yaml:"ontology"`
	Export     ExportConfig     `yaml:"export"`
	Thresholds ThresholdsConfig `yaml:"thresholds"`
	NATS       NATSConfig       `yaml:"nats"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// OntologyConfig configures the ontology namespaces
type OntologyConfig struct {
	// Namespace is the base IRI for class and property terms
	Namespace string `yaml:"namespace"`
	// EntityNamespace is the base IRI for individuals
	EntityNamespace string `yaml:"entity_namespace"`
}

// ExportConfig configures RDF export
type ExportConfig struct {
	// Path is the output file path (empty = stdout)
	Path string `yaml:"path"`
	// Format is the serialization format: turtle, ntriples, or jsonld
	Format string `yaml:"format"`
}

// ThresholdsConfig configures the report highlight queries
type ThresholdsConfig struct {
	// Completion is the percentage above which a vessel is highlighted
	Completion float64 `yaml:"completion"`
	// Experience is the years above which a worker counts as senior
	Experience int `yaml:"experience"`
}

// NATSConfig configures the knowledge-graph connection
type NATSConfig struct {
	// URL is the NATS server URL (empty = publishing disabled)
	URL string `yaml:"url"`
}

// MetricsConfig configures the Prometheus endpoint
type MetricsConfig struct {
	// Addr is the listen address for /metrics (empty = disabled)
	Addr string `yaml:"addr"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Ontology: OntologyConfig{
			Namespace:       vocab.Namespace,
			EntityNamespace: vocab.EntityNamespace,
		},
		Export: ExportConfig{
			Path:   "",
			Format: string(export.FormatTurtle),
		},
		Thresholds: ThresholdsConfig{
			Completion: 50.0,
			Experience: 10,
		},
		NATS: NATSConfig{
			URL: "",
		},
		Metrics: MetricsConfig{
			Addr: "",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Ontology.Namespace == "" {
		return fmt.Errorf("ontology.namespace is required")
	}
	if c.Ontology.EntityNamespace == "" {
		return fmt.Errorf("ontology.entity_namespace is required")
	}
	if _, ok := export.ParseFormat(c.Export.Format); !ok {
		return fmt.Errorf("export.format %q is not supported", c.Export.Format)
	}
	if c.Thresholds.Completion < 0 || c.Thresholds.Completion > 100 {
		return fmt.Errorf("thresholds.completion must be between 0 and 100")
	}
	if c.Thresholds.Experience < 0 {
		return fmt.Errorf("thresholds.experience must not be negative")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Ontology.Namespace != "" {
		c.Ontology.Namespace = other.Ontology.Namespace
	}
	if other.Ontology.EntityNamespace != "" {
		c.Ontology.EntityNamespace = other.Ontology.EntityNamespace
	}

	if other.Export.Path != "" {
		c.Export.Path = other.Export.Path
	}
	if other.Export.Format != "" {
		c.Export.Format = other.Export.Format
	}

	if other.Thresholds.Completion != 0 {
		c.Thresholds.Completion = other.Thresholds.Completion
	}
	if other.Thresholds.Experience != 0 {
		c.Thresholds.Experience = other.Thresholds.Experience
	}

	if other.NATS.URL != "" {
		c.NATS.URL = other.NATS.URL
	}

	if other.Metrics.Addr != "" {
		c.Metrics.Addr = other.Metrics.Addr
	}
}
