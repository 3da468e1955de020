package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/shipyard/export"
	vocab "github.com/c360studio/shipyard/vocabulary/shipyard"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, vocab.Namespace, cfg.Ontology.Namespace)
	assert.Equal(t, vocab.EntityNamespace, cfg.Ontology.EntityNamespace)
	assert.Equal(t, string(export.FormatTurtle), cfg.Export.Format)
	assert.Equal(t, 50.0, cfg.Thresholds.Completion)
	assert.Equal(t, 10, cfg.Thresholds.Experience)
	assert.Empty(t, cfg.NATS.URL)

	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"missing namespace", func(c *Config) { c.Ontology.Namespace = "" }, true},
		{"missing entity namespace", func(c *Config) { c.Ontology.EntityNamespace = "" }, true},
		{"bad format", func(c *Config) { c.Export.Format = "rdfxml" }, true},
		{"ntriples format", func(c *Config) { c.Export.Format = "ntriples" }, false},
		{"completion too high", func(c *Config) { c.Thresholds.Completion = 120 }, true},
		{"negative experience", func(c *Config) { c.Thresholds.Experience = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shipyard.yaml")

	cfg := DefaultConfig()
	cfg.Export.Path = "out/shipyard.nt"
	cfg.Export.Format = "ntriples"
	cfg.NATS.URL = "nats://localhost:4222"
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	// The wrapped error must stay matchable so callers can distinguish
	// a missing file from a broken one.
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMerge(t *testing.T) {
	base := DefaultConfig()
	base.Merge(&Config{
		Export: ExportConfig{Format: "jsonld"},
		NATS:   NATSConfig{URL: "nats://broker:4222"},
		Thresholds: ThresholdsConfig{
			Experience: 15,
		},
	})

	assert.Equal(t, "jsonld", base.Export.Format)
	assert.Equal(t, "nats://broker:4222", base.NATS.URL)
	assert.Equal(t, 15, base.Thresholds.Experience)

	// Zero values in the overlay leave base values untouched.
	assert.Equal(t, 50.0, base.Thresholds.Completion)
	assert.Equal(t, vocab.Namespace, base.Ontology.Namespace)
}

func TestMergeNil(t *testing.T) {
	base := DefaultConfig()
	base.Merge(nil)
	assert.Equal(t, DefaultConfig(), base)
}
