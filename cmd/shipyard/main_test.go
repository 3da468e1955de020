package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestReportCommand(t *testing.T) {
	out, err := execute(t, "report")
	require.NoError(t, err)

	assert.Contains(t, out, "=== Vessels Under Construction ===")
	assert.Contains(t, out, "Container Ship Pacific Star")
	assert.Contains(t, out, "=== Key Performance Indicators ===")
}

func TestReportCommandConfigThresholds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("thresholds:\n  completion: 70.0\n  experience: 20\n"), 0o644))

	out, err := execute(t, "report", "--config", path)
	require.NoError(t, err)

	// At 70% completion neither sample vessel qualifies as ahead.
	assert.NotContains(t, out, "Ahead:")
	assert.Contains(t, out, "Senior: Michael Anderson with 25 years")
	assert.NotContains(t, out, "Senior: John Smith")
}

func TestHistoryCommandRequiresNATS(t *testing.T) {
	_, err := execute(t, "history")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NATS URL")
}

func TestExportCommandStdout(t *testing.T) {
	out, err := execute(t, "export", "--format", "turtle")
	require.NoError(t, err)

	assert.Contains(t, out, "@prefix shipyard:")
	assert.Contains(t, out, "Vessel_Container_001")
}

func TestExportCommandFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "yard.nt")

	_, err := execute(t, "export", "--format", "ntriples", "--output", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "Vessel_Container_001"))
}

func TestExportCommandBadFormat(t *testing.T) {
	_, err := execute(t, "export", "--format", "rdfxml")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	// The version command prints directly to stdout; just verify it runs.
	_, err := execute(t, "version")
	assert.NoError(t, err)
}
