package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	assert.Equal(t, "./input", cfg.InputDir)
	assert.Equal(t, "structured", cfg.ExportFormat)
	assert.Equal(t, "{stem}_{uuid}", cfg.FileNameFormat)
	assert.Equal(t, "*.klv", cfg.InputPattern)
	assert.Equal(t, 4, cfg.MaxConcurrency)
	assert.Equal(t, 100, cfg.HistorySize)
	assert.True(t, cfg.ContinueOnError)
	assert.True(t, cfg.ArchiveOnSuccess)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
input_dir: /data/in
export_format: tabular
max_concurrency: 8
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/data/in", cfg.InputDir)
	assert.Equal(t, "tabular", cfg.ExportFormat)
	assert.Equal(t, 8, cfg.MaxConcurrency)
	assert.Equal(t, "./output", cfg.OutputDir)
	assert.Equal(t, "./archive", cfg.ArchiveDir)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "input_dir: [unclosed")

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoad_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"negative concurrency", "max_concurrency: -2", "max_concurrency"},
		{"negative history", "history_size: -1", "history_size"},
		{"unknown format", "export_format: pdf", "export_format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "./reports", cfg.ReportsDir)
	assert.True(t, cfg.ContinueOnError)
}
