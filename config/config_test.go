package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ramen/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, 256, cfg.Compile.MaxDiagnostics)
	assert.Equal(t, 1, cfg.Compile.Jobs)
	assert.Equal(t, "pretty", cfg.Output.Format)
	assert.True(t, cfg.Output.Color)
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := config.Parse(`
[compile]
jobs = 8
`)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Compile.Jobs)
	assert.Equal(t, 256, cfg.Compile.MaxDiagnostics)
	assert.Equal(t, "pretty", cfg.Output.Format)
}

func TestParseFull(t *testing.T) {
	cfg, err := config.Parse(`
[compile]
max-diagnostics = 50
jobs = 4

[output]
color = false
context = false
format = "json"
`)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Compile.MaxDiagnostics)
	assert.Equal(t, 4, cfg.Compile.Jobs)
	assert.False(t, cfg.Output.Color)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad toml", "compile = ["},
		{"negative jobs", "[compile]\njobs = -1"},
		{"negative limit", "[compile]\nmax-diagnostics = -5"},
		{"bad format", "[output]\nformat = \"xml\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse(tt.data)
			require.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ramen.toml")
	require.NoError(t, os.WriteFile(path, []byte("[compile]\njobs = 2\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Compile.Jobs)

	_, err = config.Load(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
}

func TestOptionMapping(t *testing.T) {
	cfg, err := config.Parse("[compile]\nmax-diagnostics = 9\njobs = 3\n[output]\ncolor = false\n")
	require.NoError(t, err)

	opts := cfg.Options()
	assert.Equal(t, 9, opts.MaxDiagnostics)
	assert.Equal(t, 3, opts.Jobs)

	pretty := cfg.PrettyOpts()
	assert.False(t, pretty.Color)
	assert.True(t, pretty.Context)
}
