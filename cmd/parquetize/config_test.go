package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadConfigTOML(t *testing.T) {
	p := writeConfig(t, "cfg.toml", `
[input]
path = "data.csv"
delimiter = ";"

[output]
path = "data.parquet"
compression = "zstd"
format_version = "2.6"
`)
	cfg, err := LoadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, "data.csv", cfg.Input.Path)
	assert.Equal(t, ";", cfg.Input.Delimiter)
	assert.Equal(t, "data.parquet", cfg.Output.Path)
	assert.Equal(t, "zstd", cfg.Output.Compression)
	assert.Equal(t, "2.6", cfg.Output.FormatVersion)
}

func TestLoadConfigYAML(t *testing.T) {
	p := writeConfig(t, "cfg.yaml", `
input:
  path: data.csv
output:
  compression: gzip
`)
	cfg, err := LoadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, "data.csv", cfg.Input.Path)
	assert.Equal(t, "gzip", cfg.Output.Compression)
	assert.Empty(t, cfg.Output.Path)
}

func TestLoadConfigJSON(t *testing.T) {
	p := writeConfig(t, "cfg.json", `{"input":{"path":"data.csv"},"output":{"compression":"brotli"}}`)
	cfg, err := LoadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, "data.csv", cfg.Input.Path)
	assert.Equal(t, "brotli", cfg.Output.Compression)
}

func TestBuildOptionsPrecedence(t *testing.T) {
	cfg := &Config{}
	cfg.Input.Path = "cfg.csv"
	cfg.Input.Delimiter = ";"
	cfg.Output.Path = "cfg.parquet"
	cfg.Output.Compression = "gzip"

	// config alone
	opt := buildOptions(cfg, nil, "", "", "")
	assert.Equal(t, "cfg.csv", opt.InputPath)
	assert.Equal(t, "cfg.parquet", opt.OutputPath)
	assert.Equal(t, "gzip", opt.Compression)
	assert.Equal(t, ';', opt.Delimiter)

	// positionals and flags win over config
	opt = buildOptions(cfg, []string{"cli.csv", "cli.parquet"}, "zstd", "2.4", "|")
	assert.Equal(t, "cli.csv", opt.InputPath)
	assert.Equal(t, "cli.parquet", opt.OutputPath)
	assert.Equal(t, "zstd", opt.Compression)
	assert.Equal(t, "2.4", opt.FormatVersion)
	assert.Equal(t, '|', opt.Delimiter)

	// no config, no flags
	opt = buildOptions(nil, []string{"only.csv"}, "", "", "")
	assert.Equal(t, "only.csv", opt.InputPath)
	assert.Empty(t, opt.OutputPath)
}

func TestBuildOptionsMultiByteDelimiter(t *testing.T) {
	opt := buildOptions(nil, nil, "", "", "→")
	assert.Equal(t, '→', opt.Delimiter)

	cfg := &Config{}
	cfg.Input.Delimiter = "¦"
	opt = buildOptions(cfg, nil, "", "", "")
	assert.Equal(t, '¦', opt.Delimiter)
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadConfigMalformed(t *testing.T) {
	p := writeConfig(t, "bad.yaml", "input: [unclosed")
	_, err := LoadConfig(p)
	require.Error(t, err)
}
