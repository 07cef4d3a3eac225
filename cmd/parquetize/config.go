package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	yaml "gopkg.in/yaml.v3"
)

// Config mirrors the CLI surface for users who prefer a file over flags.
// Flags override any value set here.
type Config struct {
	Input struct {
		Path      string `json:"path" toml:"path" yaml:"path"`
		Delimiter string `json:"delimiter" toml:"delimiter" yaml:"delimiter"`
	} `json:"input" toml:"input" yaml:"input"`
	Output struct {
		Path          string `json:"path" toml:"path" yaml:"path"`
		Compression   string `json:"compression" toml:"compression" yaml:"compression"`
		FormatVersion string `json:"format_version" toml:"format_version" yaml:"format_version"`
	} `json:"output" toml:"output" yaml:"output"`
}

// LoadConfig reads a config file, picking the decoder by extension:
// .toml, .yaml/.yml, or .json (the default for anything else).
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(b, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	default:
		err = json.Unmarshal(b, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}
