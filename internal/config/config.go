// Package config loads the optional analysis config file. Every field has a
// flag equivalent; flags win when both are set.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// Config mirrors the analyze command's flags.
type Config struct {
	// Reports is the root directory walked for *.json report files.
	Reports string `yaml:"reports" json:"reports"`
	// Out is the CSV output path ("" = no CSV export).
	Out string `yaml:"out" json:"out"`
	// DB is the SQLite path ("" = default, "none" = no persistence).
	DB string `yaml:"db" json:"db"`
	// Workers caps concurrent report analysis (0 = default).
	Workers int `yaml:"workers" json:"workers"`
	// Format is the table output mode: "ascii" or "markdown".
	Format string `yaml:"format" json:"format"`
}

// LoadFromPath reads a config file (YAML or JSON). Format is detected by
// extension (.yaml/.yml → YAML, .json → JSON) or by content (first
// non-whitespace char).
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Load(data, filepath.Ext(path))
}

// Load parses config from bytes. ext is the file extension for format hint;
// empty = detect from content.
func Load(data []byte, ext string) (*Config, error) {
	ext = strings.ToLower(ext)
	if ext == ".yml" {
		ext = ".yaml"
	}
	switch ext {
	case ".yaml":
		return parseYAML(data)
	case ".json":
		return parseJSON(data)
	}
	// Detect: JSON starts with {, everything else is YAML.
	if strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
		return parseJSON(data)
	}
	return parseYAML(data)
}

func parseYAML(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}
	return &c, nil
}

func parseJSON(data []byte) (*Config, error) {
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config json: %w", err)
	}
	return &c, nil
}
