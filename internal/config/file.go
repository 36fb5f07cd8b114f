package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileSchema mirrors the .gqlint.yaml layout written by `gqlint init`
type fileSchema struct {
	Severity    string                  `yaml:"severity"`
	Preset      string                  `yaml:"preset"`
	Settings    map[string]interface{}  `yaml:"settings"`
	Rules       map[string]RuleOverride `yaml:"rules"`
	IgnorePaths []string                `yaml:"ignore_paths"`
}

// Load reads a yaml configuration file. The file's preset (default
// when absent) provides the base values; explicit settings and rule
// overrides are applied on top
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes yaml configuration content
func Parse(data []byte) (*Config, error) {
	var schema fileSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, err
	}

	cfg, ok := Preset(schema.Preset)
	if !ok {
		return nil, fmt.Errorf("unknown preset %q", schema.Preset)
	}

	if schema.Severity != "" {
		cfg.Set(KeyMinSeverity, schema.Severity)
	}
	for k, v := range schema.Settings {
		cfg.Set(k, v)
	}
	for id, o := range schema.Rules {
		cfg.SetRule(id, o)
	}
	if len(schema.IgnorePaths) > 0 {
		cfg.SetIgnorePaths(schema.IgnorePaths)
	}
	return cfg, nil
}
