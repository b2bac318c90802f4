package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Name        string   `yaml:"name"`
	OutputRoot  string   `yaml:"output-root"`
	DefaultFile string   `yaml:"default-file"`
	Strategies  []string `yaml:"strategies"`
	ReportDir   string   `yaml:"report-dir"`
}

// Default returns the built-in configuration. Unpacking works without an
// initialized project, so these defaults must stand on their own.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// Load reads a YAML config file and returns a validated Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
