package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jorge-barreto/sitesmith/internal/extract"
	"github.com/jorge-barreto/sitesmith/internal/materialize"
)

// Validate checks the config for errors and sets defaults.
func Validate(cfg *Config) error {
	setDefaults(cfg)

	if _, ok := materialize.SafePath(cfg.DefaultFile); !ok {
		return fmt.Errorf("config: 'default-file' %q is not a safe relative path", cfg.DefaultFile)
	}

	if strings.TrimSpace(cfg.OutputRoot) == "" {
		return fmt.Errorf("config: 'output-root' must be non-empty")
	}

	if filepath.IsAbs(cfg.ReportDir) {
		return fmt.Errorf("config: 'report-dir' must be relative to the project root")
	}
	if strings.TrimSpace(cfg.ReportDir) == "" {
		return fmt.Errorf("config: 'report-dir' must be non-empty")
	}

	seen := make(map[string]bool)
	for _, name := range cfg.Strategies {
		if seen[name] {
			return fmt.Errorf("config: duplicate strategy %q", name)
		}
		seen[name] = true
	}
	if _, err := extract.Chain(cfg.Strategies); err != nil {
		return fmt.Errorf("config: strategies: %w", err)
	}

	return nil
}

func setDefaults(cfg *Config) {
	if cfg.OutputRoot == "" {
		cfg.OutputRoot = "."
	}
	if cfg.DefaultFile == "" {
		cfg.DefaultFile = extract.DefaultFile
	}
	if cfg.ReportDir == "" {
		cfg.ReportDir = ".sitesmith"
	}
}

// Chain resolves the configured strategy names. Call after Validate.
func (c *Config) Chain() []extract.Strategy {
	chain, err := extract.Chain(c.Strategies)
	if err != nil {
		// Validate rejects unknown names, so this cannot happen on a
		// validated config.
		return extract.Strategies
	}
	return chain
}
