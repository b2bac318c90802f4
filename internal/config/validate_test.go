package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidate_SetsDefaults(t *testing.T) {
	cfg := &Config{}
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if cfg.OutputRoot != "." {
		t.Errorf("OutputRoot = %q, want %q", cfg.OutputRoot, ".")
	}
	if cfg.DefaultFile != "index.html" {
		t.Errorf("DefaultFile = %q, want %q", cfg.DefaultFile, "index.html")
	}
	if cfg.ReportDir != ".sitesmith" {
		t.Errorf("ReportDir = %q, want %q", cfg.ReportDir, ".sitesmith")
	}
}

func TestValidate_UnsafeDefaultFile(t *testing.T) {
	cfg := &Config{DefaultFile: "../index.html"}
	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected error for traversal in default-file")
	}
	if !strings.Contains(err.Error(), "default-file") {
		t.Errorf("error should mention default-file: %v", err)
	}
}

func TestValidate_UnknownStrategy(t *testing.T) {
	cfg := &Config{Strategies: []string{"sections", "regex"}}
	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected error for unknown strategy")
	}
	if !strings.Contains(err.Error(), "regex") {
		t.Errorf("error should name the unknown strategy: %v", err)
	}
}

func TestValidate_DuplicateStrategy(t *testing.T) {
	cfg := &Config{Strategies: []string{"sections", "sections"}}
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for duplicate strategy")
	}
}

func TestValidate_AbsoluteReportDir(t *testing.T) {
	cfg := &Config{ReportDir: "/var/run/sitesmith"}
	if err := Validate(cfg); err == nil {
		t.Fatal("expected error for absolute report-dir")
	}
}

func TestLoad_ValidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "name: my-site\noutput-root: public\nstrategies:\n  - sections\n  - labels\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Name != "my-site" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.OutputRoot != "public" {
		t.Errorf("OutputRoot = %q", cfg.OutputRoot)
	}
	if len(cfg.Chain()) != 2 {
		t.Errorf("chain length = %d, want 2", len(cfg.Chain()))
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(": not yaml :\n\t"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := Validate(cfg); err != nil {
		t.Fatalf("Default() config should validate: %v", err)
	}
	if len(cfg.Chain()) == 0 {
		t.Fatal("default chain is empty")
	}
}
