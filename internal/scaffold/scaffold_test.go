package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jorge-barreto/sitesmith/internal/config"
	"github.com/jorge-barreto/sitesmith/internal/extract"
)

func TestInit_CreatesDirectoryStructure(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	for _, path := range []string{
		".sitesmith",
		filepath.Join(".sitesmith", "config.yaml"),
		filepath.Join(".sitesmith", "example-response.txt"),
		filepath.Join(".sitesmith", ".gitignore"),
	} {
		full := filepath.Join(dir, path)
		info, err := os.Stat(full)
		if err != nil {
			t.Fatalf("%s not created: %v", path, err)
		}
		if !info.IsDir() && info.Size() == 0 {
			t.Fatalf("%s is empty", path)
		}
	}
}

func TestInit_GeneratedConfigIsValid(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	cfg, err := config.Load(filepath.Join(dir, ".sitesmith", "config.yaml"))
	if err != nil {
		t.Fatalf("generated config does not load: %v", err)
	}
	if cfg.Name != "my-site" {
		t.Errorf("Name = %q", cfg.Name)
	}
}

func TestInit_ExampleResponseParses(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, ".sitesmith", "example-response.txt"))
	if err != nil {
		t.Fatal(err)
	}
	res := extract.Extract(string(data), extract.DefaultFile)
	if res.Fallback {
		t.Fatal("example response should parse without the fallback")
	}
	if res.Len() != 2 {
		t.Fatalf("expected 2 files in example, got %d", res.Len())
	}
	if _, ok := res.Get("style.css"); !ok {
		t.Error("style.css missing from example")
	}
}

func TestInit_FailsIfAlreadyInitialized(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir); err != nil {
		t.Fatalf("first Init failed: %v", err)
	}
	if err := Init(dir); err == nil {
		t.Fatal("second Init should fail")
	}
}
