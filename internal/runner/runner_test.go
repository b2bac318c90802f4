package runner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jorge-barreto/sitesmith/internal/config"
	"github.com/jorge-barreto/sitesmith/internal/report"
)

const response = `Here is your website.

=== index.html ===
` + "```html" + `
<html><body>Moi</body></html>
` + "```" + `

=== style.css ===
body { margin: 0; }

=== images/logo.svg ===
<svg></svg>
`

func TestRun_EndToEnd(t *testing.T) {
	root := t.TempDir()
	reportDir := filepath.Join(root, ".sitesmith")

	r := &Runner{
		Config:    config.Default(),
		Root:      root,
		ReportDir: reportDir,
		Source:    "response.txt",
		Text:      response,
	}
	if err := r.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "<html><body>Moi</body></html>" {
		t.Fatalf("index.html content: %q", string(data))
	}
	if _, err := os.Stat(filepath.Join(root, "images", "logo.svg")); err != nil {
		t.Fatalf("images/logo.svg not written: %v", err)
	}

	rep, err := report.Load(reportDir)
	if err != nil {
		t.Fatalf("loading report: %v", err)
	}
	if rep == nil {
		t.Fatal("report not saved")
	}
	if rep.Written != 3 || rep.Skipped != 0 || rep.Failed != 0 {
		t.Fatalf("counts = %d/%d/%d, want 3/0/0", rep.Written, rep.Skipped, rep.Failed)
	}
	if rep.Strategy != "sections" {
		t.Errorf("strategy = %q", rep.Strategy)
	}
}

func TestRun_UnsafePathSkippedWithoutError(t *testing.T) {
	root := filepath.Join(t.TempDir(), "out")
	os.MkdirAll(root, 0755)

	r := &Runner{
		Config: config.Default(),
		Root:   root,
		Source: "stdin",
		Text:   "=== ../evil.txt ===\nnope\n\n=== ok.txt ===\nfine\n",
	}
	if err := r.Run(); err != nil {
		t.Fatalf("skips alone should not fail the run: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "..", "evil.txt")); !os.IsNotExist(err) {
		t.Fatal("evil.txt escaped the output root")
	}
	if _, err := os.Stat(filepath.Join(root, "ok.txt")); err != nil {
		t.Fatalf("ok.txt not written: %v", err)
	}
}

func TestRun_WriteFailureReturnsError(t *testing.T) {
	root := t.TempDir()
	// A directory where the file should go makes the write fail.
	os.MkdirAll(filepath.Join(root, "index.html"), 0755)

	r := &Runner{
		Config: config.Default(),
		Root:   root,
		Source: "stdin",
		Text:   "=== index.html ===\n<html></html>\n",
	}
	if err := r.Run(); err == nil {
		t.Fatal("expected error when a write fails")
	}
}

func TestRun_FallbackProducesDefaultFile(t *testing.T) {
	root := t.TempDir()
	reportDir := filepath.Join(root, ".sitesmith")

	r := &Runner{
		Config:    config.Default(),
		Root:      root,
		ReportDir: reportDir,
		Source:    "stdin",
		Text:      "no recognizable structure here",
	}
	if err := r.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "no recognizable structure here" {
		t.Fatalf("fallback content: %q", string(data))
	}

	rep, _ := report.Load(reportDir)
	if rep == nil || !rep.Fallback {
		t.Fatal("report should record that the fallback fired")
	}
}

func TestRun_DryRunWritesNothing(t *testing.T) {
	root := t.TempDir()
	r := &Runner{
		Config: config.Default(),
		Root:   root,
		Source: "response.txt",
		Text:   response,
		DryRun: true,
	}
	if err := r.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("dry run wrote %d entries", len(entries))
	}
}
