package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jorge-barreto/sitesmith/internal/ux"
)

var configTemplate = `name: my-site

# Directory extracted files are written to, relative to the project root.
output-root: .

# Filename used when no file sections can be recognized in the response.
default-file: index.html

# Recognition strategies, tried in order. Omit to use all of them.
# strategies:
#   - sections
#   - headings
#   - labels
`

var exampleResponse = `Here is the generated website.

=== index.html ===
` + "```html" + `
<!doctype html>
<html>
  <head><link rel="stylesheet" href="style.css"></head>
  <body><h1>Tervetuloa</h1></body>
</html>
` + "```" + `

=== style.css ===
` + "```css" + `
body { font-family: sans-serif; }
` + "```" + `
`

// Init creates a new .sitesmith/ directory with a config file and an
// example response demonstrating the section format.
func Init(targetDir string) error {
	smithDir := filepath.Join(targetDir, ".sitesmith")
	if _, err := os.Stat(smithDir); err == nil {
		return fmt.Errorf(".sitesmith directory already exists in %s", targetDir)
	}

	if err := os.MkdirAll(smithDir, 0755); err != nil {
		return fmt.Errorf("creating .sitesmith: %w", err)
	}

	configPath := filepath.Join(smithDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config.yaml: %w", err)
	}

	examplePath := filepath.Join(smithDir, "example-response.txt")
	if err := os.WriteFile(examplePath, []byte(exampleResponse), 0644); err != nil {
		return fmt.Errorf("writing example-response.txt: %w", err)
	}

	gitignorePath := filepath.Join(smithDir, ".gitignore")
	if err := os.WriteFile(gitignorePath, []byte("report.json\n"), 0644); err != nil {
		return fmt.Errorf("writing .sitesmith/.gitignore: %w", err)
	}

	fmt.Printf("\n%s%s✓ Initialized .sitesmith/ directory%s\n\n", ux.Bold, ux.Green, ux.Reset)
	fmt.Printf("  Created:\n")
	fmt.Printf("    %s.sitesmith/config.yaml%s           — unpack configuration\n", ux.Cyan, ux.Reset)
	fmt.Printf("    %s.sitesmith/example-response.txt%s  — sample input in the section format\n\n", ux.Cyan, ux.Reset)
	fmt.Printf("  Next steps:\n")
	fmt.Printf("    1. Edit %s.sitesmith/config.yaml%s if your output layout differs\n", ux.Cyan, ux.Reset)
	fmt.Printf("    2. Try %ssitesmith unpack .sitesmith/example-response.txt --dry-run%s\n\n", ux.Cyan, ux.Reset)

	return nil
}
