package materialize

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jorge-barreto/sitesmith/internal/extract"
)

// Outcome statuses.
const (
	StatusWritten = "written"
	StatusSkipped = "skipped"
	StatusFailed  = "failed"
)

// Outcome records what happened to one extracted file.
type Outcome struct {
	Path   string `json:"path"`             // normalized path relative to the root
	Status string `json:"status"`           // written, skipped, failed
	Chars  int    `json:"chars,omitempty"`  // content length, for written files
	Reason string `json:"reason,omitempty"` // skip reason or write error
}

// Materialize writes each extracted file under root, in result order.
// Paths that would escape root are skipped; a failed write is recorded
// and does not stop the remaining files. Exactly one outcome is returned
// per entry.
func Materialize(res *extract.Result, root string) []Outcome {
	outcomes := make([]Outcome, 0, res.Len())
	for _, f := range res.Files() {
		outcomes = append(outcomes, writeOne(root, f))
	}
	return outcomes
}

func writeOne(root string, f extract.File) Outcome {
	clean, ok := SafePath(f.Path)
	if !ok {
		return Outcome{Path: f.Path, Status: StatusSkipped, Reason: "unsafe path"}
	}

	full := filepath.Join(root, clean)
	if dir := filepath.Dir(full); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return Outcome{Path: clean, Status: StatusFailed, Reason: fmt.Sprintf("creating directory: %v", err)}
		}
	}

	if err := os.WriteFile(full, []byte(f.Content), 0644); err != nil {
		return Outcome{Path: clean, Status: StatusFailed, Reason: err.Error()}
	}
	return Outcome{Path: clean, Status: StatusWritten, Chars: len(f.Content)}
}

// Count tallies outcomes by status.
func Count(outcomes []Outcome) (written, skipped, failed int) {
	for _, o := range outcomes {
		switch o.Status {
		case StatusWritten:
			written++
		case StatusSkipped:
			skipped++
		case StatusFailed:
			failed++
		}
	}
	return
}
