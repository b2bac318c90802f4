package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jorge-barreto/sitesmith/internal/materialize"
)

// Report is the terminal artifact of an unpack run, persisted so status
// and doctor can inspect it later.
type Report struct {
	RunID      string                `json:"run_id"`
	Source     string                `json:"source"` // response file path, or "stdin"
	OutputRoot string                `json:"output_root"`
	Strategy   string                `json:"strategy"`
	Fallback   bool                  `json:"fallback"`
	StartedAt  time.Time             `json:"started_at"`
	FinishedAt time.Time             `json:"finished_at"`
	Duration   string                `json:"duration"`
	Outcomes   []materialize.Outcome `json:"outcomes"`
	Written    int                   `json:"written"`
	Skipped    int                   `json:"skipped"`
	Failed     int                   `json:"failed"`
}

// New starts a report for a run beginning now.
func New(source, outputRoot string) *Report {
	return &Report{
		RunID:      uuid.NewString(),
		Source:     source,
		OutputRoot: outputRoot,
		StartedAt:  time.Now(),
	}
}

// Finish records the outcomes, aggregate counts, and timing.
func (r *Report) Finish(outcomes []materialize.Outcome) {
	r.Outcomes = outcomes
	r.Written, r.Skipped, r.Failed = materialize.Count(outcomes)
	r.FinishedAt = time.Now()
	r.Duration = formatDuration(r.FinishedAt.Sub(r.StartedAt))
}

func reportPath(dir string) string {
	return filepath.Join(dir, "report.json")
}

// Load reads the last run's report from dir. Returns nil without error
// when no report exists.
func Load(dir string) (*Report, error) {
	data, err := os.ReadFile(reportPath(dir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Save writes the report to dir, creating it if needed.
func (r *Report) Save(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating report dir %s: %w", dir, err)
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(reportPath(dir), data, 0644)
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm %02ds", m, s)
}
