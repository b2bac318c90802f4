package runner

import (
	"fmt"
	"os"

	"github.com/jorge-barreto/sitesmith/internal/config"
	"github.com/jorge-barreto/sitesmith/internal/extract"
	"github.com/jorge-barreto/sitesmith/internal/materialize"
	"github.com/jorge-barreto/sitesmith/internal/report"
	"github.com/jorge-barreto/sitesmith/internal/ux"
)

// Runner drives a single unpack run: extract, materialize, report.
type Runner struct {
	Config    *config.Config
	Root      string // destination root for extracted files
	ReportDir string // where report.json goes; empty disables persistence
	Source    string // display name of the response source
	Text      string // the response text
	DryRun    bool
}

// Run unpacks the response text under Root. Unsafe paths are skipped
// with a notice; individual write failures are reported and the rest of
// the files are still attempted. Returns an error when any write failed.
func (r *Runner) Run() error {
	ux.RunHeader(r.Source)

	res := extract.ExtractWith(r.Config.Chain(), r.Text, r.Config.DefaultFile)
	if res.Fallback {
		ux.FallbackWarning(r.Config.DefaultFile)
	}
	ux.ExtractInfo(res.Strategy, res.Len())

	if r.DryRun {
		for _, f := range res.Files() {
			if clean, ok := materialize.SafePath(f.Path); ok {
				ux.DryRunFile(clean, len(f.Content))
			} else {
				ux.FileSkipped(f.Path, "unsafe path")
			}
		}
		fmt.Println()
		return nil
	}

	rep := report.New(r.Source, r.Root)
	rep.Strategy = res.Strategy
	rep.Fallback = res.Fallback

	outcomes := materialize.Materialize(res, r.Root)
	for _, o := range outcomes {
		switch o.Status {
		case materialize.StatusWritten:
			ux.FileWritten(o.Path, o.Chars)
		case materialize.StatusSkipped:
			ux.FileSkipped(o.Path, o.Reason)
		case materialize.StatusFailed:
			ux.FileFailed(o.Path, o.Reason)
		}
	}

	rep.Finish(outcomes)
	if r.ReportDir != "" {
		if err := rep.Save(r.ReportDir); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to save report: %v\n", err)
		}
	}

	ux.Summary(rep.Written, rep.Skipped, rep.Failed, rep.Duration)

	if rep.Failed > 0 {
		return fmt.Errorf("%d file(s) failed to write", rep.Failed)
	}
	return nil
}
