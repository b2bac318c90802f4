package doctor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jorge-barreto/sitesmith/internal/materialize"
	"github.com/jorge-barreto/sitesmith/internal/report"
	"github.com/jorge-barreto/sitesmith/internal/ux"
)

// Run inspects the last run's report and explains anything that went
// wrong: unrecognized input, skipped paths, write failures, problems
// with the output root.
func Run(rep *report.Report) error {
	if rep == nil {
		fmt.Println("No previous run to diagnose.")
		return nil
	}

	fmt.Printf("\n%s%s══ Doctor: run %s (%s) ══%s\n\n",
		ux.Bold, ux.Cyan, rep.RunID, rep.FinishedAt.Format("2006-01-02 15:04:05"), ux.Reset)

	findings := Diagnose(rep)
	findings = append(findings, CheckRoot(rep.OutputRoot)...)

	if len(findings) == 0 {
		fmt.Printf("%s✓ Last run completed cleanly: %d file(s) written to %s.%s\n\n",
			ux.Green, rep.Written, rep.OutputRoot, ux.Reset)
		return nil
	}

	for _, f := range findings {
		fmt.Printf("  %s•%s %s\n", ux.Yellow, ux.Reset, f)
	}
	fmt.Printf("\n%sNext:%s fix the input or output root, then run %ssitesmith unpack %s%s again.\n\n",
		ux.Bold, ux.Reset, ux.Cyan, rep.Source, ux.Reset)
	return nil
}

// Diagnose turns a report's outcomes into human-readable findings.
func Diagnose(rep *report.Report) []string {
	var findings []string

	if rep.Fallback {
		findings = append(findings,
			"no file sections were recognized in the response; the whole text was saved "+
				"as one document. Make sure the generator is instructed to mark each file "+
				"with '=== filename ===' (see 'sitesmith docs formats').")
	}

	for _, o := range rep.Outcomes {
		switch o.Status {
		case materialize.StatusSkipped:
			findings = append(findings, fmt.Sprintf(
				"%q was skipped (%s): the generator named a path outside the output root. "+
					"Such paths are never written.", o.Path, o.Reason))
		case materialize.StatusFailed:
			findings = append(findings, fmt.Sprintf(
				"writing %q failed: %s", o.Path, o.Reason))
		}
	}

	return findings
}

// CheckRoot probes the output root for the problems that make writes
// fail: missing directory, not a directory, not writable.
func CheckRoot(root string) []string {
	info, err := os.Stat(root)
	if err != nil {
		return []string{fmt.Sprintf("output root %q does not exist", root)}
	}
	if !info.IsDir() {
		return []string{fmt.Sprintf("output root %q is not a directory", root)}
	}

	probe := filepath.Join(root, ".sitesmith-probe")
	f, err := os.Create(probe)
	if err != nil {
		return []string{fmt.Sprintf("output root %q is not writable: %v", root, err)}
	}
	f.Close()
	os.Remove(probe)
	return nil
}
