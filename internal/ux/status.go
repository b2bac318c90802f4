package ux

import (
	"fmt"

	"github.com/jorge-barreto/sitesmith/internal/materialize"
	"github.com/jorge-barreto/sitesmith/internal/report"
)

// RenderReport prints the full status display for the last unpack run.
func RenderReport(rep *report.Report) {
	fmt.Printf("%sRun:%s      %s\n", Bold, Reset, rep.RunID)
	fmt.Printf("%sSource:%s   %s\n", Bold, Reset, rep.Source)
	fmt.Printf("%sOutput:%s   %s\n", Bold, Reset, rep.OutputRoot)
	fmt.Printf("%sWhen:%s     %s (%s)\n", Bold, Reset, rep.FinishedAt.Format("2006-01-02 15:04:05"), rep.Duration)

	strategy := rep.Strategy
	if rep.Fallback {
		strategy = fmt.Sprintf("%s%s — no file sections recognized%s", Yellow, strategy, Reset)
	}
	fmt.Printf("%sStrategy:%s %s\n", Bold, Reset, strategy)

	fmt.Printf("\n%sFiles:%s\n", Bold, Reset)
	if len(rep.Outcomes) == 0 {
		fmt.Printf("  %s(none)%s\n", Dim, Reset)
	}
	for _, o := range rep.Outcomes {
		switch o.Status {
		case materialize.StatusWritten:
			fmt.Printf("  %s✓%s %-30s %s%d chars%s\n", Green, Reset, o.Path, Dim, o.Chars, Reset)
		case materialize.StatusSkipped:
			fmt.Printf("  %s–%s %-30s %sskipped: %s%s\n", Yellow, Reset, o.Path, Dim, o.Reason, Reset)
		case materialize.StatusFailed:
			fmt.Printf("  %s✗%s %-30s %s\n", Red, Reset, o.Path, o.Reason)
		}
	}

	summary := fmt.Sprintf("%d written, %d skipped, %d failed", rep.Written, rep.Skipped, rep.Failed)
	color := Green
	if rep.Failed > 0 {
		color = Red
	} else if rep.Skipped > 0 {
		color = Yellow
	}
	fmt.Printf("\n%sTotal:%s    %s%s%s\n\n", Bold, Reset, color, summary, Reset)
}
