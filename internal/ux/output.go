package ux

import (
	"fmt"
	"os"
	"time"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

func timestamp() string {
	return time.Now().Format("15:04:05")
}

// RunHeader prints a timestamped header for an unpack run.
func RunHeader(source string) {
	fmt.Printf("\n%s[%s]%s %s══════════════════════════════════════%s\n",
		Dim, timestamp(), Reset, Cyan, Reset)
	fmt.Printf("%s[%s]%s  %sUnpacking %s%s\n",
		Dim, timestamp(), Reset, Bold, source, Reset)
	fmt.Printf("%s[%s]%s %s══════════════════════════════════════%s\n",
		Dim, timestamp(), Reset, Cyan, Reset)
}

// ExtractInfo prints which strategy recognized the response and how many
// files it found.
func ExtractInfo(strategy string, count int) {
	fmt.Printf("%s[%s]%s  Extracted %s%d file(s)%s %s(%s)%s\n",
		Dim, timestamp(), Reset, Bold, count, Reset, Dim, strategy, Reset)
}

// FallbackWarning warns that no file structure was recognized and the
// whole response was kept as a single document.
func FallbackWarning(name string) {
	fmt.Fprintf(os.Stderr, "%swarning:%s could not recognize named file sections — saving full response as %s\n",
		Yellow, Reset, name)
}

// FileWritten prints a per-file success line.
func FileWritten(path string, chars int) {
	fmt.Printf("  %s✓%s Written: %s %s(%d chars)%s\n", Green, Reset, path, Dim, chars, Reset)
}

// FileSkipped prints a per-file skip notice for an unsafe path.
func FileSkipped(path, reason string) {
	fmt.Printf("  %s✗ SKIP:%s %s: %q\n", Yellow, Reset, reason, path)
}

// FileFailed prints a per-file write failure.
func FileFailed(path, reason string) {
	fmt.Printf("  %s✗ FAIL:%s %s: %s\n", Red, Reset, path, reason)
}

// DryRunFile prints what would be written for a file during a dry run.
func DryRunFile(path string, chars int) {
	fmt.Printf("  %s–%s would write %s %s(%d chars)%s\n", Dim, Reset, path, Dim, chars, Reset)
}

// Summary prints the final run tallies.
func Summary(written, skipped, failed int, duration string) {
	color := Green
	if failed > 0 {
		color = Red
	} else if skipped > 0 {
		color = Yellow
	}
	fmt.Printf("\n%s[%s]%s  %s%s══ %d written, %d skipped, %d failed (%s) ══%s\n\n",
		Dim, timestamp(), Reset, Bold, color, written, skipped, failed, duration, Reset)
}
