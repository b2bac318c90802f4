package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jorge-barreto/sitesmith/internal/config"
	"github.com/jorge-barreto/sitesmith/internal/docs"
	"github.com/jorge-barreto/sitesmith/internal/doctor"
	"github.com/jorge-barreto/sitesmith/internal/report"
	"github.com/jorge-barreto/sitesmith/internal/runner"
	"github.com/jorge-barreto/sitesmith/internal/scaffold"
	"github.com/jorge-barreto/sitesmith/internal/ux"
	cli "github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:        "sitesmith",
		Usage:       "Unpack generated text into real files",
		Description: "Run 'sitesmith docs' for documentation on input formats, config, and path safety.",
		Commands: []*cli.Command{
			unpackCmd(),
			initCmd(),
			statusCmd(),
			doctorCmd(),
			docsCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%serror:%s %v\n", ux.Red, ux.Reset, err)
		os.Exit(1)
	}
}

func unpackCmd() *cli.Command {
	return &cli.Command{
		Name:      "unpack",
		Usage:     "Extract files from a response and write them to the output root",
		ArgsUsage: "[response-file]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "root", Usage: "Override the output root directory"},
			&cli.BoolFlag{Name: "dry-run", Usage: "Show what would be written without writing"},
			&cli.BoolFlag{Name: "no-report", Usage: "Skip writing report.json"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			source, text, err := readResponse(cmd.Args().First())
			if err != nil {
				return err
			}

			projectRoot, cfg, err := loadProject()
			if err != nil {
				return err
			}

			root := filepath.Join(projectRoot, cfg.OutputRoot)
			if cmd.String("root") != "" {
				root = cmd.String("root")
			}

			reportDir := filepath.Join(projectRoot, cfg.ReportDir)
			if cmd.Bool("no-report") {
				reportDir = ""
			}

			r := &runner.Runner{
				Config:    cfg,
				Root:      root,
				ReportDir: reportDir,
				Source:    source,
				Text:      text,
				DryRun:    cmd.Bool("dry-run"),
			}
			return r.Run()
		},
	}
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Initialize a new .sitesmith/ directory with example config",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			return scaffold.Init(dir)
		},
	}
}

func statusCmd() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show the last unpack run",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			rep, err := loadLastReport()
			if err != nil {
				return err
			}
			if rep == nil {
				fmt.Println("No runs recorded yet. Run 'sitesmith unpack <response-file>' first.")
				return nil
			}
			ux.RenderReport(rep)
			return nil
		},
	}
}

func doctorCmd() *cli.Command {
	return &cli.Command{
		Name:  "doctor",
		Usage: "Diagnose the last unpack run",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			rep, err := loadLastReport()
			if err != nil {
				return err
			}
			return doctor.Run(rep)
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				fmt.Print("\nAvailable topics:\n\n")
				for _, t := range docs.All() {
					fmt.Printf("  %-14s %s\n", t.Name, t.Summary)
				}
				fmt.Println("\nRun 'sitesmith docs <topic>' to read a topic.")
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Print(t.Content)
			return nil
		},
	}
}

// readResponse returns the response text and a display name for its
// source. No argument (or "-") reads stdin.
func readResponse(arg string) (source, text string, err error) {
	if arg == "" || arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return "stdin", string(data), nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return "", "", fmt.Errorf("reading response: %w", err)
	}
	return arg, string(data), nil
}

// loadProject locates the project root and its config. Without an
// initialized project the current directory and built-in defaults are
// used, so unpack works standalone.
func loadProject() (string, *config.Config, error) {
	projectRoot, err := findProjectRoot()
	if err != nil {
		cwd, wderr := os.Getwd()
		if wderr != nil {
			return "", nil, wderr
		}
		return cwd, config.Default(), nil
	}
	cfg, err := config.Load(filepath.Join(projectRoot, ".sitesmith", "config.yaml"))
	if err != nil {
		return "", nil, fmt.Errorf("loading config: %w", err)
	}
	return projectRoot, cfg, nil
}

func loadLastReport() (*report.Report, error) {
	projectRoot, cfg, err := loadProject()
	if err != nil {
		return nil, err
	}
	rep, err := report.Load(filepath.Join(projectRoot, cfg.ReportDir))
	if err != nil {
		return nil, fmt.Errorf("loading report: %w", err)
	}
	return rep, nil
}

// findProjectRoot walks up from cwd looking for .sitesmith/config.yaml.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		configPath := filepath.Join(dir, ".sitesmith", "config.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no .sitesmith/config.yaml found (searched from cwd to root)")
		}
		dir = parent
	}
}
