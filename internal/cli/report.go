package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"conclave/internal/report"
)

var buildReportHTML = report.BuildReportHTML

// runReport builds the handler for the report command.
func runReport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		inputDir := fs.String("input", "", "Directory containing saved runs (default: config output dir)")
		outputPath := fs.String("output", "", "Report output path (default: <input>/report.html)")
		configPath := fs.String("config", "", "Path to config file (default: search for .conclave/config.yml)")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		dir, err := resolveRunsDir(*inputDir, *configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to resolve input: %v\n", err)
			return ExitError
		}
		runs, err := report.LoadDir(dir)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load runs: %v\n", err)
			return ExitError
		}
		if len(runs) == 0 {
			fmt.Fprintf(stderr, "No runs found in %s\n", dir)
			return ExitError
		}

		html := buildReportHTML(runs)
		reportPath := *outputPath
		if reportPath == "" {
			reportPath = filepath.Join(dir, "report.html")
		}
		if err := os.WriteFile(reportPath, []byte(html), 0o644); err != nil {
			fmt.Fprintf(stderr, "Failed to write report: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Report written to %s\n", reportPath)
		return ExitOK
	}
}
