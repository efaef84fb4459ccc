package cli

import (
	"flag"
	"fmt"
	"io"

	"conclave/internal/report"
)

// loadRunFile is a test seam for reading saved runs.
var loadRunFile = report.LoadRun

// runCompare builds the handler for the compare command.
func runCompare(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		basePath := fs.String("base", "", "Baseline run file")
		headPath := fs.String("head", "", "Run file to compare against the baseline")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if *basePath == "" {
			fmt.Fprintln(stderr, "Missing --base")
			return ExitUsage
		}
		if *headPath == "" {
			fmt.Fprintln(stderr, "Missing --head")
			return ExitUsage
		}

		base, err := loadRunFile(*basePath)
		if err != nil {
			fmt.Fprintf(stderr, "Base run not found: %v\n", err)
			return ExitError
		}
		head, err := loadRunFile(*headPath)
		if err != nil {
			fmt.Fprintf(stderr, "Head run not found: %v\n", err)
			return ExitError
		}
		if base.Error != "" || base.Summary.TotalTasks == 0 {
			fmt.Fprintf(stderr, "Base run %s has no results\n", base.Name())
			return ExitError
		}
		if head.Error != "" || head.Summary.TotalTasks == 0 {
			fmt.Fprintf(stderr, "Head run %s has no results\n", head.Name())
			return ExitError
		}

		successDelta := head.SuccessRate() - base.SuccessRate()
		avgDelta := head.Summary.AvgTimeSeconds - base.Summary.AvgTimeSeconds

		fmt.Fprintf(stdout, "Base %s (%s/%s) success rate %.2f%% avg %.2fs\n",
			base.Name(), base.Metadata.Tier, base.Metadata.Mode, base.SuccessRate()*100, base.Summary.AvgTimeSeconds)
		fmt.Fprintf(stdout, "Head %s (%s/%s) success rate %.2f%% avg %.2fs\n",
			head.Name(), head.Metadata.Tier, head.Metadata.Mode, head.SuccessRate()*100, head.Summary.AvgTimeSeconds)
		fmt.Fprintf(stdout, "Delta success rate %+0.2f%% avg time %+0.2fs\n",
			successDelta*100, avgDelta)
		return ExitOK
	}
}
