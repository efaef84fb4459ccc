package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"conclave/internal/catalog"
	"conclave/internal/config"
	"conclave/internal/council"
	"conclave/internal/harness"
	"conclave/internal/ui/live"
)

// runSuite is a test seam for suite execution.
var runSuite = harness.RunSuite

// saveRun is a test seam for result persistence.
var saveRun = harness.Save

// newPipeline is a test seam for council construction.
var newPipeline = defaultPipeline

// startLive is a test seam for launching the live UI.
var startLive = func(stdout io.Writer, opts live.Options) liveController {
	return live.Start(stdout, opts)
}

// liveController is the slice of live.Controller the run command drives.
type liveController interface {
	harness.RunObserver
	Close()
	Wait()
}

func defaultPipeline(cfg config.Config, apiKey string) (harness.Pipeline, error) {
	client, err := council.NewClient(apiKey, cfg.Council.BaseURL, nil)
	if err != nil {
		return nil, err
	}
	client.MaxTokens = cfg.Council.MaxTokens
	client.Temperature = cfg.Council.Temperature
	return council.New(client), nil
}

// runRun builds the handler for the run command.
func runRun(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		tier := fs.String("tier", config.TierStandard, "Council tier (premium|standard|budget)")
		mode := fs.String("mode", string(council.ModeFull), "Eval mode (quick|ranked|full)")
		category := fs.String("category", "", "Run only tasks in this category")
		outputDir := fs.String("output", "", "Output directory for results (default: config output dir)")
		noSave := fs.Bool("no-save", false, "Don't save results to disk")
		tasksPath := fs.String("tasks", "", "Path to a custom task set (JSON or YAML)")
		configPath := fs.String("config", "", "Path to config file (default: search for .conclave/config.yml)")
		uiMode := fs.String("ui", "auto", "Progress UI (auto|live|plain)")
		noColor := fs.Bool("no-color", false, "Disable ANSI colors")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		if !council.Mode(*mode).Valid() {
			fmt.Fprintf(stderr, "Invalid mode %q (expected quick|ranked|full)\n", *mode)
			return ExitUsage
		}
		decision, err := resolveUIMode(*uiMode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}

		apiKey := os.Getenv(config.EnvAPIKey)
		if apiKey == "" {
			fmt.Fprintf(stderr, "Error: %s not set\n", config.EnvAPIKey)
			return ExitError
		}

		cfg, err := config.Resolve(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}

		set := catalog.Builtin()
		if *tasksPath != "" {
			set, err = catalog.Load(*tasksPath)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to load tasks: %v\n", err)
				return ExitError
			}
		}
		if ids := fs.Args(); len(ids) > 0 {
			set, err = set.Pick(ids)
			if err != nil {
				fmt.Fprintf(stderr, "Invalid task selection: %v\n", err)
				return ExitUsage
			}
		}

		pipeline, err := newPipeline(cfg, apiKey)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to build council: %v\n", err)
			return ExitError
		}

		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}
		var controller liveController
		var observer harness.RunObserver
		if decision.useLive {
			controller = startLive(stdout, live.Options{NoColor: *noColor})
			observer = controller
		} else {
			observer = &harness.ConsoleObserver{Writer: stdout, NoColor: *noColor}
		}

		run := runSuite(context.Background(), cfg, harness.SuiteParams{
			Tasks:    set,
			Tier:     *tier,
			Mode:     council.Mode(*mode),
			Category: catalog.Category(*category),
			Observer: observer,
			Deps:     harness.Deps{Pipeline: pipeline},
		})
		if controller != nil {
			controller.Close()
			controller.Wait()
		}

		if run.Error != "" {
			fmt.Fprintln(stdout, run.Error)
			return ExitOK
		}
		if controller != nil {
			// The live table shows progress only; the summary block goes to
			// scrollback once the program has released the terminal.
			harness.PrintSummary(stdout, *noColor, run)
		}

		if *noSave {
			return ExitOK
		}
		path, err := saveRun(run, resolveOutputDir(*outputDir, cfg), time.Now())
		if err != nil {
			fmt.Fprintf(stderr, "Failed to save results: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "\nResults saved to: %s\n", path)
		return ExitOK
	}
}

// resolveOutputDir picks the results directory from flag, config, default.
func resolveOutputDir(flagValue string, cfg config.Config) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg.Output.Dir != "" {
		return cfg.Output.Dir
	}
	return config.DefaultOutputDir
}
