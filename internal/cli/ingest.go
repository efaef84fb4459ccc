package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"conclave/internal/config"
	"conclave/internal/duckdb"
)

// defaultDBFile is where ingest writes when --db is not given.
const defaultDBFile = "conclave.duckdb"

// ingestRuns is a test seam for database ingestion.
var ingestRuns = defaultIngestRuns

func defaultIngestRuns(ctx context.Context, dbPath, inputDir string) (duckdb.IngestStats, error) {
	db, err := duckdb.Open(dbPath)
	if err != nil {
		return duckdb.IngestStats{}, err
	}
	defer func() { _ = db.Close() }()
	if err := duckdb.EnsureSchema(db); err != nil {
		return duckdb.IngestStats{}, err
	}
	return duckdb.IngestDir(ctx, db, inputDir)
}

// runIngest builds the handler for the ingest command.
func runIngest(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		inputDir := fs.String("input", "", "Directory containing saved runs (default: config output dir)")
		dbPath := fs.String("db", defaultDBFile, "DuckDB database file")
		configPath := fs.String("config", "", "Path to config file (default: search for .conclave/config.yml)")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		dir, err := resolveRunsDir(*inputDir, *configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to resolve input: %v\n", err)
			return ExitError
		}

		stats, err := ingestRuns(context.Background(), *dbPath, dir)
		if err != nil {
			fmt.Fprintf(stderr, "Ingest failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Scanned %d run files: %d ingested, %d already present, %d without results\n",
			stats.Files, stats.Ingested, stats.Skipped, stats.NoResults)
		fmt.Fprintf(stdout, "Database: %s\n", *dbPath)
		return ExitOK
	}
}

// resolveRunsDir picks the saved-runs directory from flag or config.
func resolveRunsDir(inputDir, configPath string) (string, error) {
	if inputDir != "" {
		return inputDir, nil
	}
	cfg, err := config.Resolve(configPath)
	if err != nil {
		return "", err
	}
	return resolveOutputDir("", cfg), nil
}
