package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/google/uuid"

	"conclave/internal/report"
)

// Open opens (or creates) the DuckDB database at path.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		return nil, errors.New("duckdb: path is required")
	}
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	return db, nil
}

// IngestRun inserts one persisted run and its results, keyed by the run
// fingerprint. Re-ingesting an already stored run is a no-op; the returned
// bool reports whether a new row was written.
func IngestRun(ctx context.Context, db *sql.DB, run report.Run) (string, bool, error) {
	if db == nil {
		return "", false, errors.New("duckdb: db is nil")
	}
	if run.Error != "" {
		return "", false, fmt.Errorf("duckdb: run %s has no results: %s", run.Name(), run.Error)
	}
	key, err := RunKey(run.EvalRun)
	if err != nil {
		return "", false, err
	}

	id := uuid.NewString()
	if _, err := db.ExecContext(
		ctx,
		`INSERT INTO runs (
		  run_id, run_key, source_file, ts_utc, tier, mode, category_filter, chairman,
		  total_tasks, successful, failed, total_time_seconds, avg_time_seconds, ingested_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, now())
		ON CONFLICT (run_key) DO NOTHING`,
		id,
		key,
		run.Name(),
		run.Metadata.Timestamp,
		run.Metadata.Tier,
		string(run.Metadata.Mode),
		nullableString(run.Metadata.CategoryFilter),
		run.Metadata.Chairman,
		run.Summary.TotalTasks,
		run.Summary.Successful,
		run.Summary.Failed,
		run.Summary.TotalTimeSeconds,
		run.Summary.AvgTimeSeconds,
	); err != nil {
		return "", false, fmt.Errorf("insert run: %w", err)
	}

	runID, err := lookupID(ctx, db, "runs", "run_id", "run_key", key)
	if err != nil {
		return "", false, fmt.Errorf("lookup run id: %w", err)
	}
	if runID != id {
		// Conflict path: the run was already ingested.
		return runID, false, nil
	}

	for _, result := range run.Results {
		var modelsQueried, consensus, detail interface{}
		if result.Result != nil {
			modelsQueried = result.Result.ModelsQueried
			if result.Result.Consensus != nil {
				consensus = *result.Result.Consensus
			}
			canonical, err := CanonicalJSON(result.Result)
			if err != nil {
				return "", false, fmt.Errorf("canonicalize result %s: %w", result.TaskID, err)
			}
			detail = string(canonical)
		}
		var resultErr interface{}
		if result.Error != "" {
			resultErr = result.Error
		}
		if _, err := db.ExecContext(
			ctx,
			`INSERT INTO results (
			  result_id, run_id, task_id, category, difficulty, tier, mode,
			  success, elapsed_seconds, models_queried, consensus, error, detail
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			uuid.NewString(),
			runID,
			result.TaskID,
			string(result.Category),
			string(result.Difficulty),
			result.Tier,
			string(result.Mode),
			result.Success,
			result.ElapsedSeconds,
			modelsQueried,
			consensus,
			resultErr,
			detail,
		); err != nil {
			return "", false, fmt.Errorf("insert result %s: %w", result.TaskID, err)
		}
	}
	return runID, true, nil
}

// IngestStats summarizes one ingest pass over a run directory.
type IngestStats struct {
	Files     int
	Ingested  int
	Skipped   int
	NoResults int
}

// IngestDir loads every run file under dir and ingests each one. Runs already
// present are counted as skipped; error-only runs carry nothing worth storing
// and are counted separately.
func IngestDir(ctx context.Context, db *sql.DB, dir string) (IngestStats, error) {
	runs, err := report.LoadDir(dir)
	if err != nil {
		return IngestStats{}, err
	}
	stats := IngestStats{}
	for _, run := range runs {
		stats.Files++
		if run.Error != "" {
			stats.NoResults++
			continue
		}
		_, inserted, err := IngestRun(ctx, db, run)
		if err != nil {
			return stats, fmt.Errorf("ingest %s: %w", run.Name(), err)
		}
		if inserted {
			stats.Ingested++
		} else {
			stats.Skipped++
		}
	}
	return stats, nil
}

// nullableString converts an optional string pointer into a SQL argument.
func nullableString(value *string) interface{} {
	if value == nil {
		return nil
	}
	if *value == "" {
		return nil
	}
	return *value
}

// lookupID fetches a single ID column value for a row keyed by keyColumn.
func lookupID(ctx context.Context, db *sql.DB, table, idColumn, keyColumn, key string) (string, error) {
	query := fmt.Sprintf("SELECT CAST(%s AS VARCHAR) FROM %s WHERE %s = ?", idColumn, table, keyColumn)
	var id string
	if err := db.QueryRowContext(ctx, query, key).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}
