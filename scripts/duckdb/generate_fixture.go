// Command generate_fixture builds a deterministic DuckDB database from
// synthetic eval runs, so the report server and its queries can be exercised
// without live council traffic.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"conclave/internal/catalog"
	"conclave/internal/config"
	"conclave/internal/council"
	"conclave/internal/duckdb"
	"conclave/internal/harness"
)

func main() {
	outPath := flag.String("out", "", "output duckdb file path")
	runCount := flag.Int("runs", 6, "number of synthetic runs to generate")
	runsDir := flag.String("runs-dir", "", "keep the generated run files in this directory")
	flag.Parse()
	if *outPath == "" || *runCount < 1 {
		fmt.Fprintln(os.Stderr, "usage: generate_fixture --out <db.duckdb> [--runs N] [--runs-dir <dir>]")
		os.Exit(2)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	if err := generateFixture(ctx, *outPath, *runCount, *runsDir); err != nil {
		fmt.Fprintf(os.Stderr, "generate fixture: %v\n", err)
		os.Exit(1)
	}
}

func generateFixture(ctx context.Context, outPath string, runCount int, runsDir string) error {
	dir := runsDir
	if dir == "" {
		tmp, err := os.MkdirTemp("", "conclave-fixture-")
		if err != nil {
			return err
		}
		defer os.RemoveAll(tmp)
		dir = tmp
	} else if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tasks := catalog.Builtin()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < runCount; i++ {
		run := fixtureRun(tasks, i, base.Add(time.Duration(i)*time.Hour))
		if _, err := harness.Save(run, dir, run.Metadata.Timestamp); err != nil {
			return err
		}
	}
	if err := removeIfExists(outPath); err != nil {
		return err
	}
	if err := os.MkdirAll(dirOf(outPath), 0o755); err != nil {
		return err
	}
	db, err := duckdb.Open(outPath)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := duckdb.EnsureSchema(db); err != nil {
		return err
	}
	stats, err := duckdb.IngestDir(ctx, db, dir)
	if err != nil {
		return err
	}
	fmt.Printf("Generated %d runs, ingested %d into %s\n", stats.Files, stats.Ingested, outPath)
	return nil
}

// fixtureRun fabricates one completed run. Index drives the tier, mode, task
// coverage, and failure pattern so repeated generations produce identical
// files.
func fixtureRun(tasks catalog.Set, index int, stamp time.Time) harness.EvalRun {
	tiers := []string{config.TierStandard, config.TierPremium}
	modes := []council.Mode{council.ModeQuick, council.ModeRanked, council.ModeFull}
	tier := tiers[index%len(tiers)]
	mode := modes[index%len(modes)]
	count := 4 + index%3
	if count > len(tasks.Tasks) {
		count = len(tasks.Tasks)
	}
	run := harness.EvalRun{
		Metadata: harness.RunMetadata{
			Timestamp: stamp,
			Tier:      tier,
			Mode:      mode,
			Chairman:  config.DefaultChairman,
		},
	}
	var totalSeconds float64
	for taskIndex, task := range tasks.Tasks[:count] {
		elapsed := 0.5 + 0.25*float64((index+taskIndex)%5)
		result := harness.EvalResult{
			TaskID:         task.ID,
			Category:       task.Category,
			Difficulty:     task.Difficulty,
			Tier:           tier,
			Mode:           mode,
			ElapsedSeconds: elapsed,
			Question:       task.Question,
			Expected:       task.ExpectedAnswer,
			EvalCriteria:   task.EvalCriteria,
		}
		if (index+taskIndex)%5 == 4 {
			result.Error = "council request timed out"
			run.Summary.Failed++
		} else {
			result.Success = true
			result.Result = fixtureCouncilResult(tier, mode, task.ID)
			run.Summary.Successful++
		}
		totalSeconds += elapsed
		run.Results = append(run.Results, result)
	}
	run.Summary.TotalTasks = len(run.Results)
	run.Summary.TotalTimeSeconds = totalSeconds
	if run.Summary.TotalTasks > 0 {
		run.Summary.AvgTimeSeconds = totalSeconds / float64(run.Summary.TotalTasks)
	}
	return run
}

func fixtureCouncilResult(tier string, mode council.Mode, taskID string) *harness.CouncilResult {
	result := &harness.CouncilResult{
		Tier:          tier,
		ModelsQueried: 2,
		Responses: []harness.Response{
			{Model: "fixture/model-a", Content: "Answer for " + taskID + " from model-a."},
			{Model: "fixture/model-b", Content: "Answer for " + taskID + " from model-b."},
		},
	}
	if mode == council.ModeRanked || mode == council.ModeFull {
		result.Rankings = map[string]council.AggregateRank{
			"fixture/model-a": {AverageRank: 1.0, Votes: 2},
			"fixture/model-b": {AverageRank: 2.0, Votes: 2},
		}
	}
	if mode == council.ModeFull {
		synthesis := "Synthesized answer for " + taskID + "."
		chairman := config.DefaultChairman
		result.Synthesis = &synthesis
		result.Chairman = &chairman
	}
	return result
}

// dirOf returns the parent directory for a file path.
func dirOf(path string) string {
	if path == "" {
		return "."
	}
	if idx := len(path) - 1; idx >= 0 && path[idx] == os.PathSeparator {
		return path
	}
	return filepath.Dir(path)
}

// removeIfExists deletes a previous fixture database so generation always
// starts fresh.
func removeIfExists(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove existing fixture: %w", err)
		}
		return nil
	}
	if os.IsNotExist(err) {
		return nil
	}
	return fmt.Errorf("stat fixture: %w", err)
}
