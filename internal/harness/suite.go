package harness

import (
	"context"
	"time"

	"conclave/internal/catalog"
	"conclave/internal/config"
	"conclave/internal/council"
)

// noMatchMessage is the error recorded when a filter selects nothing.
const noMatchMessage = "No tasks match the specified criteria"

// SuiteParams selects what a run executes.
type SuiteParams struct {
	// Tasks overrides the catalog; the zero value runs the built-in set.
	Tasks    catalog.Set
	Tier     string
	Mode     council.Mode
	Category catalog.Category
	Observer RunObserver
	Deps     Deps
}

// RunSuite drives every selected task through the executor, one at a time,
// and assembles the persisted run. Per-task failures are folded into the
// results; the returned run never carries a task failure as an error.
func RunSuite(ctx context.Context, cfg config.Config, params SuiteParams) EvalRun {
	now := params.Deps.Now
	if now == nil {
		now = time.Now
	}
	tier := params.Tier
	if tier == "" {
		tier = config.TierStandard
	}
	mode := params.Mode
	if mode == "" {
		mode = council.ModeFull
	}
	observer := params.Observer
	if observer == nil {
		observer = NopObserver{}
	}

	set := params.Tasks
	if len(set.Tasks) == 0 {
		set = catalog.Builtin()
	}
	selected := set.Filter(params.Category)
	if len(selected.Tasks) == 0 {
		return EvalRun{Error: noMatchMessage}
	}

	total := len(selected.Tasks)
	observer.OnRunStart(tier, mode, total)
	for index, task := range selected.Tasks {
		observer.OnTaskEvent(TaskEvent{
			Index:      index + 1,
			Total:      total,
			TaskID:     task.ID,
			Category:   task.Category,
			Difficulty: task.Difficulty,
			Type:       TaskQueued,
			EmittedAt:  now(),
		})
	}

	// Tasks run strictly one at a time so per-task timings stay comparable
	// across tiers.
	results := make([]EvalResult, 0, total)
	for index, task := range selected.Tasks {
		observer.OnTaskEvent(TaskEvent{
			Index:      index + 1,
			Total:      total,
			TaskID:     task.ID,
			Category:   task.Category,
			Difficulty: task.Difficulty,
			Type:       TaskRunning,
			EmittedAt:  now(),
		})

		result := RunSingle(ctx, cfg, task, tier, mode, params.Deps)
		results = append(results, result)

		event := TaskEvent{
			Index:          index + 1,
			Total:          total,
			TaskID:         task.ID,
			Category:       task.Category,
			Difficulty:     task.Difficulty,
			Type:           TaskCompleted,
			ElapsedSeconds: result.ElapsedSeconds,
			EmittedAt:      now(),
		}
		if !result.Success {
			event.Type = TaskFailed
			event.Error = result.Error
		}
		observer.OnTaskEvent(event)
	}

	var categoryFilter *string
	if params.Category != "" {
		filter := string(params.Category)
		categoryFilter = &filter
	}

	run := EvalRun{
		Metadata: RunMetadata{
			Timestamp:      now(),
			Tier:           tier,
			Mode:           mode,
			CategoryFilter: categoryFilter,
			Chairman:       cfg.Council.Chairman,
		},
		Summary: summarize(results),
		Results: results,
	}
	observer.OnRunEnd(run)
	return run
}

// summarize derives the run summary from the accumulated results.
func summarize(results []EvalResult) RunSummary {
	summary := RunSummary{TotalTasks: len(results)}
	total := 0.0
	for _, result := range results {
		if result.Success {
			summary.Successful++
		} else {
			summary.Failed++
		}
		total += result.ElapsedSeconds
	}
	summary.TotalTimeSeconds = round2(total)
	if summary.TotalTasks > 0 {
		summary.AvgTimeSeconds = round2(total / float64(summary.TotalTasks))
	}
	return summary
}
