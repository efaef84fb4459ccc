// Package report loads persisted eval runs back from disk and renders them
// for longitudinal comparison.
package report

import (
	"path/filepath"

	"conclave/internal/catalog"
	"conclave/internal/harness"
)

// Run is one persisted eval run read back from its file.
type Run struct {
	Path string
	harness.EvalRun
}

// Name returns the run's base filename.
func (r Run) Name() string {
	return filepath.Base(r.Path)
}

// SuccessRate returns the fraction of tasks that succeeded, in [0, 1].
func (r Run) SuccessRate() float64 {
	if r.Summary.TotalTasks == 0 {
		return 0
	}
	return float64(r.Summary.Successful) / float64(r.Summary.TotalTasks)
}

// CategoryStats aggregates one category's results within a run.
type CategoryStats struct {
	Category   catalog.Category
	Total      int
	Successful int
	AvgSeconds float64
}

// ByCategory groups the run's results per category, in result order.
func (r Run) ByCategory() []CategoryStats {
	indexes := map[catalog.Category]int{}
	stats := make([]CategoryStats, 0)
	totals := map[catalog.Category]float64{}
	for _, result := range r.Results {
		index, seen := indexes[result.Category]
		if !seen {
			index = len(stats)
			indexes[result.Category] = index
			stats = append(stats, CategoryStats{Category: result.Category})
		}
		stats[index].Total++
		if result.Success {
			stats[index].Successful++
		}
		totals[result.Category] += result.ElapsedSeconds
	}
	for i := range stats {
		stats[i].AvgSeconds = totals[stats[i].Category] / float64(stats[i].Total)
	}
	return stats
}
