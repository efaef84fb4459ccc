package live

import (
	"time"

	"conclave/internal/catalog"
	"conclave/internal/council"
	"conclave/internal/harness"
)

// TaskRow is the view state for one task in the run.
type TaskRow struct {
	Index      int
	ID         string
	Category   catalog.Category
	Difficulty catalog.Difficulty
	Status     harness.TaskEventType
	StartedAt  time.Time
	FinishedAt time.Time
	Seconds    float64
	Error      string
}

// StatusCounts aggregates task rows by status.
type StatusCounts struct {
	Queued    int
	Running   int
	Completed int
	Failed    int
}

// Done reports how many tasks reached a terminal status.
func (c StatusCounts) Done() int {
	return c.Completed + c.Failed
}

// State is the complete state rendered by the live view.
type State struct {
	Tier      string
	Mode      council.Mode
	Total     int
	StartedAt time.Time
	LastEvent string
	Rows      []TaskRow
	Counts    StatusCounts
}
