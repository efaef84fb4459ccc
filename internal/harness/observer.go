package harness

import (
	"time"

	"conclave/internal/catalog"
	"conclave/internal/council"
)

// TaskEventType identifies a task status update for observers.
type TaskEventType string

const (
	// TaskQueued marks a task selected but not yet started.
	TaskQueued TaskEventType = "queued"
	// TaskRunning marks a task whose council call is in flight.
	TaskRunning TaskEventType = "running"
	// TaskCompleted marks a task that finished successfully.
	TaskCompleted TaskEventType = "completed"
	// TaskFailed marks a task whose council call failed.
	TaskFailed TaskEventType = "failed"
)

// TaskEvent carries a single status update for a task.
type TaskEvent struct {
	Index          int
	Total          int
	TaskID         string
	Category       catalog.Category
	Difficulty     catalog.Difficulty
	Type           TaskEventType
	ElapsedSeconds float64
	Error          string
	EmittedAt      time.Time
}

// RunObserver receives run lifecycle events for UI or logging.
type RunObserver interface {
	// OnRunStart signals the start of a run.
	OnRunStart(tier string, mode council.Mode, total int)
	// OnTaskEvent delivers a task status update.
	OnTaskEvent(event TaskEvent)
	// OnRunEnd signals run completion.
	OnRunEnd(run EvalRun)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) OnRunStart(string, council.Mode, int) {}
func (NopObserver) OnTaskEvent(TaskEvent)                {}
func (NopObserver) OnRunEnd(EvalRun)                     {}
