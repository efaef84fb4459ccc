package live

import (
	"conclave/internal/council"
	"conclave/internal/harness"
)

// EventKind identifies the kind of lifecycle event sent to the live view.
type EventKind int

const (
	// EventRunStart announces tier, mode and task count before execution.
	EventRunStart EventKind = iota
	// EventTask carries a single task progress update.
	EventTask
	// EventRunEnd signals that the run finished and the view should quit.
	EventRunEnd
)

// Event is the message type consumed by the live view.
type Event struct {
	Kind EventKind

	// Run-level fields, set for EventRunStart.
	Tier  string
	Mode  council.Mode
	Total int

	// Task is set for EventTask.
	Task harness.TaskEvent
}
