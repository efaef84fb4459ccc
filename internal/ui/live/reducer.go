package live

import (
	"fmt"

	"conclave/internal/harness"
)

// Reduce applies a task event to the view state and returns the new state.
func Reduce(state State, event harness.TaskEvent) State {
	if event.Index < 1 {
		return state
	}
	state = ensureRow(state, event.Index)
	state = applyTaskEvent(state, event)
	state.Counts = recount(state.Rows)
	if message := formatLastEvent(event); message != "" {
		state.LastEvent = message
	}
	return state
}

// ensureRow grows the row slice so that the 1-based index is addressable.
func ensureRow(state State, index int) State {
	for len(state.Rows) < index {
		state.Rows = append(state.Rows, TaskRow{
			Index:  len(state.Rows) + 1,
			Status: harness.TaskQueued,
		})
	}
	return state
}

func applyTaskEvent(state State, event harness.TaskEvent) State {
	row := state.Rows[event.Index-1]
	row.Index = event.Index
	if event.TaskID != "" {
		row.ID = event.TaskID
	}
	if event.Category != "" {
		row.Category = event.Category
	}
	if event.Difficulty != "" {
		row.Difficulty = event.Difficulty
	}
	row.Status = event.Type
	switch event.Type {
	case harness.TaskRunning:
		row.StartedAt = event.EmittedAt
	case harness.TaskCompleted, harness.TaskFailed:
		row.FinishedAt = event.EmittedAt
		row.Seconds = event.ElapsedSeconds
		row.Error = event.Error
	}
	state.Rows[event.Index-1] = row
	if state.Total < event.Total {
		state.Total = event.Total
	}
	return state
}

func recount(rows []TaskRow) StatusCounts {
	var counts StatusCounts
	for _, row := range rows {
		switch row.Status {
		case harness.TaskRunning:
			counts.Running++
		case harness.TaskCompleted:
			counts.Completed++
		case harness.TaskFailed:
			counts.Failed++
		default:
			counts.Queued++
		}
	}
	return counts
}

func formatLastEvent(event harness.TaskEvent) string {
	name := event.TaskID
	if name == "" {
		name = fmt.Sprintf("#%d", event.Index)
	}
	switch event.Type {
	case harness.TaskRunning:
		return fmt.Sprintf("%s running", name)
	case harness.TaskCompleted:
		return fmt.Sprintf("%s completed in %ss", name, formatSeconds(event.ElapsedSeconds))
	case harness.TaskFailed:
		return fmt.Sprintf("%s failed: %s", name, truncateError(event.Error))
	default:
		return ""
	}
}
