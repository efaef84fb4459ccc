package live

import (
	"fmt"
	"time"
)

func renderHeader(state State, now time.Time, noColor bool) string {
	title := stylize("Conclave Eval", colorRunning, noColor)
	return fmt.Sprintf("%s | Tier: %s | Mode: %s | Elapsed: %s",
		title, state.Tier, state.Mode, formatElapsed(state.StartedAt, now))
}

func renderSummary(state State, noColor bool) string {
	counts := state.Counts
	total := state.Total
	if total < len(state.Rows) {
		total = len(state.Rows)
	}
	parts := fmt.Sprintf("%s %d | %s %d | %s %d | %s %d",
		stylize("queued", colorQueued, noColor), counts.Queued,
		stylize("running", colorRunning, noColor), counts.Running,
		stylize("completed", colorCompleted, noColor), counts.Completed,
		stylize("failed", colorFailed, noColor), counts.Failed,
	)
	return fmt.Sprintf("Tasks %d/%d | %s", counts.Done(), total, parts)
}

func renderFooter(state State) string {
	if state.LastEvent == "" {
		return "Waiting for events..."
	}
	return "Last: " + state.LastEvent
}
