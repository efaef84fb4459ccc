package live

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"

	"conclave/internal/harness"
)

const (
	colorQueued    = "8"
	colorRunning   = "12"
	colorCompleted = "10"
	colorFailed    = "9"
)

const maxErrorWidth = 40

func stylize(text, color string, noColor bool) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
}

func formatTaskName(row TaskRow) string {
	if row.ID != "" {
		return row.ID
	}
	return fmt.Sprintf("#%d", row.Index)
}

func formatStatus(row TaskRow, noColor bool) string {
	switch row.Status {
	case harness.TaskRunning:
		return stylize("running", colorRunning, noColor)
	case harness.TaskCompleted:
		return stylize("completed", colorCompleted, noColor)
	case harness.TaskFailed:
		text := "failed"
		if row.Error != "" {
			text = "failed: " + truncateError(row.Error)
		}
		return stylize(text, colorFailed, noColor)
	default:
		return stylize("queued", colorQueued, noColor)
	}
}

func formatRowDuration(row TaskRow, now time.Time) string {
	switch row.Status {
	case harness.TaskCompleted, harness.TaskFailed:
		return formatSeconds(row.Seconds) + "s"
	case harness.TaskRunning:
		if row.StartedAt.IsZero() {
			return ""
		}
		elapsed := now.Sub(row.StartedAt)
		if elapsed < 0 {
			elapsed = 0
		}
		return elapsed.Truncate(100 * time.Millisecond).String()
	default:
		return ""
	}
}

func formatElapsed(start, now time.Time) string {
	if start.IsZero() {
		return "0s"
	}
	elapsed := now.Sub(start)
	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed.Truncate(time.Second).String()
}

// formatSeconds renders a rounded duration without trailing zeros.
func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64)
}

func truncateError(text string) string {
	runes := []rune(text)
	if len(runes) <= maxErrorWidth {
		return text
	}
	return string(runes[:maxErrorWidth]) + "..."
}
