package harness

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"conclave/internal/council"
)

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiDim   = "\x1b[2m"
	ansiGray  = "\x1b[90m"
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiBlue  = "\x1b[34m"
)

type consoleStyle int

const (
	styleDefault consoleStyle = iota
	styleHeading
	styleSuccess
	styleFailure
	styleMuted
)

type consolePalette struct {
	enabled bool
}

func paletteFor(writer io.Writer, noColor bool) consolePalette {
	if noColor {
		return consolePalette{enabled: false}
	}
	return consolePalette{enabled: shouldUseStyling(writer)}
}

func shouldUseStyling(writer io.Writer) bool {
	if writer == nil {
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	if strings.EqualFold(os.Getenv("CLICOLOR"), "0") {
		return false
	}
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := writer.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}

func (p consolePalette) apply(style consoleStyle, text string) string {
	if !p.enabled {
		return text
	}
	switch style {
	case styleHeading:
		return ansiBold + ansiBlue + text + ansiReset
	case styleSuccess:
		return ansiBold + ansiGreen + text + ansiReset
	case styleFailure:
		return ansiBold + ansiRed + text + ansiReset
	case styleMuted:
		return ansiDim + ansiGray + text + ansiReset
	default:
		return text
	}
}

// ConsoleObserver prints run progress as plain lines, one per event.
type ConsoleObserver struct {
	Writer  io.Writer
	NoColor bool
}

func (o *ConsoleObserver) OnRunStart(tier string, mode council.Mode, total int) {
	palette := paletteFor(o.Writer, o.NoColor)
	fmt.Fprintf(o.Writer, "%s\n", palette.apply(styleHeading, "Conclave Eval"))
	fmt.Fprintf(o.Writer, "   Tier: %s | Mode: %s | Tasks: %d\n", tier, mode, total)
	fmt.Fprintln(o.Writer, strings.Repeat("-", 50))
}

func (o *ConsoleObserver) OnTaskEvent(event TaskEvent) {
	palette := paletteFor(o.Writer, o.NoColor)
	switch event.Type {
	case TaskRunning:
		fmt.Fprintf(o.Writer, "\n[%d/%d] Running: %s (%s)\n", event.Index, event.Total, event.TaskID, event.Category)
	case TaskCompleted:
		line := fmt.Sprintf("✓ Completed in %ss", formatSeconds(event.ElapsedSeconds))
		fmt.Fprintf(o.Writer, "   %s\n", palette.apply(styleSuccess, line))
	case TaskFailed:
		line := fmt.Sprintf("✗ Failed: %s", event.Error)
		fmt.Fprintf(o.Writer, "   %s\n", palette.apply(styleFailure, line))
	}
}

func (o *ConsoleObserver) OnRunEnd(run EvalRun) {
	if run.Error != "" {
		palette := paletteFor(o.Writer, o.NoColor)
		fmt.Fprintf(o.Writer, "%s\n", palette.apply(styleFailure, run.Error))
		return
	}
	PrintSummary(o.Writer, o.NoColor, run)
}

// PrintSummary writes the post-run summary block.
func PrintSummary(writer io.Writer, noColor bool, run EvalRun) {
	palette := paletteFor(writer, noColor)
	rule := strings.Repeat("=", 50)

	fmt.Fprintf(writer, "\n%s\n", rule)
	fmt.Fprintf(writer, "%s\n", palette.apply(styleHeading, "EVAL SUMMARY"))
	fmt.Fprintf(writer, "%s\n", rule)
	fmt.Fprintf(writer, "Tier: %s | Mode: %s\n", run.Metadata.Tier, run.Metadata.Mode)
	chairman := run.Metadata.Chairman
	if chairman == "" {
		chairman = "N/A"
	}
	fmt.Fprintf(writer, "Chairman: %s\n", chairman)
	fmt.Fprintf(writer, "Tasks: %d/%d successful\n", run.Summary.Successful, run.Summary.TotalTasks)
	fmt.Fprintf(writer, "Total time: %ss\n", formatSeconds(run.Summary.TotalTimeSeconds))
	fmt.Fprintf(writer, "Avg per task: %ss\n", formatSeconds(run.Summary.AvgTimeSeconds))

	fmt.Fprintf(writer, "\nResults by task:\n")
	for _, result := range run.Results {
		status := palette.apply(styleSuccess, "✓")
		if !result.Success {
			status = palette.apply(styleFailure, "✗")
		}
		fmt.Fprintf(writer, "  %s %s (%s) - %ss\n", status, result.TaskID, result.Difficulty, formatSeconds(result.ElapsedSeconds))
	}
}

// formatSeconds renders a rounded duration without trailing zeros.
func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64)
}
