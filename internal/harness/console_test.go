package harness

import (
	"bytes"
	"strings"
	"testing"

	"conclave/internal/catalog"
	"conclave/internal/council"
)

func TestConsoleObserverProgress(t *testing.T) {
	var buf bytes.Buffer
	observer := &ConsoleObserver{Writer: &buf, NoColor: true}

	observer.OnRunStart("premium", council.ModeQuick, 2)
	observer.OnTaskEvent(TaskEvent{
		Index: 1, Total: 2, TaskID: "math_arithmetic", Category: catalog.CategoryMath, Type: TaskRunning,
	})
	observer.OnTaskEvent(TaskEvent{
		Index: 1, Total: 2, TaskID: "math_arithmetic", Type: TaskCompleted, ElapsedSeconds: 0.13,
	})
	observer.OnTaskEvent(TaskEvent{
		Index: 2, Total: 2, TaskID: "code_debug", Category: catalog.CategoryCode, Type: TaskRunning,
	})
	observer.OnTaskEvent(TaskEvent{
		Index: 2, Total: 2, TaskID: "code_debug", Type: TaskFailed, Error: "stage 1: all council models failed",
	})

	out := buf.String()
	for _, want := range []string{
		"Conclave Eval",
		"Tier: premium | Mode: quick | Tasks: 2",
		"[1/2] Running: math_arithmetic (math)",
		"✓ Completed in 0.13s",
		"[2/2] Running: code_debug (code)",
		"✗ Failed: stage 1: all council models failed",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("NoColor output must not contain escape codes:\n%q", out)
	}
}

func TestConsoleObserverQueuedIsSilent(t *testing.T) {
	var buf bytes.Buffer
	observer := &ConsoleObserver{Writer: &buf, NoColor: true}
	observer.OnTaskEvent(TaskEvent{Index: 1, Total: 1, TaskID: "math_arithmetic", Type: TaskQueued})
	if buf.Len() != 0 {
		t.Fatalf("queued events must print nothing, got %q", buf.String())
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	run := sampleRun()
	PrintSummary(&buf, true, run)

	out := buf.String()
	for _, want := range []string{
		"EVAL SUMMARY",
		"Tier: standard | Mode: full",
		"Chairman: google/gemini-2.5-pro",
		"Tasks: 1/2 successful",
		"Total time: 0.26s",
		"Avg per task: 0.13s",
		"Results by task:",
		"✓ math_arithmetic (easy) - 0.13s",
		"✗ math_word_problem (medium) - 0.13s",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestPrintSummaryChairmanFallback(t *testing.T) {
	var buf bytes.Buffer
	run := sampleRun()
	run.Metadata.Chairman = ""
	PrintSummary(&buf, true, run)
	if !strings.Contains(buf.String(), "Chairman: N/A") {
		t.Fatalf("expected N/A chairman, got:\n%s", buf.String())
	}
}

func TestConsoleObserverRunError(t *testing.T) {
	var buf bytes.Buffer
	observer := &ConsoleObserver{Writer: &buf, NoColor: true}
	observer.OnRunEnd(EvalRun{Error: "No tasks match the specified criteria"})

	out := buf.String()
	if !strings.Contains(out, "No tasks match the specified criteria") {
		t.Fatalf("expected the run error printed, got:\n%s", out)
	}
	if strings.Contains(out, "EVAL SUMMARY") {
		t.Fatalf("error runs must not print a summary:\n%s", out)
	}
}

func TestFormatSeconds(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0.13, "0.13"},
		{1, "1"},
		{2.5, "2.5"},
		{0, "0"},
		{12.06, "12.06"},
	}
	for _, tc := range cases {
		if got := formatSeconds(tc.in); got != tc.want {
			t.Fatalf("formatSeconds(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
