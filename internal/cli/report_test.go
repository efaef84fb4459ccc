package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestReportCommandWritesHTML(t *testing.T) {
	dir := t.TempDir()
	savedRunFile(t, dir, "standard", time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC), 2, 3, 0.4)
	outPath := filepath.Join(t.TempDir(), "report.html")

	cmd := findCommand("report")
	var stdout, stderr bytes.Buffer
	code := cmd.Run([]string{"--input", dir, "--output", outPath}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("exit = %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Report written to "+outPath) {
		t.Fatalf("stdout = %q", stdout.String())
	}
	html, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	for _, token := range []string{"<table", "eval_standard_full_20250314_092653.json", "66.67%"} {
		if !strings.Contains(string(html), token) {
			t.Fatalf("report missing %q", token)
		}
	}
}

func TestReportCommandDefaultOutputPath(t *testing.T) {
	dir := t.TempDir()
	savedRunFile(t, dir, "standard", time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC), 1, 1, 0.5)

	cmd := findCommand("report")
	var stdout, stderr bytes.Buffer
	code := cmd.Run([]string{"--input", dir}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("exit = %d, stderr: %s", code, stderr.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "report.html")); err != nil {
		t.Fatalf("default report path: %v", err)
	}
}

func TestReportCommandNoRuns(t *testing.T) {
	dir := t.TempDir()

	cmd := findCommand("report")
	var stdout, stderr bytes.Buffer
	code := cmd.Run([]string{"--input", dir}, &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("exit = %d, want %d", code, ExitError)
	}
	if !strings.Contains(stderr.String(), "No runs found") {
		t.Fatalf("stderr = %q", stderr.String())
	}
}
