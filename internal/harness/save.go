package harness

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// filenameStamp is the whole-second timestamp layout used in run filenames.
const filenameStamp = "20060102_150405"

// Save writes a run as indented JSON under outputDir and returns the file
// path. Filenames carry the tier, mode, and a whole-second timestamp; a
// collision within the same second overwrites the earlier file.
func Save(run EvalRun, outputDir string, now time.Time) (string, error) {
	if outputDir == "" {
		return "", fmt.Errorf("output directory is required")
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	tier := run.Metadata.Tier
	if tier == "" {
		tier = "unknown"
	}
	mode := string(run.Metadata.Mode)
	if mode == "" {
		mode = "unknown"
	}
	filename := fmt.Sprintf("eval_%s_%s_%s.json", tier, mode, now.Format(filenameStamp))
	path := filepath.Join(outputDir, filename)

	payload, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal run: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return path, nil
}
