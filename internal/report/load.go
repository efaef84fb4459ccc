package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// LoadRun reads one persisted run file.
func LoadRun(path string) (Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Run{}, fmt.Errorf("read run: %w", err)
	}
	run := Run{Path: path}
	if err := json.Unmarshal(data, &run.EvalRun); err != nil {
		return Run{}, fmt.Errorf("parse run %s: %w", filepath.Base(path), err)
	}
	return run, nil
}

// LoadDir loads every eval_*.json file under dir, oldest run first. Files
// that do not follow the run naming scheme are ignored.
func LoadDir(dir string) ([]Run, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read run dir: %w", err)
	}
	runs := make([]Run, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !IsRunFile(entry.Name()) {
			continue
		}
		run, err := LoadRun(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	sort.SliceStable(runs, func(i, j int) bool {
		left, right := runs[i].Metadata.Timestamp, runs[j].Metadata.Timestamp
		if !left.Equal(right) {
			return left.Before(right)
		}
		return runs[i].Path < runs[j].Path
	})
	return runs, nil
}

// IsRunFile reports whether name follows the persisted run naming scheme.
func IsRunFile(name string) bool {
	return strings.HasPrefix(name, "eval_") && strings.HasSuffix(name, ".json")
}
