package duckdb_test

import (
	"testing"
	"time"

	"conclave/internal/catalog"
	"conclave/internal/council"
	"conclave/internal/duckdb"
	"conclave/internal/harness"
)

// TestCanonicalJSONStable verifies canonical JSON output ignores map key order.
func TestCanonicalJSONStable(t *testing.T) {
	left, err := duckdb.CanonicalJSON(map[string]interface{}{
		"tier": "standard",
		"rankings": map[string]interface{}{
			"m/b": 2.0,
			"m/a": 1.0,
		},
	})
	if err != nil {
		t.Fatalf("canonical json: %v", err)
	}
	right, err := duckdb.CanonicalJSON(map[string]interface{}{
		"rankings": map[string]interface{}{
			"m/a": 1.0,
			"m/b": 2.0,
		},
		"tier": "standard",
	})
	if err != nil {
		t.Fatalf("canonical json: %v", err)
	}
	if string(left) != string(right) {
		t.Fatalf("canonical json mismatch: %s vs %s", left, right)
	}
}

// TestRunKeyDeterministic verifies the run fingerprint keys on metadata and
// summary only.
func TestRunKeyDeterministic(t *testing.T) {
	base := harness.EvalRun{
		Metadata: harness.RunMetadata{
			Timestamp: time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
			Tier:      "standard",
			Mode:      council.ModeFull,
			Chairman:  "google/gemini-2.5-pro",
		},
		Summary: harness.RunSummary{TotalTasks: 1, Successful: 1},
	}

	key1, err := duckdb.RunKey(base)
	if err != nil {
		t.Fatalf("run key: %v", err)
	}

	withResults := base
	withResults.Results = []harness.EvalResult{{TaskID: "math_arithmetic", Category: catalog.CategoryMath}}
	key2, err := duckdb.RunKey(withResults)
	if err != nil {
		t.Fatalf("run key: %v", err)
	}
	if key1 != key2 {
		t.Fatalf("results must not change the run key: %s vs %s", key1, key2)
	}

	otherTier := base
	otherTier.Metadata.Tier = "premium"
	key3, err := duckdb.RunKey(otherTier)
	if err != nil {
		t.Fatalf("run key: %v", err)
	}
	if key3 == key1 {
		t.Fatalf("tier change must change the run key")
	}

	otherTime := base
	otherTime.Metadata.Timestamp = base.Metadata.Timestamp.Add(time.Second)
	key4, err := duckdb.RunKey(otherTime)
	if err != nil {
		t.Fatalf("run key: %v", err)
	}
	if key4 == key1 {
		t.Fatalf("timestamp change must change the run key")
	}
}
