// Package harness executes benchmark tasks through the council pipeline and
// aggregates the persisted run records.
package harness

import (
	"time"

	"conclave/internal/catalog"
	"conclave/internal/council"
)

// RunMetadata describes the configuration a run executed under.
type RunMetadata struct {
	Timestamp      time.Time    `json:"timestamp"`
	Tier           string       `json:"tier"`
	Mode           council.Mode `json:"mode"`
	CategoryFilter *string      `json:"category_filter"`
	Chairman       string       `json:"chairman"`
}

// RunSummary aggregates the outcome counts and timing of a run.
type RunSummary struct {
	TotalTasks       int     `json:"total_tasks"`
	Successful       int     `json:"successful"`
	Failed           int     `json:"failed"`
	TotalTimeSeconds float64 `json:"total_time_seconds"`
	AvgTimeSeconds   float64 `json:"avg_time_seconds"`
}

// Response is one stored stage 1 answer.
type Response struct {
	Model   string `json:"model"`
	Content string `json:"content"`
}

// CouncilResult is the sanitized council output stored in run files. The
// ranking and synthesis fields only appear for the modes that produce them.
type CouncilResult struct {
	Tier          string                           `json:"tier"`
	ModelsQueried int                              `json:"models_queried"`
	Responses     []Response                       `json:"responses"`
	Rankings      map[string]council.AggregateRank `json:"rankings,omitzero"`
	Synthesis     *string                          `json:"synthesis,omitempty"`
	Chairman      *string                          `json:"chairman,omitempty"`
	Consensus     *string                          `json:"consensus,omitempty"`
}

// EvalResult is the recorded outcome of one task. A successful result
// carries the sanitized council output; a failed one carries the error text
// instead.
type EvalResult struct {
	TaskID         string             `json:"task_id"`
	Category       catalog.Category   `json:"category"`
	Difficulty     catalog.Difficulty `json:"difficulty"`
	Tier           string             `json:"tier"`
	Mode           council.Mode       `json:"mode"`
	Success        bool               `json:"success"`
	ElapsedSeconds float64            `json:"elapsed_seconds"`
	Question       string             `json:"question,omitempty"`
	Expected       string             `json:"expected,omitempty"`
	EvalCriteria   string             `json:"eval_criteria,omitempty"`
	Result         *CouncilResult     `json:"result,omitempty"`
	Error          string             `json:"error,omitempty"`
}

// EvalRun is the top-level persisted unit: one suite invocation. A run that
// matched no tasks carries only Error.
type EvalRun struct {
	Metadata RunMetadata  `json:"metadata,omitzero"`
	Summary  RunSummary   `json:"summary,omitzero"`
	Results  []EvalResult `json:"results,omitempty"`
	Error    string       `json:"error,omitempty"`
}
