package harness

import (
	"context"
	"math"
	"time"

	"conclave/internal/catalog"
	"conclave/internal/config"
	"conclave/internal/council"
)

// Pipeline runs one council deliberation.
type Pipeline interface {
	Run(ctx context.Context, req council.Request) (council.Output, error)
}

// Deps carries the injectable collaborators for eval execution.
type Deps struct {
	Pipeline Pipeline
	Now      func() time.Time
}

// RunSingle executes one task through the council and packages the outcome.
// Pipeline failures are captured in the result, never returned: a broken
// task must not abort its siblings.
func RunSingle(ctx context.Context, cfg config.Config, task catalog.Task, tier string, mode council.Mode, deps Deps) EvalResult {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	models := cfg.TierModels(tier)
	start := now()

	out, err := deps.Pipeline.Run(ctx, council.Request{
		Question: task.Question,
		Tier:     tier,
		Models:   models,
		Chairman: cfg.Council.Chairman,
		Mode:     mode,
	})
	elapsed := round2(now().Sub(start).Seconds())

	result := EvalResult{
		TaskID:         task.ID,
		Category:       task.Category,
		Difficulty:     task.Difficulty,
		Tier:           tier,
		Mode:           mode,
		ElapsedSeconds: elapsed,
	}
	if err != nil {
		result.Error = err.Error()
		return result
	}

	sanitized := Sanitize(out, mode)
	result.Success = true
	result.Question = task.Question
	result.Expected = task.ExpectedAnswer
	result.EvalCriteria = task.EvalCriteria
	result.Result = &sanitized
	return result
}

// round2 rounds to two decimal places.
func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
