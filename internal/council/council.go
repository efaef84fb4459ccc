package council

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrAllModelsFailed reports that no council member produced an answer.
var ErrAllModelsFailed = errors.New("all council models failed")

// Council coordinates the deliberation stages over a Querier.
type Council struct {
	Query Querier
}

// New constructs a council over the given querier.
func New(query Querier) *Council {
	return &Council{Query: query}
}

// Run executes the pipeline for one request. The stages a mode does not
// reach stay nil in the output.
func (c *Council) Run(ctx context.Context, req Request) (Output, error) {
	if strings.TrimSpace(req.Question) == "" {
		return Output{}, fmt.Errorf("question is required")
	}
	if len(req.Models) == 0 {
		return Output{}, fmt.Errorf("at least one council model is required")
	}
	mode := req.Mode
	if mode == "" {
		mode = ModeFull
	}
	if !mode.Valid() {
		return Output{}, fmt.Errorf("unknown mode %q", mode)
	}
	if mode == ModeFull && strings.TrimSpace(req.Chairman) == "" {
		return Output{}, fmt.Errorf("chairman model is required for full mode")
	}

	stage1 := c.collectAnswers(ctx, req)
	if len(stage1) == 0 {
		return Output{}, fmt.Errorf("stage 1: %w", ErrAllModelsFailed)
	}
	out := Output{Tier: req.Tier, Stage1: stage1}
	if mode == ModeQuick {
		return out, nil
	}

	stage2, err := c.rankAnswers(ctx, req.Question, stage1)
	if err != nil {
		return Output{}, fmt.Errorf("stage 2: %w", err)
	}
	out.Stage2 = stage2
	if mode == ModeRanked {
		return out, nil
	}

	stage3, err := c.synthesize(ctx, req, stage1, stage2)
	if err != nil {
		return Output{}, fmt.Errorf("stage 3: %w", err)
	}
	out.Stage3 = stage3
	out.Consensus = consensusFrom(stage2)
	return out, nil
}

// indexedAnswer carries one stage 1 reply back to the collector.
type indexedAnswer struct {
	index   int
	content string
	err     error
}

// collectAnswers queries every member concurrently and keeps the successes
// in roster order. Members that error are dropped.
func (c *Council) collectAnswers(ctx context.Context, req Request) []ModelResponse {
	resultCh := make(chan indexedAnswer, len(req.Models))
	for index, model := range req.Models {
		go func(index int, model string) {
			content, err := c.Query.Complete(ctx, model, []Message{{Role: "user", Content: req.Question}})
			resultCh <- indexedAnswer{index: index, content: content, err: err}
		}(index, model)
	}

	contents := make([]string, len(req.Models))
	succeeded := make([]bool, len(req.Models))
	for range req.Models {
		answer := <-resultCh
		if answer.err != nil {
			continue
		}
		contents[answer.index] = answer.content
		succeeded[answer.index] = true
	}

	responses := make([]ModelResponse, 0, len(req.Models))
	for index, model := range req.Models {
		if !succeeded[index] {
			continue
		}
		responses = append(responses, ModelResponse{Model: model, Content: contents[index]})
	}
	return responses
}
