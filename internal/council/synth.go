package council

import (
	"context"
	"fmt"
)

// synthesize runs the chairman's stage 3 synthesis over the full answer
// sheet and the council ranking.
func (c *Council) synthesize(ctx context.Context, req Request, responses []ModelResponse, stage2 *RankingStage) (*SynthesisStage, error) {
	labeled := labelResponses(responses)
	var aggregate map[string]AggregateRank
	if stage2 != nil {
		aggregate = stage2.Aggregate
	}
	prompt, err := renderPrompt(ctx, synthesisPrompt(req.Question, labeled, aggregate))
	if err != nil {
		return nil, err
	}
	reply, err := c.Query.Complete(ctx, req.Chairman, []Message{{Role: "user", Content: prompt}})
	if err != nil {
		return nil, fmt.Errorf("chairman %s: %w", req.Chairman, err)
	}
	return &SynthesisStage{Chairman: req.Chairman, Synthesis: reply}, nil
}

// consensusFrom grades how strongly the reviewers agreed on the best answer.
// Unanimous first place is high, a strict majority is medium, anything else
// is low.
func consensusFrom(stage *RankingStage) *Consensus {
	counts := map[string]int{}
	total := 0
	if stage != nil {
		for _, ranking := range stage.Rankings {
			if len(ranking.Ranking) == 0 {
				continue
			}
			counts[ranking.Ranking[0]]++
			total++
		}
	}
	best := 0
	for _, count := range counts {
		if count > best {
			best = count
		}
	}
	level := ConsensusLow
	switch {
	case total > 0 && best == total:
		level = ConsensusHigh
	case total > 0 && best*2 > total:
		level = ConsensusMedium
	}
	return &Consensus{Level: level}
}
