package council

import (
	"context"
	"math"
	"sort"
	"strings"
)

// labelResponses assigns anonymized letter labels in roster order.
func labelResponses(responses []ModelResponse) []labeledResponse {
	labeled := make([]labeledResponse, 0, len(responses))
	for index, response := range responses {
		labeled = append(labeled, labeledResponse{Label: alphaLabel(index), Response: response})
	}
	return labeled
}

// alphaLabel converts an index to an A, B, ..., Z, AA, AB, ... label.
func alphaLabel(index int) string {
	label := ""
	for index >= 0 {
		label = string(rune('A'+index%26)) + label
		index = index/26 - 1
	}
	return label
}

// indexedRanking carries one reviewer's verdict back to the collector.
type indexedRanking struct {
	index   int
	ranking []string
	err     error
}

// rankAnswers runs the stage 2 peer review. Every stage 1 survivor reviews
// the anonymized answer sheet; reviewers that error or return an unparsable
// verdict are dropped.
func (c *Council) rankAnswers(ctx context.Context, question string, responses []ModelResponse) (*RankingStage, error) {
	labeled := labelResponses(responses)
	prompt, err := renderPrompt(ctx, rankingPrompt(question, labeled))
	if err != nil {
		return nil, err
	}

	resultCh := make(chan indexedRanking, len(responses))
	for index, response := range responses {
		go func(index int, reviewer string) {
			reply, err := c.Query.Complete(ctx, reviewer, []Message{{Role: "user", Content: prompt}})
			if err != nil {
				resultCh <- indexedRanking{index: index, err: err}
				return
			}
			resultCh <- indexedRanking{index: index, ranking: parseRanking(reply, labeled)}
		}(index, response.Model)
	}

	ordered := make([][]string, len(responses))
	for range responses {
		verdict := <-resultCh
		if verdict.err != nil {
			continue
		}
		ordered[verdict.index] = verdict.ranking
	}

	rankings := make([]ModelRanking, 0, len(responses))
	for index, response := range responses {
		if len(ordered[index]) == 0 {
			continue
		}
		rankings = append(rankings, ModelRanking{Reviewer: response.Model, Ranking: ordered[index]})
	}
	return &RankingStage{Rankings: rankings, Aggregate: aggregateRankings(rankings)}, nil
}

// parseRanking extracts the ranked model ids from a reviewer's reply. It
// looks for the last ranking marker and orders the labels that follow it by
// position, so prose around the verdict line is tolerated.
func parseRanking(reply string, labeled []labeledResponse) []string {
	marker := strings.TrimSuffix(rankingMarker, ":")
	upper := strings.ToUpper(reply)
	start := strings.LastIndex(upper, marker)
	if start < 0 {
		return nil
	}
	tail := upper[start+len(marker):]

	type hit struct {
		pos   int
		model string
	}
	hits := make([]hit, 0, len(labeled))
	for _, item := range labeled {
		pos := findLabel(tail, item.Label)
		if pos < 0 {
			continue
		}
		hits = append(hits, hit{pos: pos, model: item.Response.Model})
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	ranking := make([]string, 0, len(hits))
	for _, h := range hits {
		ranking = append(ranking, h.model)
	}
	return ranking
}

// findLabel returns the first standalone occurrence of label in text.
func findLabel(text, label string) int {
	for offset := 0; offset <= len(text)-len(label); {
		pos := strings.Index(text[offset:], label)
		if pos < 0 {
			return -1
		}
		pos += offset
		if standaloneAt(text, pos, len(label)) {
			return pos
		}
		offset = pos + 1
	}
	return -1
}

// standaloneAt reports whether text[pos:pos+length] is bounded by
// non-alphanumeric bytes.
func standaloneAt(text string, pos, length int) bool {
	if pos > 0 && isAlphaNum(text[pos-1]) {
		return false
	}
	end := pos + length
	if end < len(text) && isAlphaNum(text[end]) {
		return false
	}
	return true
}

func isAlphaNum(b byte) bool {
	return b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z' || b >= '0' && b <= '9'
}

// aggregateRankings averages each model's 1-based rank across reviewers.
func aggregateRankings(rankings []ModelRanking) map[string]AggregateRank {
	sums := map[string]int{}
	votes := map[string]int{}
	for _, ranking := range rankings {
		for pos, model := range ranking.Ranking {
			sums[model] += pos + 1
			votes[model]++
		}
	}
	aggregate := make(map[string]AggregateRank, len(sums))
	for model, sum := range sums {
		aggregate[model] = AggregateRank{
			AverageRank: round2(float64(sum) / float64(votes[model])),
			Votes:       votes[model],
		}
	}
	return aggregate
}

// round2 rounds to two decimal places.
func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
