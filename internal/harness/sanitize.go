package harness

import "conclave/internal/council"

// Truncation caps applied to stored council text, in runes.
const (
	maxResponseLen  = 2000
	maxSynthesisLen = 3000
)

// Sanitize compresses a raw council output into the bounded record stored in
// run files. It never fails: stages a mode did not reach are simply absent
// from the result.
func Sanitize(out council.Output, mode council.Mode) CouncilResult {
	sanitized := CouncilResult{
		Tier:          out.Tier,
		ModelsQueried: len(out.Stage1),
		Responses:     make([]Response, 0, len(out.Stage1)),
	}
	for _, response := range out.Stage1 {
		sanitized.Responses = append(sanitized.Responses, Response{
			Model:   response.Model,
			Content: truncate(response.Content, maxResponseLen),
		})
	}

	if (mode == council.ModeRanked || mode == council.ModeFull) && out.Stage2 != nil {
		rankings := out.Stage2.Aggregate
		if rankings == nil {
			rankings = map[string]council.AggregateRank{}
		}
		sanitized.Rankings = rankings
	}

	if mode == council.ModeFull && out.Stage3 != nil {
		synthesis := truncate(out.Stage3.Synthesis, maxSynthesisLen)
		sanitized.Synthesis = &synthesis
		chairman := out.Stage3.Chairman
		sanitized.Chairman = &chairman
		if out.Consensus != nil {
			level := out.Consensus.Level
			sanitized.Consensus = &level
		}
	}
	return sanitized
}

// truncate returns at most limit runes of text, never splitting a rune.
func truncate(text string, limit int) string {
	count := 0
	for i := range text {
		if count == limit {
			return text[:i]
		}
		count++
	}
	return text
}
