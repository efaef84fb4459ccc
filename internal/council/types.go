// Package council runs the multi-model deliberation pipeline: each member
// answers the question, peers rank the anonymized answers, and a chairman
// synthesizes the final response.
package council

// Mode selects how much of the pipeline runs.
type Mode string

const (
	// ModeQuick runs stage 1 only.
	ModeQuick Mode = "quick"
	// ModeRanked runs stages 1 and 2.
	ModeRanked Mode = "ranked"
	// ModeFull runs all three stages.
	ModeFull Mode = "full"
)

// Valid reports whether the mode is a known value.
func (m Mode) Valid() bool {
	switch m {
	case ModeQuick, ModeRanked, ModeFull:
		return true
	default:
		return false
	}
}

// Message is a single chat turn sent to a model.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request describes one council run.
type Request struct {
	Question string
	Tier     string
	Models   []string
	Chairman string
	Mode     Mode
}

// ModelResponse is one member's stage 1 answer.
type ModelResponse struct {
	Model   string
	Content string
}

// ModelRanking is one reviewer's parsed ranking, best answer first.
type ModelRanking struct {
	Reviewer string
	Ranking  []string
}

// AggregateRank summarizes how the council placed one model's answer.
type AggregateRank struct {
	AverageRank float64 `json:"average_rank"`
	Votes       int     `json:"votes"`
}

// RankingStage carries the stage 2 peer review. Aggregate is keyed by model
// and is never nil once the stage has run.
type RankingStage struct {
	Rankings  []ModelRanking
	Aggregate map[string]AggregateRank
}

// SynthesisStage carries the chairman's stage 3 synthesis.
type SynthesisStage struct {
	Chairman  string
	Synthesis string
}

// Consensus levels reported alongside a full council run.
const (
	ConsensusHigh   = "high"
	ConsensusMedium = "medium"
	ConsensusLow    = "low"
)

// Consensus grades how much the reviewers agreed on the best answer.
type Consensus struct {
	Level string
}

// Output is the result of one council run. Stage2, Stage3, and Consensus are
// nil for modes that do not reach them.
type Output struct {
	Tier      string
	Stage1    []ModelResponse
	Stage2    *RankingStage
	Stage3    *SynthesisStage
	Consensus *Consensus
}
