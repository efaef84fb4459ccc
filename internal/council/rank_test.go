package council

import (
	"testing"
)

func sampleLabels() []labeledResponse {
	return labelResponses([]ModelResponse{
		{Model: "m/alpha", Content: "one"},
		{Model: "m/beta", Content: "two"},
		{Model: "m/gamma", Content: "three"},
	})
}

func TestAlphaLabel(t *testing.T) {
	cases := map[int]string{0: "A", 1: "B", 25: "Z", 26: "AA", 27: "AB", 51: "AZ", 52: "BA"}
	for index, want := range cases {
		if got := alphaLabel(index); got != want {
			t.Fatalf("alphaLabel(%d) = %q, want %q", index, got, want)
		}
	}
}

func TestParseRanking(t *testing.T) {
	labeled := sampleLabels()

	got := parseRanking("Reasoning here.\nFINAL RANKING: C, A, B", labeled)
	if len(got) != 3 || got[0] != "m/gamma" || got[1] != "m/alpha" || got[2] != "m/beta" {
		t.Fatalf("unexpected ranking: %v", got)
	}

	got = parseRanking("final ranking: Response B, Response A", labeled)
	if len(got) != 2 || got[0] != "m/beta" || got[1] != "m/alpha" {
		t.Fatalf("expected lenient casing and Response prefixes, got %v", got)
	}

	got = parseRanking("FINAL RANKING: A, B\nOn reflection:\nFINAL RANKING: B, A", labeled)
	if len(got) != 2 || got[0] != "m/beta" {
		t.Fatalf("expected the last marker to win, got %v", got)
	}

	if got := parseRanking("no verdict at all", labeled); got != nil {
		t.Fatalf("expected nil without marker, got %v", got)
	}
}

func TestParseRankingIgnoresEmbeddedLetters(t *testing.T) {
	labeled := sampleLabels()
	// BAD contains both B and A but neither is standalone.
	got := parseRanking("FINAL RANKING: BAD C", labeled)
	if len(got) != 1 || got[0] != "m/gamma" {
		t.Fatalf("expected only the standalone label, got %v", got)
	}
}

func TestAggregateRankings(t *testing.T) {
	rankings := []ModelRanking{
		{Reviewer: "m/alpha", Ranking: []string{"m/beta", "m/alpha", "m/gamma"}},
		{Reviewer: "m/beta", Ranking: []string{"m/beta", "m/gamma", "m/alpha"}},
		{Reviewer: "m/gamma", Ranking: []string{"m/beta", "m/alpha"}},
	}
	aggregate := aggregateRankings(rankings)

	beta := aggregate["m/beta"]
	if beta.AverageRank != 1.0 || beta.Votes != 3 {
		t.Fatalf("unexpected beta aggregate: %+v", beta)
	}
	alpha := aggregate["m/alpha"]
	if alpha.AverageRank != 2.33 || alpha.Votes != 3 {
		t.Fatalf("unexpected alpha aggregate: %+v", alpha)
	}
	gamma := aggregate["m/gamma"]
	if gamma.AverageRank != 2.5 || gamma.Votes != 2 {
		t.Fatalf("unexpected gamma aggregate: %+v", gamma)
	}
}

func TestAggregateRankingsEmpty(t *testing.T) {
	aggregate := aggregateRankings(nil)
	if aggregate == nil {
		t.Fatalf("aggregate should never be nil")
	}
	if len(aggregate) != 0 {
		t.Fatalf("expected empty aggregate, got %v", aggregate)
	}
}

func TestConsensusLevels(t *testing.T) {
	unanimous := &RankingStage{Rankings: []ModelRanking{
		{Reviewer: "a", Ranking: []string{"m/x", "m/y"}},
		{Reviewer: "b", Ranking: []string{"m/x"}},
	}}
	if got := consensusFrom(unanimous); got.Level != ConsensusHigh {
		t.Fatalf("expected high, got %s", got.Level)
	}

	majority := &RankingStage{Rankings: []ModelRanking{
		{Reviewer: "a", Ranking: []string{"m/x"}},
		{Reviewer: "b", Ranking: []string{"m/x"}},
		{Reviewer: "c", Ranking: []string{"m/y"}},
	}}
	if got := consensusFrom(majority); got.Level != ConsensusMedium {
		t.Fatalf("expected medium, got %s", got.Level)
	}

	split := &RankingStage{Rankings: []ModelRanking{
		{Reviewer: "a", Ranking: []string{"m/x"}},
		{Reviewer: "b", Ranking: []string{"m/y"}},
	}}
	if got := consensusFrom(split); got.Level != ConsensusLow {
		t.Fatalf("expected low, got %s", got.Level)
	}

	if got := consensusFrom(nil); got.Level != ConsensusLow {
		t.Fatalf("expected low for missing stage, got %s", got.Level)
	}
}
