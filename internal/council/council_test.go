package council

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// queryFunc adapts a function into a Querier for tests.
type queryFunc func(ctx context.Context, model string, messages []Message) (string, error)

func (f queryFunc) Complete(ctx context.Context, model string, messages []Message) (string, error) {
	return f(ctx, model, messages)
}

const testQuestion = "Why is the sky blue?"

// scriptedQuerier answers stage 1 with a canned reply per model and stage 2
// with a canned verdict per reviewer.
func scriptedQuerier(t *testing.T, verdicts map[string]string, synthesis string) Querier {
	t.Helper()
	return queryFunc(func(_ context.Context, model string, messages []Message) (string, error) {
		if len(messages) != 1 {
			t.Errorf("expected a single message, got %d", len(messages))
		}
		prompt := messages[0].Content
		switch {
		case prompt == testQuestion:
			return "answer from " + model, nil
		case strings.Contains(prompt, "anonymized answers"):
			verdict, ok := verdicts[model]
			if !ok {
				return "", fmt.Errorf("unexpected reviewer %s", model)
			}
			return verdict, nil
		case strings.Contains(prompt, "chairman of a council"):
			return synthesis, nil
		default:
			return "", fmt.Errorf("unexpected prompt for %s: %q", model, prompt)
		}
	})
}

func TestRunQuickKeepsRosterOrder(t *testing.T) {
	models := []string{"m/alpha", "m/beta", "m/gamma"}
	c := New(queryFunc(func(_ context.Context, model string, messages []Message) (string, error) {
		if messages[0].Content != testQuestion {
			t.Errorf("stage 1 should send the question verbatim, got %q", messages[0].Content)
		}
		return "answer from " + model, nil
	}))

	out, err := c.Run(context.Background(), Request{
		Question: testQuestion,
		Tier:     "standard",
		Models:   models,
		Mode:     ModeQuick,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.Tier != "standard" {
		t.Fatalf("expected tier standard, got %q", out.Tier)
	}
	if len(out.Stage1) != 3 {
		t.Fatalf("expected 3 responses, got %d", len(out.Stage1))
	}
	for i, model := range models {
		if out.Stage1[i].Model != model {
			t.Fatalf("expected roster order, got %s at %d", out.Stage1[i].Model, i)
		}
		if out.Stage1[i].Content != "answer from "+model {
			t.Fatalf("unexpected content: %q", out.Stage1[i].Content)
		}
	}
	if out.Stage2 != nil || out.Stage3 != nil || out.Consensus != nil {
		t.Fatalf("quick mode should stop after stage 1: %+v", out)
	}
}

func TestRunDropsFailedModels(t *testing.T) {
	c := New(queryFunc(func(_ context.Context, model string, _ []Message) (string, error) {
		if model == "m/beta" {
			return "", errors.New("upstream timeout")
		}
		return "answer from " + model, nil
	}))

	out, err := c.Run(context.Background(), Request{
		Question: testQuestion,
		Models:   []string{"m/alpha", "m/beta", "m/gamma"},
		Mode:     ModeQuick,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(out.Stage1) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(out.Stage1))
	}
	if out.Stage1[0].Model != "m/alpha" || out.Stage1[1].Model != "m/gamma" {
		t.Fatalf("unexpected survivors: %+v", out.Stage1)
	}
}

func TestRunAllModelsFailed(t *testing.T) {
	c := New(queryFunc(func(_ context.Context, _ string, _ []Message) (string, error) {
		return "", errors.New("boom")
	}))

	_, err := c.Run(context.Background(), Request{
		Question: testQuestion,
		Models:   []string{"m/alpha", "m/beta"},
		Mode:     ModeQuick,
	})
	if !errors.Is(err, ErrAllModelsFailed) {
		t.Fatalf("expected ErrAllModelsFailed, got %v", err)
	}
}

func TestRunValidatesRequest(t *testing.T) {
	c := New(queryFunc(func(_ context.Context, _ string, _ []Message) (string, error) {
		return "", nil
	}))

	if _, err := c.Run(context.Background(), Request{Models: []string{"m"}}); err == nil {
		t.Fatalf("expected question error")
	}
	if _, err := c.Run(context.Background(), Request{Question: "q"}); err == nil {
		t.Fatalf("expected models error")
	}
	if _, err := c.Run(context.Background(), Request{Question: "q", Models: []string{"m"}, Mode: "turbo"}); err == nil {
		t.Fatalf("expected mode error")
	}
	if _, err := c.Run(context.Background(), Request{Question: "q", Models: []string{"m"}, Mode: ModeFull}); err == nil {
		t.Fatalf("expected chairman error")
	}
}

func TestRunRankedAggregates(t *testing.T) {
	// Both reviewers put B first, so beta should average 1.00 and alpha 2.00.
	verdicts := map[string]string{
		"m/alpha": "B was more precise.\nFINAL RANKING: B, A",
		"m/beta":  "final ranking: b, a",
	}
	c := New(scriptedQuerier(t, verdicts, ""))

	out, err := c.Run(context.Background(), Request{
		Question: testQuestion,
		Models:   []string{"m/alpha", "m/beta"},
		Mode:     ModeRanked,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.Stage2 == nil {
		t.Fatalf("expected stage 2")
	}
	if out.Stage3 != nil || out.Consensus != nil {
		t.Fatalf("ranked mode should stop after stage 2")
	}
	if len(out.Stage2.Rankings) != 2 {
		t.Fatalf("expected 2 rankings, got %d", len(out.Stage2.Rankings))
	}
	if got := out.Stage2.Rankings[0].Ranking; len(got) != 2 || got[0] != "m/beta" || got[1] != "m/alpha" {
		t.Fatalf("unexpected ranking: %v", got)
	}

	beta := out.Stage2.Aggregate["m/beta"]
	if beta.AverageRank != 1.0 || beta.Votes != 2 {
		t.Fatalf("unexpected aggregate for beta: %+v", beta)
	}
	alpha := out.Stage2.Aggregate["m/alpha"]
	if alpha.AverageRank != 2.0 || alpha.Votes != 2 {
		t.Fatalf("unexpected aggregate for alpha: %+v", alpha)
	}
}

func TestRunRankedToleratesBadVerdicts(t *testing.T) {
	verdicts := map[string]string{
		"m/alpha": "I refuse to rank these.",
		"m/beta":  "FINAL RANKING: A, B",
	}
	c := New(scriptedQuerier(t, verdicts, ""))

	out, err := c.Run(context.Background(), Request{
		Question: testQuestion,
		Models:   []string{"m/alpha", "m/beta"},
		Mode:     ModeRanked,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(out.Stage2.Rankings) != 1 {
		t.Fatalf("expected 1 usable ranking, got %d", len(out.Stage2.Rankings))
	}
	if out.Stage2.Rankings[0].Reviewer != "m/beta" {
		t.Fatalf("unexpected reviewer: %s", out.Stage2.Rankings[0].Reviewer)
	}
}

func TestRunFull(t *testing.T) {
	verdicts := map[string]string{
		"m/alpha": "FINAL RANKING: A, B",
		"m/beta":  "FINAL RANKING: A, B",
	}
	c := New(scriptedQuerier(t, verdicts, "The council agrees: scattering."))

	out, err := c.Run(context.Background(), Request{
		Question: testQuestion,
		Tier:     "premium",
		Models:   []string{"m/alpha", "m/beta"},
		Chairman: "m/chair",
		Mode:     ModeFull,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.Stage3 == nil {
		t.Fatalf("expected stage 3")
	}
	if out.Stage3.Chairman != "m/chair" {
		t.Fatalf("unexpected chairman: %s", out.Stage3.Chairman)
	}
	if out.Stage3.Synthesis != "The council agrees: scattering." {
		t.Fatalf("unexpected synthesis: %q", out.Stage3.Synthesis)
	}
	if out.Consensus == nil || out.Consensus.Level != ConsensusHigh {
		t.Fatalf("expected high consensus, got %+v", out.Consensus)
	}
}

func TestRunFullChairmanFailure(t *testing.T) {
	c := New(queryFunc(func(_ context.Context, model string, messages []Message) (string, error) {
		prompt := messages[0].Content
		if strings.Contains(prompt, "chairman of a council") {
			return "", errors.New("chairman offline")
		}
		if prompt == testQuestion {
			return "answer from " + model, nil
		}
		return "FINAL RANKING: A, B", nil
	}))

	_, err := c.Run(context.Background(), Request{
		Question: testQuestion,
		Models:   []string{"m/alpha", "m/beta"},
		Chairman: "m/chair",
		Mode:     ModeFull,
	})
	if err == nil || !strings.Contains(err.Error(), "stage 3") {
		t.Fatalf("expected stage 3 error, got %v", err)
	}
}
