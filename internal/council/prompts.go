package council

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/a-h/templ"
)

// rankingMarker is the line prefix reviewers must use for their verdict.
const rankingMarker = "FINAL RANKING:"

// labeledResponse pairs an anonymized label with a stage 1 answer.
type labeledResponse struct {
	Label    string
	Response ModelResponse
}

// renderPrompt materializes a prompt component into a string.
func renderPrompt(ctx context.Context, component templ.Component) (string, error) {
	var builder strings.Builder
	if err := component.Render(ctx, &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}

// rankingPrompt asks a reviewer to rank the anonymized answers.
func rankingPrompt(question string, responses []labeledResponse) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, "You are reviewing anonymized answers to a question. Rank them from best to worst.\n\nQuestion:\n%s\n", question); err != nil {
			return err
		}
		for _, item := range responses {
			if _, err := fmt.Fprintf(w, "\nResponse %s:\n%s\n", item.Label, item.Response.Content); err != nil {
				return err
			}
		}
		labels := make([]string, 0, len(responses))
		for _, item := range responses {
			labels = append(labels, item.Label)
		}
		_, err := fmt.Fprintf(w, "\nJudge accuracy, completeness, and clarity. Briefly explain your reasoning, then end with a single line of the form:\n%s %s\n", rankingMarker, strings.Join(labels, ", "))
		return err
	})
}

// synthesisPrompt asks the chairman to merge the answers into a final one.
func synthesisPrompt(question string, responses []labeledResponse, aggregate map[string]AggregateRank) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, "You are the chairman of a council of language models. The members answered a question and ranked each other's anonymized answers. Produce the council's final answer.\n\nQuestion:\n%s\n", question); err != nil {
			return err
		}
		for _, item := range responses {
			if _, err := fmt.Fprintf(w, "\nResponse %s (%s):\n%s\n", item.Label, item.Response.Model, item.Response.Content); err != nil {
				return err
			}
		}
		if len(aggregate) > 0 {
			if _, err := io.WriteString(w, "\nCouncil ranking (lower is better):\n"); err != nil {
				return err
			}
			for _, line := range aggregateLines(aggregate) {
				if _, err := fmt.Fprintf(w, "  %s\n", line); err != nil {
					return err
				}
			}
		}
		_, err := io.WriteString(w, "\nWrite the single best answer to the question. Prefer the council's ranking unless it is clearly wrong, and keep only content supported by the member answers.\n")
		return err
	})
}

// aggregateLines formats the aggregate ranking, best average first.
func aggregateLines(aggregate map[string]AggregateRank) []string {
	models := make([]string, 0, len(aggregate))
	for model := range aggregate {
		models = append(models, model)
	}
	sort.Slice(models, func(i, j int) bool {
		left, right := aggregate[models[i]], aggregate[models[j]]
		if left.AverageRank != right.AverageRank {
			return left.AverageRank < right.AverageRank
		}
		return models[i] < models[j]
	})
	lines := make([]string, 0, len(models))
	for _, model := range models {
		rank := aggregate[model]
		lines = append(lines, fmt.Sprintf("%s: average rank %.2f over %d votes", model, rank.AverageRank, rank.Votes))
	}
	return lines
}
