package catalog

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a task set.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("task set validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Normalize trims whitespace and validates a task set.
func Normalize(set Set) (Set, error) {
	collector := &issueCollector{}
	if set.Version == 0 {
		collector.add("version", "is required")
	} else if set.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", set.Version))
	}
	if len(set.Tasks) == 0 {
		collector.add("tasks", "must include at least one entry")
	}

	seenIDs := map[string]struct{}{}
	for i, task := range set.Tasks {
		prefix := fmt.Sprintf("tasks[%d]", i)
		task.ID = strings.TrimSpace(task.ID)
		if task.ID == "" {
			collector.add(prefix+".id", "is required")
		} else {
			if _, exists := seenIDs[task.ID]; exists {
				collector.add(prefix+".id", fmt.Sprintf("duplicate id %q", task.ID))
			} else {
				seenIDs[task.ID] = struct{}{}
			}
		}

		task.Category = Category(strings.TrimSpace(string(task.Category)))
		if task.Category == "" {
			collector.add(prefix+".category", "is required")
		} else if !task.Category.Valid() {
			collector.add(prefix+".category", fmt.Sprintf("unknown category %q", task.Category))
		}

		task.Difficulty = Difficulty(strings.TrimSpace(string(task.Difficulty)))
		if task.Difficulty == "" {
			collector.add(prefix+".difficulty", "is required")
		} else if !task.Difficulty.Valid() {
			collector.add(prefix+".difficulty", fmt.Sprintf("unknown difficulty %q", task.Difficulty))
		}

		task.Question = strings.TrimSpace(task.Question)
		if task.Question == "" {
			collector.add(prefix+".question", "is required")
		}

		task.ExpectedAnswer = strings.TrimSpace(task.ExpectedAnswer)
		task.EvalCriteria = strings.TrimSpace(task.EvalCriteria)
		set.Tasks[i] = task
	}

	if err := collector.result(); err != nil {
		return Set{}, err
	}
	return set, nil
}
