// Package catalog holds the stock benchmark tasks and loads custom task sets.
package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// Set is an ordered collection of benchmark tasks.
type Set struct {
	Version int    `json:"version" yaml:"version"`
	Tasks   []Task `json:"tasks" yaml:"tasks"`
}

// Builtin returns the stock task set.
func Builtin() Set {
	return Set{Version: 1, Tasks: slices.Clone(builtin)}
}

// Filter returns the tasks matching category, preserving set order. An empty
// category keeps every task; an unknown one matches nothing.
func (s Set) Filter(category Category) Set {
	if category == "" {
		return Set{Version: s.Version, Tasks: slices.Clone(s.Tasks)}
	}
	filtered := make([]Task, 0, len(s.Tasks))
	for _, task := range s.Tasks {
		if task.Category == category {
			filtered = append(filtered, task)
		}
	}
	return Set{Version: s.Version, Tasks: filtered}
}

// Pick returns the tasks whose ids appear in ids, preserving set order.
func (s Set) Pick(ids []string) (Set, error) {
	wanted := map[string]bool{}
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		wanted[id] = false
	}
	picked := make([]Task, 0, len(wanted))
	for _, task := range s.Tasks {
		if _, ok := wanted[task.ID]; ok {
			picked = append(picked, task)
			wanted[task.ID] = true
		}
	}
	missing := make([]string, 0)
	for id, found := range wanted {
		if !found {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return Set{}, fmt.Errorf("unknown task ids: %s", strings.Join(missing, ", "))
	}
	return Set{Version: s.Version, Tasks: picked}, nil
}

// Find returns the task with the given id.
func (s Set) Find(id string) (Task, bool) {
	for _, task := range s.Tasks {
		if task.ID == id {
			return task, true
		}
	}
	return Task{}, false
}
