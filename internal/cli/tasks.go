package cli

import (
	"flag"
	"fmt"
	"io"

	"conclave/internal/catalog"
)

// runTasks builds the handler for the tasks command.
func runTasks(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		category := fs.String("category", "", "List only tasks in this category")
		tasksPath := fs.String("tasks", "", "Path to a custom task set (JSON or YAML)")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintln(stderr, "Too many arguments")
			return ExitUsage
		}

		set := catalog.Builtin()
		if *tasksPath != "" {
			loaded, err := catalog.Load(*tasksPath)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to load tasks: %v\n", err)
				return ExitError
			}
			set = loaded
		}

		selected := set.Filter(catalog.Category(*category))
		if len(selected.Tasks) == 0 {
			fmt.Fprintln(stdout, "No tasks match the specified criteria")
			return ExitOK
		}

		fmt.Fprintf(stdout, "%-24s %-18s %s\n", "ID", "CATEGORY", "DIFFICULTY")
		for _, task := range selected.Tasks {
			fmt.Fprintf(stdout, "%-24s %-18s %s\n", task.ID, task.Category, task.Difficulty)
		}
		fmt.Fprintf(stdout, "\n%d tasks\n", len(selected.Tasks))
		return ExitOK
	}
}
