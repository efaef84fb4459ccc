package cli

import (
	"fmt"
	"io"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  conclave <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-8s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"conclave <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("init", "Scaffold .conclave/config.yml", []string{
		"conclave init [--config <path>]",
	}, runInit),
	command("run", "Run benchmark tasks through the council", []string{
		"conclave run [task-id...] [--tier premium|standard|budget] [--mode quick|ranked|full]",
		"conclave run [--category <name>] [--output <dir>] [--no-save] [--tasks <file>]",
		"conclave run [--config <file>] [--ui auto|live|plain] [--no-color]",
	}, runRun),
	command("tasks", "List benchmark tasks", []string{
		"conclave tasks [--category <name>] [--tasks <file>]",
	}, runTasks),
	command("compare", "Compare two saved runs", []string{
		"conclave compare --base <file> --head <file>",
	}, runCompare),
	command("ingest", "Load saved runs into a DuckDB database", []string{
		"conclave ingest [--input <dir>] [--db <file>]",
	}, runIngest),
	command("report", "Generate an HTML report from saved runs", []string{
		"conclave report [--input <dir>] [--output <file>]",
	}, runReport),
	command("serve", "Serve the HTML report and database over HTTP", []string{
		"conclave serve <db.duckdb> [--addr <host:port>] [--input <dir>]",
	}, runServe),
}
