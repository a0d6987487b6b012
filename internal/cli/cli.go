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
	fmt.Fprintln(w, "  quizkit <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"quizkit <command> --help\" for more information.")
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
	command("validate", "Validate a question bank", []string{
		"quizkit validate --file <bank>",
	}, runValidate),
	command("list", "Show questions as a table", []string{
		"quizkit list --file <bank> [--published] [--non-empty] [--ui auto|live|plain] [--no-color]",
	}, runList),
	command("names", "Print question names", []string{
		"quizkit names --file <bank> [--short]",
	}, runNames),
	command("find", "Print one question by id", []string{
		"quizkit find --file <bank> --id <id> [--format yaml|json|markdown]",
	}, runFind),
	command("points", "Total the points of a bank", []string{
		"quizkit points --file <bank> [--published]",
	}, runPoints),
	command("csv", "Export questions as CSV", []string{
		"quizkit csv --file <bank> [--out <path>]",
	}, runCSV),
	command("answers", "Create a blank answer sheet", []string{
		"quizkit answers --file <bank> [--format yaml|json] [--out <path>]",
	}, runAnswers),
	command("grade", "Grade an answer sheet", []string{
		"quizkit grade --file <bank> --answers <sheet> [--format yaml|json] [--out <path>]",
	}, runGrade),
	command("publish", "Publish every question", []string{
		"quizkit publish --file <bank> [--format yaml|json] [--out <path>]",
	}, runPublish),
	command("add", "Append a blank question", []string{
		"quizkit add --file <bank> --id <id> --name <name> [--type <type>] [--format yaml|json] [--out <path>]",
	}, runAdd),
	command("remove", "Remove questions by id", []string{
		"quizkit remove --file <bank> --id <id> [--format yaml|json] [--out <path>]",
	}, runRemove),
	command("rename", "Rename a question", []string{
		"quizkit rename --file <bank> --id <id> --name <name> [--format yaml|json] [--out <path>]",
	}, runRename),
	command("retype", "Change a question's type", []string{
		"quizkit retype --file <bank> --id <id> --type <type> [--format yaml|json] [--out <path>]",
	}, runRetype),
	command("option", "Append or replace an option", []string{
		"quizkit option --file <bank> --id <id> [--index <n>] --text <option> [--format yaml|json] [--out <path>]",
	}, runOption),
	command("duplicate", "Duplicate a question after itself", []string{
		"quizkit duplicate --file <bank> --id <id> --new-id <id> [--format yaml|json] [--out <path>]",
	}, runDuplicate),
	command("report", "Render an HTML question sheet", []string{
		"quizkit report --file <bank> [--title <title>] [--out <path>]",
	}, runReport),
}
