package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"quizkit/internal/question"
	"quizkit/internal/ui/live"
)

// runLiveUI starts the interactive table; replaced in tests.
var runLiveUI = func(state live.State, opts live.Options, stdout io.Writer) error {
	return live.Run(state, opts, os.Stdin, stdout)
}

// runList builds the handler for the list command.
func runList(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		file := flags.String("file", "", "Path to the question bank")
		published := flags.Bool("published", false, "Only show published questions")
		nonEmpty := flags.Bool("non-empty", false, "Hide questions without body, expected answer or options")
		uiMode := flags.String("ui", "", "Rendering mode (auto|live|plain; default from config)")
		noColor := flags.Bool("no-color", false, "Disable colors")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if !requireFlag(cmd, "file", *file, stderr) {
			return ExitUsage
		}
		return withBank(stdout, stderr, *file, func(s *session, bank question.Bank) error {
			mode := *uiMode
			if mode == "" {
				mode = s.cfg.UIMode
			}
			decision, err := resolveUIMode(mode, *noColor || s.cfg.NoColor, stdout)
			if err != nil {
				return err
			}
			if decision.warning != "" {
				fmt.Fprintln(s.stderr, decision.warning)
			}
			state := live.State{
				Title:         bank.Title,
				Questions:     bank.Questions,
				PublishedOnly: *published,
				HideEmpty:     *nonEmpty,
			}
			if decision.useLive {
				return runLiveUI(state, live.Options{NoColor: decision.noColor}, stdout)
			}
			fmt.Fprintln(s.stdout, live.RenderPlain(state, decision.noColor))
			return nil
		})
	}
}
