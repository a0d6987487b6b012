package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"quizkit/internal/question"
)

// runNames builds the handler for the names command.
func runNames(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		file := flags.String("file", "", "Path to the question bank")
		short := flags.Bool("short", false, "Print \"<id>: <name>\" with names cut to ten characters")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if !requireFlag(cmd, "file", *file, stderr) {
			return ExitUsage
		}
		return withBank(stdout, stderr, *file, func(s *session, bank question.Bank) error {
			if *short {
				for _, q := range bank.Questions {
					fmt.Fprintln(s.stdout, question.ToShortForm(q))
				}
				return nil
			}
			for _, name := range question.Names(bank.Questions) {
				fmt.Fprintln(s.stdout, name)
			}
			return nil
		})
	}
}

// runFind builds the handler for the find command.
func runFind(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		file := flags.String("file", "", "Path to the question bank")
		id := flags.Int("id", 0, "Question id")
		format := flags.String("format", "", "Output format (yaml|json|markdown)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if !requireFlag(cmd, "file", *file, stderr) || !requireSet(cmd, flags, "id", stderr) {
			return ExitUsage
		}
		return withBank(stdout, stderr, *file, func(s *session, bank question.Bank) error {
			q, found := question.Find(bank.Questions, *id)
			if !found {
				return fmt.Errorf("id %d: %w", *id, ErrMissingQuestion)
			}
			if strings.EqualFold(strings.TrimSpace(*format), "markdown") {
				fmt.Fprintln(s.stdout, question.ToMarkdown(q))
				return nil
			}
			return s.emit(q, "", *format)
		})
	}
}

// runPoints builds the handler for the points command.
func runPoints(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		file := flags.String("file", "", "Path to the question bank")
		published := flags.Bool("published", false, "Only count published questions")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if !requireFlag(cmd, "file", *file, stderr) {
			return ExitUsage
		}
		return withBank(stdout, stderr, *file, func(s *session, bank question.Bank) error {
			total := question.SumPoints(bank.Questions)
			if *published {
				total = question.SumPublishedPoints(bank.Questions)
			}
			fmt.Fprintln(s.stdout, total)
			return nil
		})
	}
}

// runCSV builds the handler for the csv command.
func runCSV(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		file := flags.String("file", "", "Path to the question bank")
		out := flags.String("out", "", "Write the CSV to a file instead of stdout")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if !requireFlag(cmd, "file", *file, stderr) {
			return ExitUsage
		}
		return withBank(stdout, stderr, *file, func(s *session, bank question.Bank) error {
			csv := question.ToCSV(bank.Questions)
			if *out == "" {
				fmt.Fprintln(s.stdout, csv)
				return nil
			}
			if err := writeText(*out, csv); err != nil {
				return err
			}
			s.log.Info("wrote csv", zap.String("path", *out), zap.Int("rows", len(bank.Questions)))
			return nil
		})
	}
}

// withBank opens a session, loads the bank and runs fn, mapping errors to exit codes.
func withBank(stdout, stderr io.Writer, path string, fn func(s *session, bank question.Bank) error) int {
	s, err := newSession(stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}
	defer s.close()

	bank, err := s.loadBank(path)
	if err != nil {
		return s.fail(err)
	}
	if err := fn(s, bank); err != nil {
		return s.fail(err)
	}
	return ExitOK
}
