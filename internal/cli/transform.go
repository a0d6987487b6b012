package cli

import (
	"flag"
	"fmt"
	"io"

	"go.uber.org/zap"

	"quizkit/internal/question"
)

// transformFlags are shared by every command that rewrites a bank.
type transformFlags struct {
	file   *string
	out    *string
	format *string
}

func newTransformFlags(flags *flag.FlagSet) transformFlags {
	return transformFlags{
		file:   flags.String("file", "", "Path to the question bank"),
		out:    flags.String("out", "", "Write the bank to a file instead of stdout"),
		format: flags.String("format", "", "Output format for stdout (yaml|json)"),
	}
}

// applyTransform loads the bank, replaces its questions with fn's result and emits it.
func applyTransform(stdout, stderr io.Writer, tf transformFlags, op string, fn func([]question.Question) ([]question.Question, error)) int {
	return withBank(stdout, stderr, *tf.file, func(s *session, bank question.Bank) error {
		questions, err := fn(bank.Questions)
		if err != nil {
			return err
		}
		s.log.Debug("applied transform", zap.String("op", op), zap.Int("before", len(bank.Questions)), zap.Int("after", len(questions)))
		bank.Questions = questions
		bank, err = question.NormalizeBank(bank)
		if err != nil {
			return fmt.Errorf("%s produced an invalid bank: %w", op, err)
		}
		return s.emit(bank, *tf.out, *tf.format)
	})
}

// parseType validates a --type flag value.
func parseType(cmd *Command, value string, stderr io.Writer) (question.Type, bool) {
	typ := question.Type(value)
	if typ.Valid() {
		return typ, true
	}
	fmt.Fprintf(stderr, "invalid --type %q (expected %s|%s)\n", value, question.MultipleChoice, question.ShortAnswer)
	printCommandUsage(cmd, stderr)
	return "", false
}

// runPublish builds the handler for the publish command.
func runPublish(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		tf := newTransformFlags(flags)
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if !requireFlag(cmd, "file", *tf.file, stderr) {
			return ExitUsage
		}
		return applyTransform(stdout, stderr, tf, cmd.Name, func(qs []question.Question) ([]question.Question, error) {
			return question.PublishAll(qs), nil
		})
	}
}

// runAdd builds the handler for the add command.
func runAdd(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		tf := newTransformFlags(flags)
		id := flags.Int("id", 0, "Id of the new question")
		name := flags.String("name", "", "Name of the new question")
		typeName := flags.String("type", string(question.ShortAnswer), "Question type")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if !requireFlag(cmd, "file", *tf.file, stderr) || !requireSet(cmd, flags, "id", stderr) || !requireFlag(cmd, "name", *name, stderr) {
			return ExitUsage
		}
		typ, ok := parseType(cmd, *typeName, stderr)
		if !ok {
			return ExitUsage
		}
		return applyTransform(stdout, stderr, tf, cmd.Name, func(qs []question.Question) ([]question.Question, error) {
			if _, exists := question.Find(qs, *id); exists {
				return nil, fmt.Errorf("id %d is already in use", *id)
			}
			return question.AddNew(qs, *id, *name, typ), nil
		})
	}
}

// runRemove builds the handler for the remove command.
func runRemove(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		tf := newTransformFlags(flags)
		id := flags.Int("id", 0, "Id of the question to remove")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if !requireFlag(cmd, "file", *tf.file, stderr) || !requireSet(cmd, flags, "id", stderr) {
			return ExitUsage
		}
		return applyTransform(stdout, stderr, tf, cmd.Name, func(qs []question.Question) ([]question.Question, error) {
			return question.Remove(qs, *id), nil
		})
	}
}

// runRename builds the handler for the rename command.
func runRename(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		tf := newTransformFlags(flags)
		id := flags.Int("id", 0, "Id of the question to rename")
		name := flags.String("name", "", "New name")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if !requireFlag(cmd, "file", *tf.file, stderr) || !requireSet(cmd, flags, "id", stderr) || !requireFlag(cmd, "name", *name, stderr) {
			return ExitUsage
		}
		return applyTransform(stdout, stderr, tf, cmd.Name, func(qs []question.Question) ([]question.Question, error) {
			return question.RenameByID(qs, *id, *name), nil
		})
	}
}

// runRetype builds the handler for the retype command.
func runRetype(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		tf := newTransformFlags(flags)
		id := flags.Int("id", 0, "Id of the question to change")
		typeName := flags.String("type", "", "New question type")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if !requireFlag(cmd, "file", *tf.file, stderr) || !requireSet(cmd, flags, "id", stderr) || !requireFlag(cmd, "type", *typeName, stderr) {
			return ExitUsage
		}
		typ, ok := parseType(cmd, *typeName, stderr)
		if !ok {
			return ExitUsage
		}
		return applyTransform(stdout, stderr, tf, cmd.Name, func(qs []question.Question) ([]question.Question, error) {
			return question.ChangeTypeByID(qs, *id, typ), nil
		})
	}
}

// runOption builds the handler for the option command.
func runOption(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		tf := newTransformFlags(flags)
		id := flags.Int("id", 0, "Id of the question to edit")
		index := flags.Int("index", -1, "Option index to replace; -1 appends")
		text := flags.String("text", "", "Option text")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if !requireFlag(cmd, "file", *tf.file, stderr) || !requireSet(cmd, flags, "id", stderr) || !requireFlag(cmd, "text", *text, stderr) {
			return ExitUsage
		}
		return applyTransform(stdout, stderr, tf, cmd.Name, func(qs []question.Question) ([]question.Question, error) {
			if q, exists := question.Find(qs, *id); exists && q.Type != question.MultipleChoice {
				return nil, fmt.Errorf("question %d is %s; only multiple choice questions have options", *id, q.Type)
			}
			return question.EditOption(qs, *id, *index, *text)
		})
	}
}

// runDuplicate builds the handler for the duplicate command.
func runDuplicate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		tf := newTransformFlags(flags)
		id := flags.Int("id", 0, "Id of the question to duplicate")
		newID := flags.Int("new-id", 0, "Id of the copy")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if !requireFlag(cmd, "file", *tf.file, stderr) || !requireSet(cmd, flags, "id", stderr) || !requireSet(cmd, flags, "new-id", stderr) {
			return ExitUsage
		}
		return applyTransform(stdout, stderr, tf, cmd.Name, func(qs []question.Question) ([]question.Question, error) {
			if _, exists := question.Find(qs, *newID); exists {
				return nil, fmt.Errorf("id %d is already in use", *newID)
			}
			return question.DuplicateInArray(qs, *id, *newID), nil
		})
	}
}
