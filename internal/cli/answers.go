package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"quizkit/internal/question"
)

// AnswerSheet is the file produced by the answers command and read by grade.
type AnswerSheet struct {
	ID      string            `json:"id" yaml:"id"`
	Title   string            `json:"title,omitempty" yaml:"title,omitempty"`
	Answers []question.Answer `json:"answers" yaml:"answers"`
	Score   *int              `json:"score,omitempty" yaml:"score,omitempty"`
}

// newSheetID generates answer sheet ids.
var newSheetID = func() string {
	return uuid.NewString()
}

// runAnswers builds the handler for the answers command.
func runAnswers(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		file := flags.String("file", "", "Path to the question bank")
		out := flags.String("out", "", "Write the sheet to a file instead of stdout")
		format := flags.String("format", "", "Output format for stdout (yaml|json)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if !requireFlag(cmd, "file", *file, stderr) {
			return ExitUsage
		}
		return withBank(stdout, stderr, *file, func(s *session, bank question.Bank) error {
			sheet := AnswerSheet{
				ID:      newSheetID(),
				Title:   bank.Title,
				Answers: question.MakeAnswers(bank.Questions),
			}
			return s.emit(sheet, *out, *format)
		})
	}
}

// runGrade builds the handler for the grade command.
func runGrade(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		file := flags.String("file", "", "Path to the question bank")
		answersPath := flags.String("answers", "", "Path to the answer sheet")
		out := flags.String("out", "", "Write the graded sheet to a file instead of stdout")
		format := flags.String("format", "", "Output format for stdout (yaml|json)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if !requireFlag(cmd, "file", *file, stderr) || !requireFlag(cmd, "answers", *answersPath, stderr) {
			return ExitUsage
		}
		return withBank(stdout, stderr, *file, func(s *session, bank question.Bank) error {
			sheet, err := loadAnswerSheet(*answersPath)
			if err != nil {
				return err
			}
			sheet.Answers = question.Grade(bank.Questions, sheet.Answers)
			score := question.Score(bank.Questions, sheet.Answers)
			sheet.Score = &score
			return s.emit(sheet, *out, *format)
		})
	}
}

// loadAnswerSheet reads a sheet in the format implied by its extension.
func loadAnswerSheet(path string) (AnswerSheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AnswerSheet{}, fmt.Errorf("read answer sheet: %w", err)
	}
	var sheet AnswerSheet
	if err := question.Decode(data, &sheet, question.FormatForPath(path)); err != nil {
		return AnswerSheet{}, fmt.Errorf("answer sheet: %w", err)
	}
	return sheet, nil
}
