package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"quizkit/internal/question"
	"quizkit/internal/report"
)

var renderSheetHTML = report.RenderSheetHTML

// runReport builds the handler for the report command.
func runReport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		file := flags.String("file", "", "Path to the question bank")
		title := flags.String("title", "", "Sheet title (default: bank title, then report_title)")
		out := flags.String("out", "", "Write the HTML to a file instead of stdout")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if !requireFlag(cmd, "file", *file, stderr) {
			return ExitUsage
		}
		return withBank(stdout, stderr, *file, func(s *session, bank question.Bank) error {
			sheetTitle := firstNonEmpty(*title, bank.Title, s.cfg.ReportTitle)
			html, err := renderSheetHTML(context.Background(), sheetTitle, bank.Questions)
			if err != nil {
				return fmt.Errorf("render report: %w", err)
			}
			if *out == "" {
				fmt.Fprintln(s.stdout, html)
				return nil
			}
			if err := writeText(*out, html); err != nil {
				return err
			}
			s.log.Info("wrote report", zap.String("path", *out))
			return nil
		})
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
