package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"quizkit/internal/config"
	"quizkit/internal/logger"
	"quizkit/internal/question"
)

// ErrMissingQuestion indicates that no question has the requested id.
var ErrMissingQuestion = errors.New("question not found")

// session carries settings and output streams for one command invocation.
type session struct {
	cfg    *config.Config
	log    *zap.Logger
	stdout io.Writer
	stderr io.Writer
}

// newSession loads configuration and builds a logger writing to stderr.
func newSession(stdout, stderr io.Writer) (*session, error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg, stderr)
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, log: log, stdout: stdout, stderr: stderr}, nil
}

// close flushes buffered log entries.
func (s *session) close() {
	_ = s.log.Sync()
}

// fail reports err on stderr and returns the error exit code.
func (s *session) fail(err error) int {
	s.log.Debug("command failed", zap.Error(err))
	fmt.Fprintf(s.stderr, "Error: %v\n", err)
	return ExitError
}

// loadBank reads and validates the bank at path.
func (s *session) loadBank(path string) (question.Bank, error) {
	bank, err := question.LoadBank(path)
	if err != nil {
		return question.Bank{}, err
	}
	s.log.Debug("loaded question bank", zap.String("path", path), zap.Int("questions", len(bank.Questions)))
	return bank, nil
}

// format resolves the output encoding from a flag, falling back to the config.
func (s *session) format(flagValue string) (question.Format, error) {
	if strings.TrimSpace(flagValue) == "" {
		return question.ParseFormat(s.cfg.OutputFormat)
	}
	return question.ParseFormat(flagValue)
}

// emit writes value to outPath (format chosen by extension) or to stdout.
func (s *session) emit(value any, outPath, formatFlag string) error {
	if outPath != "" {
		if bank, ok := value.(question.Bank); ok {
			if err := question.WriteBank(outPath, bank); err != nil {
				return err
			}
			s.log.Info("wrote question bank", zap.String("path", outPath), zap.Int("questions", len(bank.Questions)))
			return nil
		}
		return writeEncoded(outPath, value, question.FormatForPath(outPath))
	}
	format, err := s.format(formatFlag)
	if err != nil {
		return err
	}
	return question.Encode(s.stdout, value, format)
}

// parseFlags handles help and parse errors for a command. ok is false when
// the command should return code immediately.
func parseFlags(cmd *Command, flags *flag.FlagSet, args []string, stdout, stderr io.Writer) (code int, ok bool) {
	if wantsHelp(args) {
		printCommandUsage(cmd, stdout)
		return ExitOK, false
	}
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return ExitOK, false
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	return ExitOK, true
}

// requireFlag reports a usage error when a required string flag is empty.
func requireFlag(cmd *Command, name, value string, stderr io.Writer) bool {
	if strings.TrimSpace(value) != "" {
		return true
	}
	fmt.Fprintf(stderr, "missing required flag --%s\n", name)
	printCommandUsage(cmd, stderr)
	return false
}

// requireSet reports a usage error when a flag was not passed explicitly.
func requireSet(cmd *Command, flags *flag.FlagSet, name string, stderr io.Writer) bool {
	set := false
	flags.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	if set {
		return true
	}
	fmt.Fprintf(stderr, "missing required flag --%s\n", name)
	printCommandUsage(cmd, stderr)
	return false
}
