package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quizkit/internal/question"
	"quizkit/internal/ui/live"
)

const sampleBank = `version: 1
title: Basics
questions:
  - id: 1
    name: Addition
    body: "What is 2+2?"
    type: short_answer_question
    expected: "4"
    points: 1
    published: true
  - id: 2
    name: Letters
    body: "What is the last letter of the English alphabet?"
    type: short_answer_question
    expected: Z
    points: 1
  - id: 5
    name: Colors
    body: "Which of these is a color?"
    type: multiple_choice_question
    options: [red, apple, firetruck]
    expected: red
    points: 1
    published: true
  - id: 9
    name: Shapes
    body: "What shape can you make with one line?"
    type: multiple_choice_question
    options: [square, triangle, circle]
    expected: circle
    points: 2
`

func writeBank(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("QUIZKIT_CONFIG", "")
	path := filepath.Join(dir, "bank.yml")
	if err := os.WriteFile(path, []byte(sampleBank), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	return path
}

func runCLI(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var out, err bytes.Buffer
	code := Run(args, &out, &err)
	return out.String(), err.String(), code
}

func parseBankOutput(t *testing.T, output string) question.Bank {
	t.Helper()
	bank, err := question.ParseBank([]byte(output), question.FormatYAML)
	if err != nil {
		t.Fatalf("parse output: %v\n%s", err, output)
	}
	return bank
}

func TestValidateCommand(t *testing.T) {
	path := writeBank(t)
	out, errOut, code := runCLI(t, "validate", "--file", path)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, errOut)
	}
	if strings.TrimSpace(out) != "Bank OK (4 questions)" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestValidateCommandReportsIssues(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "bad.yml")
	payload := "version: 1\nquestions:\n  - id: 1\n    type: essay\n  - id: 1\n    type: short_answer_question\n"
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	_, errOut, code := runCLI(t, "validate", "--file", path)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	for _, token := range []string{"Validation failed", "questions[0].type", "duplicate id 1"} {
		if !strings.Contains(errOut, token) {
			t.Fatalf("expected %q in %q", token, errOut)
		}
	}
}

func TestNamesCommand(t *testing.T) {
	path := writeBank(t)
	out, _, code := runCLI(t, "names", "--file", path)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if out != "Addition\nLetters\nColors\nShapes\n" {
		t.Fatalf("unexpected names %q", out)
	}
	out, _, _ = runCLI(t, "names", "--file", path, "--short")
	if out != "1: Addition\n2: Letters\n5: Colors\n9: Shapes\n" {
		t.Fatalf("unexpected short names %q", out)
	}
}

func TestFindCommand(t *testing.T) {
	path := writeBank(t)
	out, _, code := runCLI(t, "find", "--file", path, "--id", "5", "--format", "json")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	var q question.Question
	if err := question.Decode([]byte(out), &q, question.FormatJSON); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if q.Name != "Colors" || len(q.Options) != 3 {
		t.Fatalf("unexpected question %+v", q)
	}

	out, _, _ = runCLI(t, "find", "--file", path, "--id", "5", "--format", "markdown")
	if out != "# Colors\nWhich of these is a color?\n- red\n- apple\n- firetruck\n" {
		t.Fatalf("unexpected markdown %q", out)
	}

	_, errOut, code := runCLI(t, "find", "--file", path, "--id", "42")
	if code != ExitError || !strings.Contains(errOut, "question not found") {
		t.Fatalf("expected not found error, got %d %q", code, errOut)
	}
}

func TestPointsCommandAfterPublish(t *testing.T) {
	path := writeBank(t)
	out, _, _ := runCLI(t, "points", "--file", path)
	if strings.TrimSpace(out) != "5" {
		t.Fatalf("expected 5 points, got %q", out)
	}
	out, _, _ = runCLI(t, "points", "--file", path, "--published")
	if strings.TrimSpace(out) != "2" {
		t.Fatalf("expected 2 published points, got %q", out)
	}

	published := filepath.Join(t.TempDir(), "published.yml")
	if _, errOut, code := runCLI(t, "publish", "--file", path, "--out", published); code != ExitOK {
		t.Fatalf("publish failed: %s", errOut)
	}
	out, _, _ = runCLI(t, "points", "--file", published, "--published")
	if strings.TrimSpace(out) != "5" {
		t.Fatalf("expected all points published, got %q", out)
	}
}

func TestCSVCommand(t *testing.T) {
	path := writeBank(t)
	out, _, code := runCLI(t, "csv", "--file", path)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	want := "id,name,options,points,published\n1,Addition,0,1,true\n2,Letters,0,1,false\n5,Colors,3,1,true\n9,Shapes,3,2,false\n"
	if out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}

	target := filepath.Join(t.TempDir(), "bank.csv")
	if _, errOut, code := runCLI(t, "csv", "--file", path, "--out", target); code != ExitOK {
		t.Fatalf("csv --out failed: %s", errOut)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if string(data) != strings.TrimSuffix(want, "\n") {
		t.Fatalf("unexpected file contents %q", string(data))
	}
}

// TestCSVKeepsNamesVerbatim verifies a renamed question's padding survives a reload.
func TestCSVKeepsNamesVerbatim(t *testing.T) {
	path := writeBank(t)
	renamed := filepath.Join(t.TempDir(), "renamed.yml")
	if _, errOut, code := runCLI(t, "rename", "--file", path, "--id", "1", "--name", " Addition ", "--out", renamed); code != ExitOK {
		t.Fatalf("rename failed: %s", errOut)
	}
	out, errOut, code := runCLI(t, "csv", "--file", renamed)
	if code != ExitOK {
		t.Fatalf("csv failed: %s", errOut)
	}
	if !strings.Contains(out, "\n1, Addition ,0,1,true\n") {
		t.Fatalf("expected verbatim name in %q", out)
	}
}

func TestAnswersAndGradeCommands(t *testing.T) {
	path := writeBank(t)
	original := newSheetID
	t.Cleanup(func() { newSheetID = original })
	newSheetID = func() string { return "sheet-1" }

	sheetPath := filepath.Join(t.TempDir(), "sheet.yml")
	if _, errOut, code := runCLI(t, "answers", "--file", path, "--out", sheetPath); code != ExitOK {
		t.Fatalf("answers failed: %s", errOut)
	}
	sheet, err := loadAnswerSheet(sheetPath)
	if err != nil {
		t.Fatalf("load sheet: %v", err)
	}
	if sheet.ID != "sheet-1" || len(sheet.Answers) != 4 || sheet.Answers[2].QuestionID != 5 {
		t.Fatalf("unexpected sheet %+v", sheet)
	}

	sheet.Answers[0].Text = "4"
	sheet.Answers[3].Text = "circle"
	if err := writeEncoded(sheetPath, sheet, question.FormatYAML); err != nil {
		t.Fatalf("write sheet: %v", err)
	}
	out, errOut, code := runCLI(t, "grade", "--file", path, "--answers", sheetPath, "--format", "json")
	if code != ExitOK {
		t.Fatalf("grade failed: %s", errOut)
	}
	var graded AnswerSheet
	if err := question.Decode([]byte(out), &graded, question.FormatJSON); err != nil {
		t.Fatalf("decode graded sheet: %v", err)
	}
	if graded.Score == nil || *graded.Score != 3 {
		t.Fatalf("expected score 3, got %+v", graded.Score)
	}
	if !graded.Answers[1].Submitted || graded.Answers[1].Correct {
		t.Fatalf("expected blank answer to be submitted and wrong, got %+v", graded.Answers[1])
	}
}

func TestTransformCommands(t *testing.T) {
	path := writeBank(t)
	cases := []struct {
		name  string
		args  []string
		check func(t *testing.T, bank question.Bank)
	}{
		{
			name: "add",
			args: []string{"add", "--id", "12", "--name", "Blank", "--type", "multiple_choice_question"},
			check: func(t *testing.T, bank question.Bank) {
				last := bank.Questions[len(bank.Questions)-1]
				if last.ID != 12 || last.Type != question.MultipleChoice || last.Points != 1 {
					t.Fatalf("unexpected new question %+v", last)
				}
			},
		},
		{
			name: "remove",
			args: []string{"remove", "--id", "2"},
			check: func(t *testing.T, bank question.Bank) {
				if _, ok := question.Find(bank.Questions, 2); ok || len(bank.Questions) != 3 {
					t.Fatalf("expected question 2 removed, got %+v", bank.Questions)
				}
			},
		},
		{
			name: "rename",
			args: []string{"rename", "--id", "1", "--name", "Sum"},
			check: func(t *testing.T, bank question.Bank) {
				if bank.Questions[0].Name != "Sum" {
					t.Fatalf("expected rename, got %q", bank.Questions[0].Name)
				}
			},
		},
		{
			name: "retype",
			args: []string{"retype", "--id", "9", "--type", "short_answer_question"},
			check: func(t *testing.T, bank question.Bank) {
				if bank.Questions[3].Type != question.ShortAnswer || len(bank.Questions[3].Options) != 0 {
					t.Fatalf("unexpected retyped question %+v", bank.Questions[3])
				}
			},
		},
		{
			name: "option append",
			args: []string{"option", "--id", "5", "--text", "blue"},
			check: func(t *testing.T, bank question.Bank) {
				if got := bank.Questions[2].Options; len(got) != 4 || got[3] != "blue" {
					t.Fatalf("unexpected options %v", got)
				}
			},
		},
		{
			name: "duplicate",
			args: []string{"duplicate", "--id", "2", "--new-id", "3"},
			check: func(t *testing.T, bank question.Bank) {
				if bank.Questions[2].ID != 3 || bank.Questions[2].Name != "Copy of Letters" {
					t.Fatalf("unexpected duplicate %+v", bank.Questions[2])
				}
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			args := append(tc.args, "--file", path)
			out, errOut, code := runCLI(t, args...)
			if code != ExitOK {
				t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, errOut)
			}
			tc.check(t, parseBankOutput(t, out))
		})
	}
}

func TestTransformCommandErrors(t *testing.T) {
	path := writeBank(t)
	_, errOut, code := runCLI(t, "option", "--file", path, "--id", "9", "--index", "5", "--text", "x")
	if code != ExitError || !strings.Contains(errOut, "option index out of range") {
		t.Fatalf("expected option index error, got %d %q", code, errOut)
	}
	edited := filepath.Join(t.TempDir(), "edited.yml")
	_, errOut, code = runCLI(t, "option", "--file", path, "--id", "1", "--text", "four", "--out", edited)
	if code != ExitError || !strings.Contains(errOut, "only multiple choice questions have options") {
		t.Fatalf("expected short answer option error, got %d %q", code, errOut)
	}
	if _, err := os.Stat(edited); !os.IsNotExist(err) {
		t.Fatalf("expected no bank written, stat err %v", err)
	}
	_, errOut, code = runCLI(t, "duplicate", "--file", path, "--id", "2", "--new-id", "5")
	if code != ExitError || !strings.Contains(errOut, "already in use") {
		t.Fatalf("expected id in use error, got %d %q", code, errOut)
	}
	_, errOut, code = runCLI(t, "retype", "--file", path, "--id", "9", "--type", "essay")
	if code != ExitUsage || !strings.Contains(errOut, "invalid --type") {
		t.Fatalf("expected type usage error, got %d %q", code, errOut)
	}
	_, errOut, code = runCLI(t, "rename", "--file", path, "--name", "x")
	if code != ExitUsage || !strings.Contains(errOut, "--id") {
		t.Fatalf("expected missing id usage error, got %d %q", code, errOut)
	}
}

func TestListCommandPlain(t *testing.T) {
	path := writeBank(t)
	out, errOut, code := runCLI(t, "list", "--file", path, "--ui", "plain", "--published")
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, errOut)
	}
	if !strings.Contains(out, "Addition") || !strings.Contains(out, "Colors") {
		t.Fatalf("expected published questions, got %q", out)
	}
	if strings.Contains(out, "Letters") {
		t.Fatalf("expected unpublished question hidden, got %q", out)
	}
}

func TestListCommandLive(t *testing.T) {
	path := writeBank(t)
	originalTTY, originalRun := isTerminal, runLiveUI
	t.Cleanup(func() { isTerminal, runLiveUI = originalTTY, originalRun })
	isTerminal = func(_ io.Writer) bool { return true }

	var got live.State
	runLiveUI = func(state live.State, _ live.Options, _ io.Writer) error {
		got = state
		return nil
	}
	if _, errOut, code := runCLI(t, "list", "--file", path, "--non-empty"); code != ExitOK {
		t.Fatalf("list failed: %s", errOut)
	}
	if got.Title != "Basics" || !got.HideEmpty || len(got.Questions) != 4 {
		t.Fatalf("unexpected live state %+v", got)
	}
}

func TestReportCommand(t *testing.T) {
	path := writeBank(t)
	out, _, code := runCLI(t, "report", "--file", path)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if !strings.Contains(out, "<h1>Basics</h1>") || strings.Contains(out, "Shapes") {
		t.Fatalf("unexpected report %q", out)
	}

	original := renderSheetHTML
	t.Cleanup(func() { renderSheetHTML = original })
	renderSheetHTML = func(context.Context, string, []question.Question) (string, error) {
		return "", errors.New("boom")
	}
	_, errOut, code := runCLI(t, "report", "--file", path, "--title", "Override")
	if code != ExitError || !strings.Contains(errOut, "render report: boom") {
		t.Fatalf("expected render error, got %d %q", code, errOut)
	}
}
