package question

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrOptionIndex indicates an option index outside the question's options.
var ErrOptionIndex = errors.New("option index out of range")

// csvHeader is the first line of every CSV export.
const csvHeader = "id,name,options,points,published"

// Published returns the published questions in order.
func Published(questions []Question) []Question {
	return filter(questions, func(q Question) bool { return q.Published })
}

// NonEmpty drops questions whose body, expected answer and options are all empty.
func NonEmpty(questions []Question) []Question {
	return filter(questions, func(q Question) bool {
		return !(q.Body == "" && q.Expected == "" && len(q.Options) == 0)
	})
}

// Find returns the first question with the given id.
func Find(questions []Question, id int) (Question, bool) {
	index := indexOf(questions, id)
	if index == -1 {
		return Question{}, false
	}
	return Clone(questions[index]), true
}

// Remove drops every question with the given id.
func Remove(questions []Question, id int) []Question {
	return filter(questions, func(q Question) bool { return q.ID != id })
}

// Names returns the question names in order.
func Names(questions []Question) []string {
	names := make([]string, 0, len(questions))
	for _, q := range questions {
		names = append(names, q.Name)
	}
	return names
}

// SumPoints totals the points of all questions. An empty collection sums to 0.
func SumPoints(questions []Question) int {
	total := 0
	for _, q := range questions {
		total += q.Points
	}
	return total
}

// SumPublishedPoints totals the points of the published questions.
func SumPublishedPoints(questions []Question) int {
	return SumPoints(Published(questions))
}

// SameType reports whether every question shares the first question's type.
func SameType(questions []Question) bool {
	if len(questions) == 0 {
		return true
	}
	first := questions[0].Type
	for _, q := range questions[1:] {
		if q.Type != first {
			return false
		}
	}
	return true
}

// ToCSV renders id, name, option count, points and published flag per question.
// Fields are written verbatim; names containing commas are not quoted.
func ToCSV(questions []Question) string {
	rows := make([]string, 0, len(questions))
	for _, q := range questions {
		rows = append(rows, strings.Join([]string{
			strconv.Itoa(q.ID),
			q.Name,
			strconv.Itoa(len(q.Options)),
			strconv.Itoa(q.Points),
			strconv.FormatBool(q.Published),
		}, ","))
	}
	return csvHeader + "\n" + strings.Join(rows, "\n")
}

// MakeAnswers builds one blank, unsubmitted answer per question.
func MakeAnswers(questions []Question) []Answer {
	answers := make([]Answer, 0, len(questions))
	for _, q := range questions {
		answers = append(answers, Answer{QuestionID: q.ID})
	}
	return answers
}

// PublishAll returns the questions with every one marked published.
func PublishAll(questions []Question) []Question {
	return mapQuestions(questions, func(q Question) Question { return q.WithPublished(true) })
}

// AddNew appends a blank question built from id, name and typ.
func AddNew(questions []Question, id int, name string, typ Type) []Question {
	out := cloneAll(questions)
	return append(out, MakeBlank(id, name, typ))
}

// RenameByID renames the first question with targetID.
func RenameByID(questions []Question, targetID int, newName string) []Question {
	return updateFirst(questions, targetID, func(q Question) Question { return q.WithName(newName) })
}

// ChangeTypeByID changes the type of the first question with targetID.
// Options only survive when the new type is multiple choice.
func ChangeTypeByID(questions []Question, targetID int, newType Type) []Question {
	return updateFirst(questions, targetID, func(q Question) Question {
		changed := q.WithType(newType)
		if newType != MultipleChoice {
			changed.Options = []string{}
		}
		return changed
	})
}

// EditOption appends newOption when targetOptionIndex is -1, otherwise replaces
// the option at that index on the first question with targetID. An index outside
// the options fails with ErrOptionIndex.
func EditOption(questions []Question, targetID, targetOptionIndex int, newOption string) ([]Question, error) {
	out := cloneAll(questions)
	index := indexOf(out, targetID)
	if index == -1 {
		return out, nil
	}
	options := out[index].Options
	switch {
	case targetOptionIndex == -1:
		options = append(options, newOption)
	case targetOptionIndex >= 0 && targetOptionIndex < len(options):
		options[targetOptionIndex] = newOption
	default:
		return nil, fmt.Errorf("question %d: index %d with %d options: %w", targetID, targetOptionIndex, len(options), ErrOptionIndex)
	}
	out[index] = out[index].WithOptions(options)
	return out, nil
}

// DuplicateInArray inserts a duplicate of the first question with targetID right after it.
func DuplicateInArray(questions []Question, targetID, newID int) []Question {
	index := indexOf(questions, targetID)
	if index == -1 {
		return cloneAll(questions)
	}
	out := make([]Question, 0, len(questions)+1)
	for i, q := range questions {
		out = append(out, Clone(q))
		if i == index {
			out = append(out, Duplicate(newID, q))
		}
	}
	return out
}

func indexOf(questions []Question, id int) int {
	for i, q := range questions {
		if q.ID == id {
			return i
		}
	}
	return -1
}

func filter(questions []Question, keep func(Question) bool) []Question {
	out := make([]Question, 0, len(questions))
	for _, q := range questions {
		if keep(q) {
			out = append(out, Clone(q))
		}
	}
	return out
}

func mapQuestions(questions []Question, fn func(Question) Question) []Question {
	out := make([]Question, 0, len(questions))
	for _, q := range questions {
		out = append(out, fn(q))
	}
	return out
}

func cloneAll(questions []Question) []Question {
	return mapQuestions(questions, Clone)
}

// updateFirst copies every question and applies fn to the first one with targetID.
func updateFirst(questions []Question, targetID int, fn func(Question) Question) []Question {
	out := cloneAll(questions)
	if index := indexOf(out, targetID); index != -1 {
		out[index] = fn(out[index])
	}
	return out
}
