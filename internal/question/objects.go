package question

import (
	"slices"
	"strconv"
	"strings"
)

// MakeBlank builds an empty question worth one point.
func MakeBlank(id int, name string, typ Type) Question {
	return Question{
		ID:        id,
		Name:      name,
		Type:      typ,
		Options:   []string{},
		Points:    1,
		Published: false,
	}
}

// Duplicate copies original under newID, marks the name as a copy and unpublishes it.
func Duplicate(newID int, original Question) Question {
	dup := Clone(original)
	dup.ID = newID
	dup.Name = "Copy of " + original.Name
	dup.Published = false
	return dup
}

// Clone returns a deep copy of the question.
func Clone(q Question) Question {
	q.Options = cloneOptions(q.Options)
	return q
}

// WithName returns a copy of q with the name replaced.
func (q Question) WithName(name string) Question {
	out := Clone(q)
	out.Name = name
	return out
}

// WithType returns a copy of q with the type replaced. Options are left as is.
func (q Question) WithType(typ Type) Question {
	out := Clone(q)
	out.Type = typ
	return out
}

// WithOptions returns a copy of q holding its own copy of options.
func (q Question) WithOptions(options []string) Question {
	out := q
	out.Options = cloneOptions(options)
	return out
}

// WithPublished returns a copy of q with the published flag replaced.
func (q Question) WithPublished(published bool) Question {
	out := Clone(q)
	out.Published = published
	return out
}

// IsCorrect reports whether answer matches the expected answer, ignoring case and surrounding whitespace.
func IsCorrect(q Question, answer string) bool {
	return NormalizeAnswerText(answer) == NormalizeAnswerText(q.Expected)
}

// IsValid reports whether answer is admissible for the question.
// Multiple choice answers must be one of the options verbatim.
func IsValid(q Question, answer string) bool {
	if q.Type != MultipleChoice {
		return true
	}
	return slices.Contains(q.Options, answer)
}

// ToShortForm renders "<id>: <first ten characters of the name>".
func ToShortForm(q Question) string {
	name := []rune(q.Name)
	if len(name) > 10 {
		name = name[:10]
	}
	return strconv.Itoa(q.ID) + ": " + string(name)
}

// ToMarkdown renders the question as a markdown heading, body and option list.
func ToMarkdown(q Question) string {
	var builder strings.Builder
	builder.WriteString("# ")
	builder.WriteString(q.Name)
	builder.WriteString("\n")
	builder.WriteString(q.Body)
	if q.Type == MultipleChoice {
		for _, option := range q.Options {
			builder.WriteString("\n- ")
			builder.WriteString(option)
		}
	}
	return builder.String()
}

// cloneOptions copies options so the result never aliases the input.
func cloneOptions(options []string) []string {
	return slices.Clone(options)
}
