package live

import "quizkit/internal/question"

// State holds the question bank shown by the view and its active filters.
type State struct {
	Title         string
	Questions     []question.Question
	PublishedOnly bool
	HideEmpty     bool
}

// Summary aggregates totals for the visible questions.
type Summary struct {
	Count           int
	Points          int
	PublishedPoints int
	SameType        bool
}

// Visible applies the active filters.
func (s State) Visible() []question.Question {
	visible := s.Questions
	if s.PublishedOnly {
		visible = question.Published(visible)
	}
	if s.HideEmpty {
		visible = question.NonEmpty(visible)
	}
	return visible
}

// Summarize computes totals for questions.
func Summarize(questions []question.Question) Summary {
	return Summary{
		Count:           len(questions),
		Points:          question.SumPoints(questions),
		PublishedPoints: question.SumPublishedPoints(questions),
		SameType:        question.SameType(questions),
	}
}
