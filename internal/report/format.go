package report

import (
	"strconv"

	"quizkit/internal/question"
)

// formatPoints renders a point value with its unit.
func formatPoints(points int) string {
	if points == 1 {
		return "1 point"
	}
	return strconv.Itoa(points) + " points"
}

// typeClass maps a question type to its CSS class.
func typeClass(typ question.Type) string {
	switch typ {
	case question.MultipleChoice:
		return "mcq"
	case question.ShortAnswer:
		return "short"
	default:
		return "other"
	}
}
