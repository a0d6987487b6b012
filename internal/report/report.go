package report

import (
	"context"

	"quizkit/internal/question"
)

// BuildSheetHTML renders a question sheet, returning an empty string on failure.
func BuildSheetHTML(title string, questions []question.Question) string {
	html, err := RenderSheetHTML(context.Background(), title, questions)
	if err != nil {
		return ""
	}
	return html
}
