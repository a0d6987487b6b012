package report

import (
	"context"
	"strings"

	"github.com/a-h/templ"

	"quizkit/internal/question"
)

// SheetPage renders a printable question sheet for the published questions.
func SheetPage(title string, questions []question.Question) templ.Component {
	return sheetPage(title, question.Published(questions))
}

// RenderSheetHTML renders the sheet template into a string.
func RenderSheetHTML(ctx context.Context, title string, questions []question.Question) (string, error) {
	var builder strings.Builder
	if err := SheetPage(title, questions).Render(ctx, &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}
