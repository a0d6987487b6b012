package live

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizkit/internal/question"
)

// fmtInt converts an int to string.
func fmtInt(value int) string {
	return strconv.Itoa(value)
}

// formatName collapses whitespace and truncates long names for display.
func formatName(name string) string {
	normalized := strings.Join(strings.Fields(name), " ")
	if normalized == "" {
		return ""
	}
	const limit = 40
	runes := []rune(normalized)
	if len(runes) <= limit {
		return normalized
	}
	return string(runes[:limit-3]) + "..."
}

// formatType maps question types to display labels.
func formatType(typ question.Type) string {
	switch typ {
	case question.MultipleChoice:
		return "multiple choice"
	case question.ShortAnswer:
		return "short answer"
	default:
		return string(typ)
	}
}

// formatPublished renders the published flag.
func formatPublished(published bool) string {
	if published {
		return "yes"
	}
	return "no"
}

// formatFilters describes the active filters.
func formatFilters(state State) string {
	filters := make([]string, 0, 2)
	if state.PublishedOnly {
		filters = append(filters, "published only")
	}
	if state.HideEmpty {
		filters = append(filters, "non-empty only")
	}
	if len(filters) == 0 {
		return "all questions"
	}
	return strings.Join(filters, ", ")
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
