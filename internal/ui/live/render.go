package live

import (
	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the bank title line.
func renderHeader(state State, noColor bool) string {
	title := state.Title
	if title == "" {
		title = "Questions"
	}
	return stylize(title+" | "+formatFilters(state), noColor, lipgloss.Color("33"))
}

// renderSummary renders the totals line for the visible questions.
func renderSummary(state State, noColor bool) string {
	summary := Summarize(state.Visible())
	line := "Questions: " + fmtInt(summary.Count) +
		" Points: " + fmtInt(summary.Points) +
		" Published points: " + fmtInt(summary.PublishedPoints)
	if summary.SameType {
		line += " (single type)"
	} else {
		line += " (mixed types)"
	}
	return stylize(line, noColor, lipgloss.Color("242"))
}

// renderFooter renders the key help line.
func renderFooter(noColor bool) string {
	return stylize("p: published only  e: hide empty  r: reset  q: quit", noColor, lipgloss.Color("244"))
}

// RenderPlain renders the header, summary and table once, without interaction.
func RenderPlain(state State, noColor bool) string {
	t := newTable(state, noColor, false)
	return lipgloss.JoinVertical(lipgloss.Left, renderHeader(state, noColor), renderSummary(state, noColor), t.View())
}
