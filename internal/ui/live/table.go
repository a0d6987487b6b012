package live

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"quizkit/internal/question"
)

// defaultColumns returns the table columns at their natural widths.
func defaultColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Name", Width: 40},
		{Title: "Type", Width: 16},
		{Title: "Options", Width: 8},
		{Title: "Points", Width: 7},
		{Title: "Published", Width: 10},
	}
}

// columnsForWidth shrinks the name column to fit the terminal width.
func columnsForWidth(width int) []table.Column {
	columns := defaultColumns()
	fixed := 0
	for i, column := range columns {
		if i != 1 {
			fixed += column.Width
		}
	}
	// each cell carries two characters of padding
	nameWidth := width - fixed - 2*len(columns)
	if nameWidth < 10 {
		nameWidth = 10
	}
	if nameWidth < columns[1].Width {
		columns[1].Width = nameWidth
	}
	return columns
}

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		styles.Selected = lipgloss.NewStyle()
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// rowsForQuestions converts questions into table rows.
func rowsForQuestions(questions []question.Question) []table.Row {
	rows := make([]table.Row, 0, len(questions))
	for _, q := range questions {
		rows = append(rows, table.Row{
			fmtInt(q.ID),
			formatName(q.Name),
			formatType(q.Type),
			fmtInt(len(q.Options)),
			fmtInt(q.Points),
			formatPublished(q.Published),
		})
	}
	return rows
}

// newTable builds a table for the visible questions.
func newTable(state State, noColor, focused bool) table.Model {
	rows := rowsForQuestions(state.Visible())
	t := table.New(
		table.WithColumns(defaultColumns()),
		table.WithRows(rows),
		table.WithFocused(focused),
		table.WithHeight(len(rows)+2),
	)
	t.SetStyles(tableStyles(noColor))
	return t
}
