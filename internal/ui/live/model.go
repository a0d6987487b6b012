package live

import (
	"io"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model renders an interactive question table using Bubble Tea.
type Model struct {
	state   State
	table   table.Model
	width   int
	height  int
	noColor bool
}

// Options configures the live UI model.
type Options struct {
	NoColor bool
}

// NewModel constructs a live UI model for a question bank.
func NewModel(state State, opts Options) Model {
	return Model{
		state:   state,
		table:   newTable(state, opts.NoColor, true),
		noColor: opts.NoColor,
	}
}

// State returns the current view state.
func (m Model) State() State {
	return m.state
}

// Init has no startup work.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = typed.Width, typed.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		key := typed.String()
		switch key {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
		if action, ok := actionForKey(key); ok {
			m.state = Reduce(m.state, action)
			m.table.SetRows(rowsForQuestions(m.state.Visible()))
			m.table.GotoTop()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the live UI.
func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(m.state, m.noColor),
		renderSummary(m.state, m.noColor),
		m.table.View(),
		renderFooter(m.noColor),
	)
}

func (m *Model) resize() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.table.SetWidth(m.width)
	m.table.SetHeight(max(m.height-4, 1))
	m.table.SetColumns(columnsForWidth(m.width))
}

// Run starts the interactive view and blocks until the user quits.
func Run(state State, opts Options, in io.Reader, out io.Writer) error {
	program := tea.NewProgram(NewModel(state, opts), tea.WithInput(in), tea.WithOutput(out), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
