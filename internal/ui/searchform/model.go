package searchform

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fragmede/hackerstories/internal/ui/messages"
)

var (
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true)
	focusedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6600"))
	buttonStyle   = lipgloss.NewStyle().Background(lipgloss.Color("#222222")).Foreground(lipgloss.Color("#FFFFFF")).Padding(0, 1)
	disabledStyle = lipgloss.NewStyle().Background(lipgloss.Color("#C7C7C7")).Foreground(lipgloss.Color("#666666")).Padding(0, 1)
)

// Kind selects how the form reports its value.
type Kind int

const (
	// Search reports the value only on enter, as a SearchSubmittedMsg.
	Search Kind = iota
	// Filter reports every edit as a FilterChangedMsg.
	Filter
)

// Model is a one-line labelled text input.
type Model struct {
	kind  Kind
	label string
	input textinput.Model
	width int
}

// New creates a form of the given kind holding value.
func New(kind Kind, label, value string) Model {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 256
	input.Width = 40
	input.SetValue(value)
	switch kind {
	case Search:
		input.Placeholder = "search stories"
	case Filter:
		input.Placeholder = "filter titles"
	}

	return Model{
		kind:  kind,
		label: label,
		input: input,
	}
}

// SetSize sets the available width.
func (m *Model) SetSize(w int) {
	m.width = w
	inputWidth := w - lipgloss.Width(m.label) - 14
	if inputWidth < 10 {
		inputWidth = 10
	}
	m.input.Width = inputWidth
}

// Focus gives the input keyboard focus.
func (m *Model) Focus() tea.Cmd {
	m.input.CursorEnd()
	return m.input.Focus()
}

// Blur removes keyboard focus.
func (m *Model) Blur() {
	m.input.Blur()
}

// Focused reports whether the input has focus.
func (m Model) Focused() bool {
	return m.input.Focused()
}

// Value returns the current text.
func (m Model) Value() string {
	return m.input.Value()
}

// SetValue replaces the current text.
func (m *Model) SetValue(v string) {
	m.input.SetValue(v)
}

// CanSubmit reports whether enter would submit. A blank search can
// not be submitted.
func (m Model) CanSubmit() bool {
	return strings.TrimSpace(m.input.Value()) != ""
}

// Update handles messages. It only reacts to keys while focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.input.Focused() {
		return m, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			if m.kind == Filter {
				m.input.Blur()
				return m, focusList
			}
			if !m.CanSubmit() {
				return m, nil
			}
			m.input.Blur()
			query := strings.TrimSpace(m.input.Value())
			return m, func() tea.Msg {
				return messages.SearchSubmittedMsg{Query: query}
			}
		case "esc":
			m.input.Blur()
			return m, focusList
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if m.kind == Filter && m.input.Value() != before {
		query := m.input.Value()
		return m, tea.Batch(cmd, func() tea.Msg {
			return messages.FilterChangedMsg{Query: query}
		})
	}
	return m, cmd
}

// View renders the form.
func (m Model) View() string {
	label := labelStyle.Render(m.label)
	if m.input.Focused() {
		label = focusedStyle.Render(m.label)
	}

	row := label + " " + m.input.View()
	if m.kind == Search {
		button := buttonStyle.Render("Search")
		if !m.CanSubmit() {
			button = disabledStyle.Render("Search")
		}
		row += " " + button
	}
	return row
}

func focusList() tea.Msg {
	return messages.FocusListMsg{}
}
