package statusbar

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fragmede/hackerstories/internal/stories"
)

var (
	barStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#333333")).
			Foreground(lipgloss.Color("#FFFFFF"))

	queryStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#FF6600")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 1)

	filterStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#555555")).
			Foreground(lipgloss.Color("#CCCCCC")).
			Padding(0, 1)

	countStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#333333")).
			Foreground(lipgloss.Color("#00FF00")).
			Padding(0, 1)

	loadingStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#333333")).
			Foreground(lipgloss.Color("#FF6600")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#8B0000")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 1)

	statusTextStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#333333")).
			Foreground(lipgloss.Color("#AAAAAA")).
			Padding(0, 1)
)

// Model is the status bar at the bottom of the screen.
type Model struct {
	width        int
	spinner      spinner.Model
	query        string
	filter       string
	loading      bool
	failed       bool
	storyCount   int
	commentCount int
	statusText   string
	statusError  bool
}

// New creates a new status bar.
func New() Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6600"))
	return Model{spinner: s}
}

// SetSize sets the width.
func (m *Model) SetSize(w int) {
	m.width = w
}

// SetQuery sets the active search term and title filter.
func (m *Model) SetQuery(query, filter string) {
	m.query = query
	m.filter = filter
}

// SetState mirrors the fetch state and the totals of the visible
// stories.
func (m *Model) SetState(state stories.State, visible []stories.Story) {
	m.loading = state.IsLoading
	m.failed = state.IsError
	m.storyCount = len(visible)
	m.commentCount = stories.SumComments(visible)
}

// SetStatus sets a temporary status message.
func (m *Model) SetStatus(text string, isError bool) {
	m.statusText = text
	m.statusError = isError
}

// Tick starts the loading spinner.
func (m Model) Tick() tea.Cmd {
	return m.spinner.Tick
}

// Update advances the spinner while loading.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); ok && m.loading {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the status bar.
func (m Model) View() string {
	left := queryStyle.Render(m.query)
	if m.filter != "" {
		left += filterStyle.Render("filter: " + m.filter)
	}

	var right string
	switch {
	case m.loading:
		right += loadingStyle.Render(m.spinner.View() + " Loading ...")
	case m.failed:
		right += errorStyle.Render("Something went wrong ...")
	}
	right += countStyle.Render(fmt.Sprintf("%d stories · %d comments", m.storyCount, m.commentCount))
	if m.statusText != "" {
		if m.statusError {
			right += errorStyle.Render(m.statusText)
		} else {
			right += statusTextStyle.Render(m.statusText)
		}
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	mid := barStyle.Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Top, left, mid, right)
}
