package storylist

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const rowIndent = 5

var (
	rowStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			Border(lipgloss.HiddenBorder(), false, false, false, true)

	activeRowStyle = rowStyle.
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("#FF6600"))

	rankStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#828282")).
			Width(rowIndent - 1).
			Align(lipgloss.Right)

	headlineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#DDDDDD"))

	activeHeadlineStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FF6600")).
				Bold(true)

	metaStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#828282"))
	excerptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5F5F5F")).Italic(true)
)

// Delegate draws a story as three lines: rank and title, metadata, and
// a text excerpt for Ask/Show posts.
type Delegate struct{}

func (Delegate) Height() int                         { return 3 }
func (Delegate) Spacing() int                        { return 1 }
func (Delegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (Delegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(StoryItem)
	if !ok {
		return
	}

	row, headline := rowStyle, headlineStyle
	if index == m.Index() {
		row, headline = activeRowStyle, activeHeadlineStyle
	}

	width := m.Width() - rowIndent - 2
	pad := strings.Repeat(" ", rowIndent)
	lines := []string{
		rankStyle.Render(strconv.Itoa(item.Index+1)+".") + " " + headline.Render(clip(item.Title(), width)),
		pad + metaStyle.Render(clip(item.Description(), width)),
		pad + excerptStyle.Render(item.Preview()),
	}
	io.WriteString(w, row.Render(strings.Join(lines, "\n")))
}

// clip shortens s to width cells. A non-positive width leaves s as is.
func clip(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > width-1 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
