package ui

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/fragmede/hackerstories/internal/config"
	"github.com/fragmede/hackerstories/internal/refresh"
	"github.com/fragmede/hackerstories/internal/ui/messages"
	"github.com/fragmede/hackerstories/internal/ui/searchform"
	"github.com/fragmede/hackerstories/internal/ui/statusbar"
	"github.com/fragmede/hackerstories/internal/ui/storylist"
)

const (
	appTitle    = "HackerStories"
	appSubtitle = "Hack Your Life and Make it Better!"

	// Lines used by everything but the list: title, subtitle, search,
	// filter, separator, status bar and help.
	chromeHeight = 7
)

// Focus identifies the component receiving key presses.
type Focus int

const (
	FocusList Focus = iota
	FocusSearch
	FocusFilter
)

// TermStore persists the last submitted search term.
type TermStore interface {
	Load(fallback string) (string, error)
	Save(term string) error
}

// App is the root Bubble Tea model.
type App struct {
	focus Focus

	// Child models
	searchForm searchform.Model
	filterForm searchform.Model
	storyList  storylist.Model
	statusBar  statusbar.Model
	help       help.Model

	// Shared state
	cfg       config.Config
	terms     TermStore
	refresher *refresh.Refresher

	// Dimensions
	width  int
	height int

	// For passing program reference to the refresher
	program *tea.Program
}

// NewApp creates the root application model. The initial query is the
// saved search term, or cfg.InitialQuery when none is saved.
func NewApp(cfg config.Config, searcher storylist.Searcher, results storylist.ResultCache, terms TermStore, refresher *refresh.Refresher) *App {
	query, err := terms.Load(cfg.InitialQuery)
	if err != nil {
		logrus.WithError(err).Warn("loading saved search term")
	}

	return &App{
		focus:      FocusList,
		searchForm: searchform.New(searchform.Search, "Search:", query),
		filterForm: searchform.New(searchform.Filter, "Filter:", ""),
		storyList:  storylist.New(cfg, searcher, results),
		statusBar:  statusbar.New(),
		help:       help.New(),
		cfg:        cfg,
		terms:      terms,
		refresher:  refresher,
	}
}

// SetProgram stores the tea.Program reference and starts the
// background refresher.
func (a *App) SetProgram(p *tea.Program) {
	a.program = p
	if a.refresher != nil {
		a.refresher.Start(p)
	}
}

// Init runs the initial search.
func (a *App) Init() tea.Cmd {
	return a.submit(a.searchForm.Value(), false)
}

// Update handles all messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		listHeight := msg.Height - chromeHeight
		if listHeight < 0 {
			listHeight = 0
		}
		a.storyList.SetSize(msg.Width, listHeight)
		a.searchForm.SetSize(msg.Width)
		a.filterForm.SetSize(msg.Width)
		a.statusBar.SetSize(msg.Width)
		a.help.Width = msg.Width
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, a.quit()
		}

		switch a.focus {
		case FocusSearch:
			var cmd tea.Cmd
			a.searchForm, cmd = a.searchForm.Update(msg)
			return a, cmd
		case FocusFilter:
			var cmd tea.Cmd
			a.filterForm, cmd = a.filterForm.Update(msg)
			return a, cmd
		}

		switch {
		case key.Matches(msg, Keys.Quit):
			return a, a.quit()
		case key.Matches(msg, Keys.Search):
			a.focus = FocusSearch
			return a, a.searchForm.Focus()
		case key.Matches(msg, Keys.Filter):
			a.focus = FocusFilter
			return a, a.filterForm.Focus()
		case key.Matches(msg, Keys.Refresh):
			return a, a.refresh()
		case key.Matches(msg, Keys.Back):
			if a.filterForm.Value() != "" {
				a.filterForm.SetValue("")
				return a, a.route(messages.FilterChangedMsg{})
			}
			return a, nil
		}

	case messages.FocusListMsg:
		a.focusList()
		return a, nil

	case messages.SearchSubmittedMsg:
		a.focusList()
		return a, a.submit(msg.Query, msg.Force)

	case messages.RefreshMsg:
		return a, a.refresh()

	case messages.StoryRemovedMsg:
		a.statusBar.SetStatus("Removed: "+msg.Story.Title, false)

	case messages.StatusMsg:
		a.statusBar.SetStatus(msg.Text, msg.IsError)
		if !msg.IsError {
			if url, ok := strings.CutPrefix(msg.Text, "Opening: "); ok {
				go openBrowser(url)
			}
		}
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.statusBar, cmd = a.statusBar.Update(msg)
		return a, cmd
	}

	// Cursor blinks and other internal messages of the focused input.
	var cmd tea.Cmd
	switch a.focus {
	case FocusSearch:
		a.searchForm, cmd = a.searchForm.Update(msg)
	case FocusFilter:
		a.filterForm, cmd = a.filterForm.Update(msg)
	}
	cmds = append(cmds, cmd, a.route(msg))
	return a, tea.Batch(cmds...)
}

// View renders the application.
func (a *App) View() string {
	header := lipgloss.JoinVertical(lipgloss.Left,
		HeaderStyle.Render(appTitle),
		SubtitleStyle.Render(appSubtitle),
	)
	separator := SeparatorStyle.Render(strings.Repeat("─", max(a.width, 1)))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		a.searchForm.View(),
		a.filterForm.View(),
		separator,
		a.storyList.View(),
		a.statusBar.View(),
		a.help.View(Keys),
	)
}

// Focus returns the component receiving key presses.
func (a *App) Focus() Focus {
	return a.focus
}

// StoryList returns the story list model.
func (a *App) StoryList() storylist.Model {
	return a.storyList
}

// route passes msg to the story list and refreshes the status bar.
func (a *App) route(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	a.storyList, cmd = a.storyList.Update(msg)
	a.syncStatus()
	return cmd
}

// submit persists query and starts a search for it. Blank queries are
// ignored.
func (a *App) submit(query string, force bool) tea.Cmd {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	a.searchForm.SetValue(query)
	if err := a.terms.Save(query); err != nil {
		logrus.WithError(err).Error("saving search term")
		a.statusBar.SetStatus("Could not save search term", true)
	}

	logrus.WithFields(logrus.Fields{"query": query, "force": force}).Debug("search submitted")
	cmd := a.storyList.Search(query, force)
	a.syncStatus()
	return tea.Batch(cmd, a.statusBar.Tick())
}

// refresh re-runs the current search past the cache. The search form
// and the saved term are left alone, so a timer tick does not clobber
// text being typed.
func (a *App) refresh() tea.Cmd {
	query := a.storyList.Query()
	if query == "" {
		return nil
	}

	logrus.WithField("query", query).Debug("refreshing")
	cmd := a.storyList.Search(query, true)
	a.syncStatus()
	return tea.Batch(cmd, a.statusBar.Tick())
}

func (a *App) syncStatus() {
	a.statusBar.SetQuery(a.storyList.Query(), a.storyList.Filter())
	a.statusBar.SetState(a.storyList.State(), a.storyList.Visible())
}

func (a *App) focusList() {
	a.focus = FocusList
	a.searchForm.Blur()
	a.filterForm.Blur()
}

func (a *App) quit() tea.Cmd {
	if a.refresher != nil {
		a.refresher.Stop()
	}
	return tea.Quit
}

func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	default:
		return
	}
	if err := cmd.Run(); err != nil {
		logrus.WithError(err).WithField("url", url).Warn("opening browser")
	}
}
