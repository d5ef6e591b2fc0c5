package storylist

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/fragmede/hackerstories/internal/config"
	"github.com/fragmede/hackerstories/internal/stories"
	"github.com/fragmede/hackerstories/internal/ui/messages"
)

var emptyStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#828282")).
	Padding(1, 2)

// KeyMap holds the bindings handled by the story list itself.
type KeyMap struct {
	Remove  key.Binding
	OpenURL key.Binding
}

var Keys = KeyMap{
	Remove:  key.NewBinding(key.WithKeys("x", "d"), key.WithHelp("x", "remove")),
	OpenURL: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open url")),
}

// Searcher runs a search against the remote API.
type Searcher interface {
	SearchPages(ctx context.Context, query string, pages int) ([]stories.Story, error)
}

// ResultCache stores search results between runs.
type ResultCache interface {
	GetSearch(query string, ttl time.Duration) ([]stories.Story, bool, error)
	PutSearch(query string, result []stories.Story) error
	InvalidateSearch(query string) error
}

// Model is the story list view. It is the only owner of the fetch
// state; every change goes through stories.Reduce.
type Model struct {
	list       list.Model
	state      stories.State
	query      string
	filter     string
	generation int
	searcher   Searcher
	cache      ResultCache
	cfg        config.Config
	width      int
	height     int
}

// New creates a new story list model. cache may be nil.
func New(cfg config.Config, searcher Searcher, cache ResultCache) Model {
	l := list.New(nil, Delegate{}, 0, 0)
	l.Title = "Stories"
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.SetStatusBarItemName("story", "stories")

	return Model{
		list:     l,
		state:    stories.InitialState(),
		searcher: searcher,
		cache:    cache,
		cfg:      cfg,
	}
}

// SetSize updates the viewport dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.list.SetSize(w, h)
}

// Search starts a new search for query. Results of earlier searches
// that arrive later are dropped.
func (m *Model) Search(query string, force bool) tea.Cmd {
	m.generation++
	m.query = query
	m.dispatch(stories.FetchInit{})
	return m.loadStories(query, m.generation, force)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.StoriesLoadedMsg:
		log := logrus.WithFields(logrus.Fields{"query": msg.Query, "generation": msg.Generation})
		if msg.Generation != m.generation {
			log.WithField("current", m.generation).Debug("dropping superseded search result")
			return m, nil
		}
		if msg.Err != nil {
			log.WithError(msg.Err).Error("search failed")
			m.dispatch(stories.FetchFailure{Err: msg.Err})
			return m, nil
		}
		log.WithFields(logrus.Fields{"count": len(msg.Stories), "cached": msg.FromCache}).Info("search loaded")
		m.dispatch(stories.FetchSuccess{Stories: msg.Stories})
		m.list.ResetSelected()
		return m, nil

	case messages.FilterChangedMsg:
		m.filter = msg.Query
		m.syncItems()
		m.list.ResetSelected()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, Keys.Remove):
			if item, ok := m.list.SelectedItem().(StoryItem); ok {
				m.dispatch(stories.RemoveStory{Story: item.Story})
				logrus.WithField("objectID", item.ObjectID).Debug("story removed")
				removed := item.Story
				return m, func() tea.Msg {
					return messages.StoryRemovedMsg{Story: removed}
				}
			}
			return m, nil
		case key.Matches(msg, Keys.OpenURL):
			if item, ok := m.list.SelectedItem().(StoryItem); ok && item.URL != "" {
				return m, func() tea.Msg {
					return messages.StatusMsg{Text: "Opening: " + item.URL}
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the story list.
func (m Model) View() string {
	if len(m.Visible()) == 0 {
		return emptyView(m)
	}
	return m.list.View()
}

// State returns the current fetch state.
func (m Model) State() stories.State {
	return m.state
}

// Visible returns the stories passing the title filter.
func (m Model) Visible() []stories.Story {
	return stories.FilterByTitle(m.state.Data, m.filter)
}

// Query returns the last submitted search term.
func (m Model) Query() string {
	return m.query
}

// Filter returns the title filter.
func (m Model) Filter() string {
	return m.filter
}

// SelectedStory returns the highlighted story.
func (m Model) SelectedStory() (stories.Story, bool) {
	item, ok := m.list.SelectedItem().(StoryItem)
	return item.Story, ok
}

func (m *Model) dispatch(e stories.Event) {
	m.state = stories.Reduce(m.state, e)
	m.syncItems()
}

func (m *Model) syncItems() {
	visible := m.Visible()
	items := make([]list.Item, 0, len(visible))
	for i, s := range visible {
		items = append(items, StoryItem{Story: s, Index: i})
	}
	m.list.SetItems(items)
}

func (m Model) loadStories(query string, gen int, force bool) tea.Cmd {
	searcher := m.searcher
	db := m.cache
	cfg := m.cfg

	return func() tea.Msg {
		log := logrus.WithFields(logrus.Fields{"query": query, "generation": gen})

		switch {
		case db == nil:
		case force:
			if err := db.InvalidateSearch(query); err != nil {
				log.WithError(err).Warn("invalidating search cache")
			}
		default:
			cached, fresh, err := db.GetSearch(query, cfg.SearchTTL)
			if err != nil {
				log.WithError(err).Warn("reading search cache")
			}
			if fresh {
				return messages.StoriesLoadedMsg{Query: query, Generation: gen, Stories: cached, FromCache: true}
			}
		}

		result, err := searcher.SearchPages(context.Background(), query, cfg.FetchPages)
		if err != nil {
			return messages.StoriesLoadedMsg{Query: query, Generation: gen, Err: err}
		}

		if db != nil {
			if err := db.PutSearch(query, result); err != nil {
				log.WithError(err).Warn("writing search cache")
			}
		}
		return messages.StoriesLoadedMsg{Query: query, Generation: gen, Stories: result}
	}
}

func emptyView(m Model) string {
	switch {
	case m.state.IsLoading:
		return emptyStyle.Render("Loading ...")
	case m.state.IsError:
		return emptyStyle.Render("Something went wrong ...")
	case m.filter != "" && len(m.state.Data) > 0:
		return emptyStyle.Render("No stories match \"" + m.filter + "\"")
	default:
		return emptyStyle.Render("No stories")
	}
}
