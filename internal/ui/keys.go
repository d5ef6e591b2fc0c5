package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/fragmede/hackerstories/internal/ui/storylist"
)

type KeyMap struct {
	Quit    key.Binding
	Back    key.Binding
	Search  key.Binding
	Filter  key.Binding
	Submit  key.Binding
	Remove  key.Binding
	OpenURL key.Binding
	Refresh key.Binding
	Up      key.Binding
	Down    key.Binding
}

var Keys = KeyMap{
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Filter:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter titles")),
	Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	Remove:  storylist.Keys.Remove,
	OpenURL: storylist.Keys.OpenURL,
	Refresh: key.NewBinding(key.WithKeys("r", "ctrl+r"), key.WithHelp("r", "refresh")),
	Up:      key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/up", "up")),
	Down:    key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/down", "down")),
}

// ShortHelp lists the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Filter, k.Remove, k.OpenURL, k.Refresh, k.Quit}
}

// FullHelp is required by help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Up, k.Down, k.Submit, k.Back}}
}
