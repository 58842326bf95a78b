package tui

import "github.com/charmbracelet/bubbles/key"

// boardKeyMap holds the key bindings of the watch board.
type boardKeyMap struct {
	Faster  key.Binding
	Slower  key.Binding
	Select  key.Binding
	Toggle  key.Binding
	Refresh key.Binding
	Pick    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newBoardKeyMap() boardKeyMap {
	return boardKeyMap{
		Faster: key.NewBinding(
			key.WithKeys("+", "=", "right", "l"),
			key.WithHelp("+/→", "next interval"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-", "_", "left", "h"),
			key.WithHelp("-/←", "previous interval"),
		),
		Select: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4"),
			key.WithHelp("0-4", "choose interval"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("s", " "),
			key.WithHelp("s", "stop/start"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Pick: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "interval menu"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k boardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Faster, k.Slower, k.Toggle, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k boardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Faster, k.Slower, k.Select},
		{k.Toggle, k.Refresh, k.Pick},
		{k.Help, k.Quit},
	}
}
