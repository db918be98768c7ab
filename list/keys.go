package list

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the list. Replace individual bindings
// to customize; the help view picks up the new help text automatically.
type KeyMap struct {
	// Browsing.
	CursorUp    key.Binding
	CursorDown  key.Binding
	NextPage    key.Binding
	PrevPage    key.Binding
	GoToStart   key.Binding
	GoToEnd     key.Binding
	Filter      key.Binding
	ClearFilter key.Binding

	// While the filter input is focused.
	CancelWhileFiltering key.Binding
	AcceptWhileFiltering key.Binding

	// Help.
	ShowFullHelp  key.Binding
	CloseFullHelp key.Binding

	Quit key.Binding
}

// DefaultKeyMap returns the default set of key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		CursorUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		CursorDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "l", "pgdown"),
			key.WithHelp("→/l/pgdn", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h", "pgup"),
			key.WithHelp("←/h/pgup", "prev page"),
		),
		GoToStart: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g/home", "go to start"),
		),
		GoToEnd: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G/end", "go to end"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
		CancelWhileFiltering: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		AcceptWhileFiltering: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply filter"),
		),
		ShowFullHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		CloseFullHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "close help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the compact help view. The set
// changes depending on whether the user is editing the filter.
func (m Model) ShortHelp() []key.Binding {
	if m.filterState == Filtering {
		return []key.Binding{
			m.KeyMap.AcceptWhileFiltering,
			m.KeyMap.CancelWhileFiltering,
		}
	}
	return []key.Binding{
		m.KeyMap.CursorUp,
		m.KeyMap.CursorDown,
		m.KeyMap.Filter,
		m.KeyMap.Quit,
		m.KeyMap.ShowFullHelp,
	}
}

// FullHelp returns all bindings grouped into columns for the expanded help
// view.
func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			m.KeyMap.CursorUp,
			m.KeyMap.CursorDown,
			m.KeyMap.NextPage,
			m.KeyMap.PrevPage,
			m.KeyMap.GoToStart,
			m.KeyMap.GoToEnd,
		},
		{
			m.KeyMap.Filter,
			m.KeyMap.ClearFilter,
			m.KeyMap.AcceptWhileFiltering,
			m.KeyMap.CancelWhileFiltering,
		},
		{
			m.KeyMap.ShowFullHelp,
			m.KeyMap.CloseFullHelp,
			m.KeyMap.Quit,
		},
	}
}
