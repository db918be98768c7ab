package list

import tea "github.com/charmbracelet/bubbletea"

// Item is a value that can be displayed in the list. The list treats items
// as opaque; the only thing it derives from them is the text searched when
// the user filters.
type Item interface {
	// FilterValue returns the text the fuzzy filter matches against.
	FilterValue() string
}

// ItemDelegate controls how individual items are drawn. The list consumes
// Height and Spacing for its windowing math and calls Render once per
// visible item.
//
// Render always receives the item's original index in the full, unfiltered
// item sequence, never a viewport- or filter-relative one. Delegates compare
// that index against Model.SelectedOriginalIndex to decide whether the row
// is selected, and pass it to Model.MatchesForItem to fetch highlight
// positions.
type ItemDelegate interface {
	// Render returns the styled lines for one item.
	Render(m *Model, index int, item Item) string

	// Height is the number of terminal lines one rendered item occupies.
	Height() int

	// Spacing is the number of blank lines inserted between items.
	Spacing() int

	// Update lets the delegate react to messages while the list is in
	// browsing mode. Most delegates return nil.
	Update(msg tea.Msg, m *Model) tea.Cmd
}
