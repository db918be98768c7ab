// Package list provides a scrollable, fuzzy-filterable item list component
// for Bubble Tea programs. Items are opaque consumer values rendered through
// a pluggable delegate; the list owns filtering, cursor tracking and
// viewport windowing, and composes the surrounding chrome (title or filter
// box, status bar, page indicator, help).
package list

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the list state. Create one with New.
//
// The cursor indexes into the currently visible logical sequence: the full
// item slice while unfiltered, the filtered set otherwise. viewportStart is
// the first visible row of that same sequence and is maintained so the
// cursor always stays inside the window (see window.go).
type Model struct {
	// Title is shown in the header while the filter input is not.
	Title string

	Styles Styles
	KeyMap KeyMap

	// FilterInput is the single-line query editor shown in the header while
	// filtering. It is exported so applications can restyle or prefill it.
	FilterInput textinput.Model

	// Paginator renders the page indicator. Page size and total pages are
	// derived by the list; treat them as read-only.
	Paginator paginator.Model

	Help help.Model

	// StatusMessageLifetime is how long a message set with NewStatusMessage
	// stays on the status bar.
	StatusMessageLifetime time.Duration

	width  int
	height int

	showTitle      bool
	showStatusBar  bool
	showPagination bool
	showHelp       bool
	showSpinner    bool

	statusItemSingular string
	statusItemPlural   string
	statusMessage      string
	statusID           int

	spinner  spinner.Model
	delegate ItemDelegate

	items         []Item
	filterState   FilterState
	filteredItems []filteredItem

	cursor        int
	perPage       int
	viewportStart int
}

// New creates a list with the given items, delegate and dimensions.
func New(items []Item, delegate ItemDelegate, width, height int) Model {
	styles := DefaultStyles()

	input := textinput.New()
	input.Prompt = "Filter: "
	input.PromptStyle = styles.FilterPrompt
	input.Cursor.Style = styles.FilterCursor
	input.CharLimit = 64

	p := paginator.New()
	p.Type = paginator.Dots
	p.ActiveDot = styles.ActivePaginationDot.String()
	p.InactiveDot = styles.InactivePaginationDot.String()

	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = styles.Spinner

	m := Model{
		Title:                 "List",
		Styles:                styles,
		KeyMap:                DefaultKeyMap(),
		FilterInput:           input,
		Paginator:             p,
		Help:                  help.New(),
		StatusMessageLifetime: time.Second,

		width:  width,
		height: height,

		showTitle:      true,
		showStatusBar:  true,
		showPagination: true,
		showHelp:       true,

		spinner:  sp,
		delegate: delegate,
		items:    items,

		filterState: Unfiltered,
	}
	m.updatePagination()
	return m
}

// SetItems replaces the item collection wholesale. Any active filter is
// dropped and the cursor returns to the top; only configuration (title,
// styles, key bindings, status-bar labels) survives the replacement.
func (m *Model) SetItems(items []Item) {
	m.items = items
	m.resetFiltering()
}

// Items returns the full, unfiltered item collection.
func (m *Model) Items() []Item {
	return m.items
}

// TotalItems returns the size of the full collection regardless of any
// active filter.
func (m *Model) TotalItems() int {
	return len(m.items)
}

// VisibleItems returns the items of the currently visible logical sequence:
// all items while unfiltered, the filtered subset otherwise.
func (m *Model) VisibleItems() []Item {
	if m.filterState == Unfiltered {
		return m.items
	}
	out := make([]Item, len(m.filteredItems))
	for i, fi := range m.filteredItems {
		out[i] = fi.item
	}
	return out
}

// Len returns the number of currently visible items.
func (m *Model) Len() int {
	if m.filterState == Unfiltered {
		return len(m.items)
	}
	return len(m.filteredItems)
}

// IsEmpty reports whether there are no visible items.
func (m *Model) IsEmpty() bool {
	return m.Len() == 0
}

// Cursor returns the cursor position within the visible sequence.
func (m *Model) Cursor() int {
	return m.cursor
}

// Select moves the cursor to the given visible index, clamped into range.
func (m *Model) Select(index int) {
	m.cursor = index
	m.syncViewport()
}

// SelectedItem returns the item under the cursor, or nil when the list is
// empty.
func (m *Model) SelectedItem() Item {
	i, it := m.visibleAt(m.cursor)
	if i < 0 {
		return nil
	}
	return it
}

// SelectedOriginalIndex returns the original (unfiltered) index of the item
// under the cursor, or -1 when the list is empty. Delegates compare this
// against the index they were handed to detect the selected row.
func (m *Model) SelectedOriginalIndex() int {
	i, _ := m.visibleAt(m.cursor)
	return i
}

// visibleAt resolves a visible index to the original index and item. Returns
// -1 and nil when out of range.
func (m *Model) visibleAt(i int) (int, Item) {
	if i < 0 || i >= m.Len() {
		return -1, nil
	}
	if m.filterState == Unfiltered {
		return i, m.items[i]
	}
	fi := m.filteredItems[i]
	return fi.index, fi.item
}

// CursorUp moves the selection up one item.
func (m *Model) CursorUp() {
	if m.cursor > 0 {
		m.cursor--
	}
	m.syncViewport()
}

// CursorDown moves the selection down one item.
func (m *Model) CursorDown() {
	if m.cursor < m.Len()-1 {
		m.cursor++
	}
	m.syncViewport()
}

// PrevPage moves the selection up by one page.
func (m *Model) PrevPage() {
	m.cursor -= m.perPage
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.syncViewport()
}

// NextPage moves the selection down by one page.
func (m *Model) NextPage() {
	if n := m.Len(); n > 0 {
		m.cursor += m.perPage
		if m.cursor > n-1 {
			m.cursor = n - 1
		}
	}
	m.syncViewport()
}

// GoToStart moves the selection to the first item.
func (m *Model) GoToStart() {
	m.cursor = 0
	m.syncViewport()
}

// GoToEnd moves the selection to the last item.
func (m *Model) GoToEnd() {
	m.cursor = m.Len() - 1
	m.syncViewport()
}

// SetSize updates the list dimensions and recomputes how many items fit.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.updatePagination()
}

// SetWidth updates the width only.
func (m *Model) SetWidth(width int) {
	m.SetSize(width, m.height)
}

// SetHeight updates the height only.
func (m *Model) SetHeight(height int) {
	m.SetSize(m.width, height)
}

// Width returns the current width.
func (m *Model) Width() int {
	return m.width
}

// Height returns the current height.
func (m *Model) Height() int {
	return m.height
}

// SetDelegate swaps the item delegate and repaginates, since the per-item
// height may have changed.
func (m *Model) SetDelegate(d ItemDelegate) {
	m.delegate = d
	m.updatePagination()
}

// SetShowTitle shows or hides the title line.
func (m *Model) SetShowTitle(show bool) {
	m.showTitle = show
	m.updatePagination()
}

// ShowTitle reports whether the title line is shown.
func (m *Model) ShowTitle() bool {
	return m.showTitle
}

// SetShowStatusBar shows or hides the status bar.
func (m *Model) SetShowStatusBar(show bool) {
	m.showStatusBar = show
	m.updatePagination()
}

// ShowStatusBar reports whether the status bar is shown.
func (m *Model) ShowStatusBar() bool {
	return m.showStatusBar
}

// SetShowPagination shows or hides the page indicator.
func (m *Model) SetShowPagination(show bool) {
	m.showPagination = show
	m.updatePagination()
}

// ShowPagination reports whether the page indicator is shown.
func (m *Model) ShowPagination() bool {
	return m.showPagination
}

// SetShowHelp shows or hides the help footer.
func (m *Model) SetShowHelp(show bool) {
	m.showHelp = show
	m.updatePagination()
}

// ShowHelp reports whether the help footer is shown.
func (m *Model) ShowHelp() bool {
	return m.showHelp
}

// ShowSpinner reports whether the spinner is shown in the header.
func (m *Model) ShowSpinner() bool {
	return m.showSpinner
}

// SetSpinner replaces the spinner animation.
func (m *Model) SetSpinner(s spinner.Spinner) {
	m.spinner.Spinner = s
}

// StartSpinner shows the spinner and returns the command that drives its
// animation.
func (m *Model) StartSpinner() tea.Cmd {
	m.showSpinner = true
	return m.spinner.Tick
}

// StopSpinner hides the spinner.
func (m *Model) StopSpinner() {
	m.showSpinner = false
}

// SetStatusBarItemName sets the singular and plural nouns used by the status
// bar, e.g. "task"/"tasks".
func (m *Model) SetStatusBarItemName(singular, plural string) {
	m.statusItemSingular = singular
	m.statusItemPlural = plural
}

// StatusBarItemName returns the nouns used by the status bar.
func (m *Model) StatusBarItemName() (string, string) {
	singular, plural := "item", "items"
	if m.statusItemSingular != "" {
		singular = m.statusItemSingular
	}
	if m.statusItemPlural != "" {
		plural = m.statusItemPlural
	}
	return singular, plural
}

type statusMessageTimeoutMsg int

// NewStatusMessage shows a message on the status bar and returns the command
// that expires it after StatusMessageLifetime.
func (m *Model) NewStatusMessage(s string) tea.Cmd {
	m.statusMessage = s
	m.statusID++
	id := m.statusID
	return tea.Tick(m.StatusMessageLifetime, func(time.Time) tea.Msg {
		return statusMessageTimeoutMsg(id)
	})
}

// InsertItem inserts an item at the given original index, clamped into
// range. Any active filter is dropped since original indices shift.
func (m *Model) InsertItem(index int, item Item) {
	if index < 0 {
		index = 0
	}
	if index > len(m.items) {
		index = len(m.items)
	}
	m.items = append(m.items, nil)
	copy(m.items[index+1:], m.items[index:])
	m.items[index] = item

	m.invalidateFilter()
	if index <= m.cursor && m.cursor < len(m.items)-1 {
		m.cursor++
	}
	m.updatePagination()
}

// PushItem appends an item to the end of the collection.
func (m *Model) PushItem(item Item) {
	m.InsertItem(len(m.items), item)
}

// RemoveItem removes and returns the item at the given original index, or
// nil when the index is out of range.
func (m *Model) RemoveItem(index int) Item {
	if index < 0 || index >= len(m.items) {
		return nil
	}
	removed := m.items[index]
	m.items = append(m.items[:index], m.items[index+1:]...)

	m.invalidateFilter()
	if index < m.cursor {
		m.cursor--
	}
	m.updatePagination()
	return removed
}

// PopItem removes and returns the last item, or nil when the collection is
// empty.
func (m *Model) PopItem() Item {
	return m.RemoveItem(len(m.items) - 1)
}

// MoveItem moves the item at from to position to. The cursor follows the
// moved item when it was selected. Out-of-range indices are ignored.
func (m *Model) MoveItem(from, to int) {
	n := len(m.items)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return
	}
	item := m.items[from]
	m.items = append(m.items[:from], m.items[from+1:]...)
	m.items = append(m.items, nil)
	copy(m.items[to+1:], m.items[to:])
	m.items[to] = item

	m.invalidateFilter()
	switch {
	case m.cursor == from:
		m.cursor = to
	case from < m.cursor && to >= m.cursor:
		m.cursor--
	case from > m.cursor && to <= m.cursor:
		m.cursor++
	}
	m.updatePagination()
}

// invalidateFilter drops the filtered set after the item collection changed
// shape, since the stored original indices no longer line up. The query text
// is kept so the user can re-apply it.
func (m *Model) invalidateFilter() {
	if m.filterState == Unfiltered {
		return
	}
	m.filterState = Unfiltered
	m.filteredItems = nil
}
